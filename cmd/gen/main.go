package main

import (
	"shop/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.ProductDetailModel{},
		model.ProductImageModel{},
		model.OrderModel{},
		model.OrderDetailModel{},
		model.PaymentModel{},
		model.ShipmentModel{},
		model.ShipmentTrackingModel{},
		model.ShipmentItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
