package handler

import (
	"time"

	"shop/internal/domain/entity"
)

// The usecase layer returns aggregates; handlers flatten them into the
// JSON shapes below so internal state never leaks wholesale.

// MoneyView is the JSON form of a monetary amount.
type MoneyView struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// AddressView is the JSON form of a postal address.
type AddressView struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ProductImageView is the JSON form of a product image.
type ProductImageView struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	AltText   string `json:"altText,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

// ProductView is the JSON form of a catalog product.
type ProductView struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description,omitempty"`
	Price             MoneyView          `json:"price"`
	Sku               string             `json:"sku"`
	StockQuantity     int                `json:"stockQuantity"`
	LowStockThreshold int                `json:"lowStockThreshold"`
	LowStock          bool               `json:"lowStock"`
	Active            bool               `json:"active"`
	Details           map[string]string  `json:"details,omitempty"`
	Images            []ProductImageView `json:"images,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// OrderDetailView is the JSON form of one order line.
type OrderDetailView struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	ProductSku  string    `json:"productSku"`
	Quantity    int       `json:"quantity"`
	UnitPrice   MoneyView `json:"unitPrice"`
	LineTotal   MoneyView `json:"lineTotal"`
}

// OrderView is the JSON form of an order.
type OrderView struct {
	ID              string            `json:"id"`
	OrderNumber     string            `json:"orderNumber"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	ShippingAddress AddressView       `json:"shippingAddress"`
	Status          string            `json:"status"`
	TotalAmount     MoneyView         `json:"totalAmount"`
	Notes           string            `json:"notes,omitempty"`
	Details         []OrderDetailView `json:"details"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// PaymentView is the JSON form of a payment attempt.
type PaymentView struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	Status        string    `json:"status"`
	Amount        MoneyView `json:"amount"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TrackingDetailView is the JSON form of one tracking history entry.
type TrackingDetailView struct {
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ShipmentItemView is the JSON form of a shipped item snapshot.
type ShipmentItemView struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// ShipmentView is the JSON form of a shipment.
type ShipmentView struct {
	ID                    string               `json:"id"`
	OrderID               string               `json:"orderId"`
	TrackingNumber        string               `json:"trackingNumber"`
	Carrier               string               `json:"carrier"`
	Status                string               `json:"status"`
	OriginAddress         AddressView          `json:"originAddress"`
	DestinationAddress    AddressView          `json:"destinationAddress"`
	WeightValue           string               `json:"weightValue"`
	WeightUnit            string               `json:"weightUnit"`
	Length                string               `json:"length"`
	Width                 string               `json:"width"`
	Height                string               `json:"height"`
	DimensionUnit         string               `json:"dimensionUnit"`
	ShippingCost          MoneyView            `json:"shippingCost"`
	EstimatedDeliveryDate *time.Time           `json:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    *time.Time           `json:"actualDeliveryDate,omitempty"`
	TrackingDetails       []TrackingDetailView `json:"trackingDetails"`
	Items                 []ShipmentItemView   `json:"items"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

func toMoneyView(m entity.Money) MoneyView {
	return MoneyView{
		Amount:   m.Amount().String(),
		Currency: m.Currency(),
	}
}

func toAddressView(a entity.Address) AddressView {
	return AddressView{
		Street:     a.Street(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

func toProductView(p *entity.Product) *ProductView {
	images := make([]ProductImageView, 0, len(p.Images()))
	for _, img := range p.Images() {
		images = append(images, ProductImageView{
			ID:        img.ID.String(),
			URL:       img.URL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
		})
	}

	return &ProductView{
		ID:                p.ID().String(),
		Name:              p.Name(),
		Description:       p.Description(),
		Price:             toMoneyView(p.Price()),
		Sku:               p.Sku().Value(),
		StockQuantity:     p.Stock().Value(),
		LowStockThreshold: p.LowStockThreshold(),
		LowStock:          p.IsLowStock(),
		Active:            p.IsActive(),
		Details:           p.Details(),
		Images:            images,
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func toProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	return views
}

func toOrderView(o *entity.Order) *OrderView {
	details := make([]OrderDetailView, 0, len(o.Details()))
	for _, d := range o.Details() {
		details = append(details, OrderDetailView{
			ID:          d.ID.String(),
			ProductID:   d.ProductID.String(),
			ProductName: d.ProductName,
			ProductSku:  d.ProductSku,
			Quantity:    d.Quantity,
			UnitPrice:   toMoneyView(d.UnitPrice),
			LineTotal:   toMoneyView(d.LineTotal),
		})
	}

	return &OrderView{
		ID:              o.ID().String(),
		OrderNumber:     o.OrderNumber().Value(),
		CustomerName:    o.CustomerName(),
		CustomerEmail:   o.CustomerEmail().Value(),
		ShippingAddress: toAddressView(o.ShippingAddress()),
		Status:          string(o.Status()),
		TotalAmount:     toMoneyView(o.TotalAmount()),
		Notes:           o.Notes(),
		Details:         details,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	return views
}

func toPaymentView(p *entity.Payment) *PaymentView {
	return &PaymentView{
		ID:            p.ID().String(),
		OrderID:       p.OrderID().String(),
		Status:        string(p.Status()),
		Amount:        toMoneyView(p.Amount()),
		PaymentMethod: p.PaymentMethod(),
		TransactionID: p.TransactionID(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func toPaymentViews(payments []*entity.Payment) []*PaymentView {
	views := make([]*PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, toPaymentView(p))
	}

	return views
}

func toShipmentView(s *entity.Shipment) *ShipmentView {
	tracking := make([]TrackingDetailView, 0, len(s.TrackingDetails()))
	for _, d := range s.TrackingDetails() {
		tracking = append(tracking, TrackingDetailView{
			Status:    string(d.Status),
			Location:  d.Location,
			Notes:     d.Notes,
			Timestamp: d.Timestamp,
		})
	}

	items := make([]ShipmentItemView, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, ShipmentItemView{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	dims := s.Dimensions()

	return &ShipmentView{
		ID:                    s.ID().String(),
		OrderID:               s.OrderID().String(),
		TrackingNumber:        s.TrackingNumber().Value(),
		Carrier:               s.Carrier(),
		Status:                string(s.Status()),
		OriginAddress:         toAddressView(s.OriginAddress()),
		DestinationAddress:    toAddressView(s.DestinationAddress()),
		WeightValue:           s.Weight().Value().String(),
		WeightUnit:            string(s.Weight().Unit()),
		Length:                dims.Length().String(),
		Width:                 dims.Width().String(),
		Height:                dims.Height().String(),
		DimensionUnit:         string(dims.Unit()),
		ShippingCost:          toMoneyView(s.ShippingCost()),
		EstimatedDeliveryDate: s.EstimatedDeliveryDate(),
		ActualDeliveryDate:    s.ActualDeliveryDate(),
		TrackingDetails:       tracking,
		Items:                 items,
		CreatedAt:             s.CreatedAt(),
		UpdatedAt:             s.UpdatedAt(),
	}
}

func toShipmentViews(shipments []*entity.Shipment) []*ShipmentView {
	views := make([]*ShipmentView, 0, len(shipments))
	for _, s := range shipments {
		views = append(views, toShipmentView(s))
	}

	return views
}
