package repository

import (
	"context"

	"shop/internal/domain/repository"
)

// StubTransactionManager runs the unit-of-work function directly against
// the configured factory. No transaction semantics; the function's error is
// returned as-is, standing in for a rollback.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StubRepositoryFactory hands out the configured repository mocks.
type StubRepositoryFactory struct {
	ProductRepo  *ProductRepository
	OrderRepo    *OrderRepository
	PaymentRepo  *PaymentRepository
	ShipmentRepo *ShipmentRepository
}

func (f *StubRepositoryFactory) Products() repository.ProductRepository   { return f.ProductRepo }
func (f *StubRepositoryFactory) Orders() repository.OrderRepository       { return f.OrderRepo }
func (f *StubRepositoryFactory) Payments() repository.PaymentRepository   { return f.PaymentRepo }
func (f *StubRepositoryFactory) Shipments() repository.ShipmentRepository { return f.ShipmentRepo }
