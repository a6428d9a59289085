package repository

import "context"

// TransactionManager is the unit of work. Execute runs a function within a
// single database transaction: if the function returns an error the
// transaction is rolled back in full, otherwise it is committed exactly
// once. Handlers never commit more than once per request.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the current
// transaction, so all repository operations inside one Execute share the
// same database connection.
type RepositoryFactory interface {
	// Products returns a ProductRepository bound to the current transaction.
	Products() ProductRepository

	// Orders returns an OrderRepository bound to the current transaction.
	Orders() OrderRepository

	// Payments returns a PaymentRepository bound to the current transaction.
	Payments() PaymentRepository

	// Shipments returns a ShipmentRepository bound to the current transaction.
	Shipments() ShipmentRepository
}
