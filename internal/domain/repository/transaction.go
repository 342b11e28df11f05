package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
// Only the repositories taking part in multi-step atomic writes are exposed.
type RepositoryFactory interface {
	NewQuotationRepository() QuotationRepository
	NewOrderRepository() OrderRepository
	NewInvoiceRepository() InvoiceRepository
}

// TransactionManager runs a function within a single database transaction.
// The function receives a factory whose repositories share that transaction;
// any error (or panic) rolls the whole unit of work back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
