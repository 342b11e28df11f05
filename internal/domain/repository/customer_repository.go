package repository

import (
	"context"

	"glovia/internal/domain/entity"
	"glovia/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// FindCustomerByID retrieves a customer with its company, if any.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}
