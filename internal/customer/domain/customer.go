package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by customer stores when no customer matches the id.
var ErrNotFound = errors.New("customer not found")

type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCustomer(id, name, email string) Customer {
	now := time.Now().UTC()
	return Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
