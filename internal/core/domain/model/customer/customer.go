// Package customer provides the customer record the pricing engine reads
// when placing an order. The record is read-only within this core: orders
// reference it for the delivery address and display name, nothing mutates it.
package customer

import (
	"errors"
	"fmt"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when attempting to create a customer without an address.
	// The address is the delivery destination, so it cannot be empty.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer holds the contact details of the person placing an order.
// Email and phone are carried as given; only name and address are required
// since the pricing engine depends on them.
type Customer struct {
	name        string
	email       string
	address     string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer record.
// Name and address must be non-empty; email and phone are free-form.
func NewCustomer(name, email, address, phoneNumber string) (*Customer, error) {
	customer := &Customer{
		email:       email,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setAddress(address),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Address returns the delivery destination address.
func (c *Customer) Address() string {
	return c.address
}

// PhoneNumber returns the customer's phone number.
func (c *Customer) PhoneNumber() string {
	return c.phoneNumber
}

// ContactInfo renders the customer as a single display line.
func (c *Customer) ContactInfo() string {
	return fmt.Sprintf("Name: %s, email: %s, address: %s, phone: %s",
		c.name, c.email, c.address, c.phoneNumber)
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
