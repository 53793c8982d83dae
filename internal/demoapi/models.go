// Package demoapi is an in-memory implementation of the storefront REST API the
// console administers. It backs local trials, the smoke runner and tests.
package demoapi

import "time"

type Product struct {
	ProductID   int64     `json:"productId"`
	CategoryID  int64     `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int64     `json:"stock"`
	SKU         string    `json:"sku"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Order struct {
	OrderID           int64      `json:"orderId"`
	UserID            int64      `json:"userId"`
	OrderNumber       string     `json:"orderNumber"`
	Status            string     `json:"status"`
	TotalAmount       float64    `json:"totalAmount"`
	ShippingAddressID *int64     `json:"shippingAddressId"`
	BillingAddressID  *int64     `json:"billingAddressId"`
	OrderDate         time.Time  `json:"orderDate"`
	ShippedDate       *time.Time `json:"shippedDate"`
	DeliveredDate     *time.Time `json:"deliveredDate"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type Category struct {
	CategoryID  int64     `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type User struct {
	UserID       int64     `json:"userId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Request bodies. Pointers distinguish absent values from zero values.

type productInput struct {
	CategoryID  *int64   `json:"categoryId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
	SKU         string   `json:"sku"`
	IsActive    bool     `json:"isActive"`
}

type stockInput struct {
	Quantity *int64 `json:"quantity"`
}

type orderInput struct {
	UserID            *int64   `json:"userId"`
	OrderNumber       string   `json:"orderNumber"`
	Status            string   `json:"status"`
	TotalAmount       *float64 `json:"totalAmount"`
	ShippingAddressID *int64   `json:"shippingAddressId"`
	BillingAddressID  *int64   `json:"billingAddressId"`
	Notes             string   `json:"notes"`
}

type statusInput struct {
	Status string `json:"status"`
}

type categoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type userInput struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	IsActive     bool   `json:"isActive"`
}
