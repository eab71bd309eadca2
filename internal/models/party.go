package models

import "time"

type Distributor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Courier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateContactRequest is shared by distributors and customers, which carry
// the same contact fields.
type CreateContactRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=150"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateContactRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type CreateCourierRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=150"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateCourierRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}
