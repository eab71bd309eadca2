package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserLevel string

const (
	UserLevelAdmin     UserLevel = "admin"
	UserLevelCashier   UserLevel = "cashier"
	UserLevelWarehouse UserLevel = "warehouse"
)

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name,omitempty"`
	Level     UserLevel `json:"level"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Username string    `json:"username" validate:"required,min=3,max=50"`
	Password string    `json:"password" validate:"required,min=6"`
	FullName *string   `json:"full_name,omitempty" validate:"omitempty,max=150"`
	Level    UserLevel `json:"level" validate:"required,oneof=admin cashier warehouse"`
}

type UpdateUserRequest struct {
	Username *string    `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Password *string    `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName *string    `json:"full_name,omitempty" validate:"omitempty,max=150"`
	Level    *UserLevel `json:"level,omitempty" validate:"omitempty,oneof=admin cashier warehouse"`
}

// CustomerClaims identify the storefront customer behind a session token.
type CustomerClaims struct {
	CustomerID int64 `json:"customer_id"`
	jwt.RegisteredClaims
}
