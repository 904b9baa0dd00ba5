package entity

import (
	"github.com/Azure/go-autorest/autorest/date"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID int `json:"id"`

	FullName     *string    `json:"full_name"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Role         *string    `json:"role"`
	DepartmentID *int       `json:"department_id"`
	HireDate     *date.Date `json:"hire_date"`
	Status       *string    `json:"status"`
	Avatar       *string    `json:"avatar"`
}
