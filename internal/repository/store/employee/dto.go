package employee

import (
	"encoding/json"
	"strconv"

	"github.com/Azure/go-autorest/autorest/date"

	"directory/backend/internal/entity"
	"directory/backend/internal/pkg/recordstore"
)

// Store-side field names for the employees table. The API itself speaks
// snake_case; the mapping between the two lives in this package only.
const (
	Table = "employees"

	fieldID         = "Id"
	fieldName       = "Name"
	fieldFirstName  = "FirstName"
	fieldLastName   = "LastName"
	fieldEmail      = "Email"
	fieldPhone      = "Phone"
	fieldRole       = "Role"
	fieldDepartment = "DepartmentId"
	fieldHireDate   = "HireDate"
	fieldStatus     = "Status"
	fieldAvatar     = "Avatar"
)

var storeFields = []string{
	fieldID,
	fieldName,
	fieldFirstName,
	fieldLastName,
	fieldEmail,
	fieldPhone,
	fieldRole,
	fieldDepartment,
	fieldHireDate,
	fieldStatus,
	fieldAvatar,
}

type Filter struct {
	Limit        *int
	Offset       *int
	Page         *int
	Search       *string
	DepartmentID *int
}

type GetListResponse struct {
	ID           int        `json:"id"`
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

type GetDetailByIdResponse struct {
	ID           int        `json:"id"`
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

type CreateRequest struct {
	FullName     *string    `json:"full_name" form:"full_name"`
	FirstName    *string    `json:"first_name" form:"first_name"`
	LastName     *string    `json:"last_name" form:"last_name"`
	Email        *string    `json:"email" form:"email" validate:"omitempty,email"`
	Phone        *string    `json:"phone" form:"phone"`
	Role         *string    `json:"role" form:"role"`
	DepartmentID *int       `json:"department_id" form:"department_id"`
	HireDate     *date.Date `json:"hire_date" form:"hire_date"`
	Status       *string    `json:"status" form:"status"`
	Avatar       *string    `json:"avatar" form:"avatar"`
}

type CreateResponse struct {
	ID           int        `json:"id"`
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

type UpdateRequest struct {
	ID           int        `json:"id" form:"id"`
	FullName     *string    `json:"full_name" form:"full_name"`
	FirstName    *string    `json:"first_name" form:"first_name"`
	LastName     *string    `json:"last_name" form:"last_name"`
	Email        *string    `json:"email" form:"email" validate:"omitempty,email"`
	Phone        *string    `json:"phone" form:"phone"`
	Role         *string    `json:"role" form:"role"`
	DepartmentID *int       `json:"department_id" form:"department_id"`
	HireDate     *date.Date `json:"hire_date" form:"hire_date"`
	Status       *string    `json:"status" form:"status"`
	Avatar       *string    `json:"avatar" form:"avatar"`
}

type UpdateResponse struct {
	ID           int        `json:"id"`
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

// toEntity converts a store record into the domain shape, coercing the
// department reference to an int whatever the store sent and filling the
// defaults for missing optional fields.
func toEntity(record recordstore.Record) entity.Employee {
	employee := entity.Employee{
		ID:           asID(record[fieldID]),
		FullName:     asString(record[fieldName]),
		FirstName:    asString(record[fieldFirstName]),
		LastName:     asString(record[fieldLastName]),
		Email:        asString(record[fieldEmail]),
		Phone:        asString(record[fieldPhone]),
		Role:         asString(record[fieldRole]),
		DepartmentID: asInt(record[fieldDepartment]),
		HireDate:     asDate(record[fieldHireDate]),
		Status:       asString(record[fieldStatus]),
		Avatar:       asString(record[fieldAvatar]),
	}

	if employee.Status == nil || *employee.Status == "" {
		status := entity.StatusActive
		employee.Status = &status
	}
	if employee.Avatar == nil {
		avatar := ""
		employee.Avatar = &avatar
	}

	return employee
}

func fromRecord(record recordstore.Record) GetListResponse {
	return GetListResponse(toEntity(record))
}

func asID(value interface{}) int {
	if id := asInt(value); id != nil {
		return *id
	}

	return 0
}

func asInt(value interface{}) *int {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		number := int(v)
		return &number
	case int:
		return &v
	case int64:
		number := int(v)
		return &number
	case json.Number:
		number, err := strconv.Atoi(v.String())
		if err != nil {
			return nil
		}
		return &number
	case string:
		number, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return &number
	default:
		return nil
	}
}

func asString(value interface{}) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}

	return &s
}

func asDate(value interface{}) *date.Date {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}

	parsed, err := date.ParseDate(s)
	if err != nil {
		return nil
	}

	return &parsed
}
