package department

import (
	"directory/backend/internal/entity"
	"directory/backend/internal/pkg/recordstore"
)

// Store-side field names for the departments table.
const (
	Table = "departments"

	fieldID   = "Id"
	fieldName = "Name"
)

var storeFields = []string{fieldID, fieldName}

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

type GetDetailByIdResponse struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

type CreateRequest struct {
	Name *string `json:"name" form:"name"`
}

type CreateResponse struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

type UpdateRequest struct {
	ID   int     `json:"id" form:"id"`
	Name *string `json:"name" form:"name"`
}

type UpdateResponse struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

func toEntity(record recordstore.Record) entity.Department {
	return entity.Department{
		ID:   asID(record[fieldID]),
		Name: asString(record[fieldName]),
	}
}

func fromRecord(record recordstore.Record) GetListResponse {
	return GetListResponse(toEntity(record))
}

func asID(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func asString(value interface{}) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}

	return &s
}
