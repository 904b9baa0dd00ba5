package employee

import (
	"context"

	"directory/backend/internal/repository/store/department"
	"directory/backend/internal/repository/store/employee"
)

type Employee interface {
	GetList(ctx context.Context, filter employee.Filter) ([]employee.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (employee.GetDetailByIdResponse, error)
	Create(ctx context.Context, request employee.CreateRequest) (employee.CreateResponse, error)
	UpdateAll(ctx context.Context, request employee.UpdateRequest) (employee.UpdateResponse, error)
	UpdateColumns(ctx context.Context, request employee.UpdateRequest) (employee.UpdateResponse, error)
	Delete(ctx context.Context, id int) error
}

type Department interface {
	GetList(ctx context.Context, filter department.Filter) ([]department.GetListResponse, int, error)
}
