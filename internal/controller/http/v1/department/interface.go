package department

import (
	"context"

	"directory/backend/internal/repository/store/department"
)

type Department interface {
	GetList(ctx context.Context, filter department.Filter) ([]department.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (department.GetDetailByIdResponse, error)
	Create(ctx context.Context, request department.CreateRequest) (department.CreateResponse, error)
	UpdateColumns(ctx context.Context, request department.UpdateRequest) (department.UpdateResponse, error)
	Delete(ctx context.Context, id int) error
}
