package department

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"directory/backend/foundation/web"
	"directory/backend/internal/pkg/recordstore"
)

type Repository struct {
	*recordstore.Client
}

func NewRepository(client *recordstore.Client) *Repository {
	return &Repository{Client: client}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	if filter.Limit != nil && *filter.Limit <= 0 {
		return nil, 0, web.NewRequestError(errors.New("limit must be a positive number"), http.StatusBadRequest)
	}

	records, err := r.FetchRecords(ctx, Table, storeFields)
	if err != nil {
		return nil, 0, err
	}

	var list []GetListResponse

	for _, record := range records {
		detail := fromRecord(record)

		if filter.Search != nil {
			search := strings.ToLower(strings.TrimSpace(*filter.Search))
			if detail.Name == nil || !strings.Contains(strings.ToLower(*detail.Name), search) {
				continue
			}
		}

		list = append(list, detail)
	}

	count := len(list)

	return paginate(list, filter), count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	record, err := r.GetRecordByID(ctx, Table, id, storeFields)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	return GetDetailByIdResponse(fromRecord(record)), nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "Name"); err != nil {
		return CreateResponse{}, err
	}

	if err := r.checkNameUnused(ctx, *request.Name, 0); err != nil {
		return CreateResponse{}, err
	}

	created, err := r.CreateRecords(ctx, Table, []recordstore.Record{
		{fieldName: request.Name},
	})
	if err != nil {
		return CreateResponse{}, err
	}
	if len(created) == 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("record store returned no created record"), http.StatusBadGateway)
	}

	return CreateResponse(fromRecord(created[0])), nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) (UpdateResponse, error) {
	if err := r.ValidateStruct(&request, "ID", "Name"); err != nil {
		return UpdateResponse{}, err
	}

	if err := r.checkNameUnused(ctx, *request.Name, request.ID); err != nil {
		return UpdateResponse{}, err
	}

	updated, err := r.UpdateRecords(ctx, Table, []recordstore.Record{
		{fieldID: request.ID, fieldName: request.Name},
	})
	if err != nil {
		return UpdateResponse{}, err
	}
	if len(updated) == 0 {
		return UpdateResponse{}, web.NewRequestError(errors.New("record store returned no updated record"), http.StatusBadGateway)
	}

	return UpdateResponse(fromRecord(updated[0])), nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRecords(ctx, Table, []int{id})
}

// checkNameUnused rejects a name already taken by another department. The
// store has no unique constraints, so the wrapper enforces it.
func (r Repository) checkNameUnused(ctx context.Context, name string, selfID int) error {
	records, err := r.FetchRecords(ctx, Table, storeFields)
	if err != nil {
		return err
	}

	for _, record := range records {
		detail := fromRecord(record)
		if detail.ID == selfID || detail.Name == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(*detail.Name), strings.TrimSpace(name)) {
			return web.NewRequestError(errors.New("department name is used"), http.StatusBadRequest)
		}
	}

	return nil
}

func paginate(list []GetListResponse, filter Filter) []GetListResponse {
	offset := 0

	if filter.Page != nil && filter.Limit != nil {
		offset = (*filter.Page - 1) * (*filter.Limit)
	} else if filter.Offset != nil {
		offset = *filter.Offset
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]

	if filter.Limit != nil && *filter.Limit > 0 && *filter.Limit < len(list) {
		list = list[:*filter.Limit]
	}

	return list
}
