package employee

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"directory/backend/foundation/web"
	"directory/backend/internal/entity"
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

		if filter.DepartmentID != nil {
			if detail.DepartmentID == nil || *detail.DepartmentID != *filter.DepartmentID {
				continue
			}
		}
		if filter.Search != nil && !matchesSearch(detail, *filter.Search) {
			continue
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
	if err := r.ValidateStruct(&request,
		"FullName", "Email", "Phone", "Role", "DepartmentID", "HireDate",
	); err != nil {
		return CreateResponse{}, err
	}

	status, err := resolveStatus(request.Status)
	if err != nil {
		return CreateResponse{}, err
	}

	firstName, lastName := resolveNames(request.FullName, request.FirstName, request.LastName)

	record := recordstore.Record{
		fieldName:       request.FullName,
		fieldFirstName:  firstName,
		fieldLastName:   lastName,
		fieldEmail:      request.Email,
		fieldPhone:      request.Phone,
		fieldRole:       request.Role,
		fieldDepartment: request.DepartmentID,
		fieldHireDate:   request.HireDate.String(),
		fieldStatus:     status,
	}
	if request.Avatar != nil {
		record[fieldAvatar] = request.Avatar
	}

	created, err := r.CreateRecords(ctx, Table, []recordstore.Record{record})
	if err != nil {
		return CreateResponse{}, err
	}
	if len(created) == 0 {
		return CreateResponse{}, web.NewRequestError(errors.New("record store returned no created record"), http.StatusBadGateway)
	}

	return CreateResponse(fromRecord(created[0])), nil
}

func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) (UpdateResponse, error) {
	if err := r.ValidateStruct(&request,
		"ID", "FullName", "Email", "Phone", "Role", "DepartmentID", "HireDate",
	); err != nil {
		return UpdateResponse{}, err
	}

	status, err := resolveStatus(request.Status)
	if err != nil {
		return UpdateResponse{}, err
	}

	firstName, lastName := resolveNames(request.FullName, request.FirstName, request.LastName)

	record := recordstore.Record{
		fieldID:         request.ID,
		fieldName:       request.FullName,
		fieldFirstName:  firstName,
		fieldLastName:   lastName,
		fieldEmail:      request.Email,
		fieldPhone:      request.Phone,
		fieldRole:       request.Role,
		fieldDepartment: request.DepartmentID,
		fieldHireDate:   request.HireDate.String(),
		fieldStatus:     status,
	}
	if request.Avatar != nil {
		record[fieldAvatar] = request.Avatar
	}

	return r.update(ctx, record)
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) (UpdateResponse, error) {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return UpdateResponse{}, err
	}

	record := recordstore.Record{
		fieldID: request.ID,
	}

	if request.FullName != nil {
		record[fieldName] = request.FullName

		firstName, lastName := resolveNames(request.FullName, request.FirstName, request.LastName)
		if firstName != nil {
			record[fieldFirstName] = firstName
		}
		if lastName != nil {
			record[fieldLastName] = lastName
		}
	} else {
		if request.FirstName != nil {
			record[fieldFirstName] = request.FirstName
		}
		if request.LastName != nil {
			record[fieldLastName] = request.LastName
		}
	}

	if request.Email != nil {
		record[fieldEmail] = request.Email
	}
	if request.Phone != nil {
		record[fieldPhone] = request.Phone
	}
	if request.Role != nil {
		record[fieldRole] = request.Role
	}
	if request.DepartmentID != nil {
		record[fieldDepartment] = request.DepartmentID
	}
	if request.HireDate != nil {
		record[fieldHireDate] = request.HireDate.String()
	}
	if request.Status != nil {
		status, err := resolveStatus(request.Status)
		if err != nil {
			return UpdateResponse{}, err
		}
		record[fieldStatus] = status
	}
	if request.Avatar != nil {
		record[fieldAvatar] = request.Avatar
	}

	if len(record) == 1 {
		return UpdateResponse{}, web.NewRequestError(errors.New("no fields to update"), http.StatusBadRequest)
	}

	return r.update(ctx, record)
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRecords(ctx, Table, []int{id})
}

func (r Repository) update(ctx context.Context, record recordstore.Record) (UpdateResponse, error) {
	updated, err := r.UpdateRecords(ctx, Table, []recordstore.Record{record})
	if err != nil {
		return UpdateResponse{}, err
	}
	if len(updated) == 0 {
		return UpdateResponse{}, web.NewRequestError(errors.New("record store returned no updated record"), http.StatusBadGateway)
	}

	return UpdateResponse(fromRecord(updated[0])), nil
}

// resolveNames splits the full name into first and last name when the form
// did not provide them explicitly: "Jane van Doe" becomes "Jane" and
// "van Doe".
func resolveNames(fullName, firstName, lastName *string) (*string, *string) {
	explicit := (firstName != nil && *firstName != "") || (lastName != nil && *lastName != "")
	if explicit || fullName == nil {
		return firstName, lastName
	}

	parts := strings.Fields(*fullName)
	if len(parts) == 0 {
		return firstName, lastName
	}

	first := parts[0]
	last := strings.Join(parts[1:], " ")

	return &first, &last
}

func resolveStatus(status *string) (string, error) {
	if status == nil || *status == "" {
		return entity.StatusActive, nil
	}

	value := strings.ToLower(*status)
	if value != entity.StatusActive && value != entity.StatusInactive {
		return "", web.NewRequestError(errors.Errorf("incorrect status. status should be %s or %s", entity.StatusActive, entity.StatusInactive), http.StatusBadRequest)
	}

	return value, nil
}

func matchesSearch(detail GetListResponse, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}

	for _, field := range []*string{detail.FullName, detail.Email, detail.Phone, detail.Role} {
		if field != nil && strings.Contains(strings.ToLower(*field), search) {
			return true
		}
	}

	return false
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
