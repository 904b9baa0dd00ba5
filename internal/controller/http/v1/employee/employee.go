package employee

import (
	"net/http"
	"reflect"

	"directory/backend/foundation/web"
	department_repo "directory/backend/internal/repository/store/department"
	"directory/backend/internal/repository/store/employee"
	"directory/backend/internal/service"
)

type Controller struct {
	employee   Employee
	department Department
}

func NewController(employee Employee, department Department) *Controller {
	return &Controller{employee, department}
}

// employee

func (uc Controller) GetList(c *web.Context) error {
	var filter employee.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if departmentId, ok := c.GetQueryFunc(reflect.Int, "department_id").(*int); ok {
		filter.DepartmentID = departmentId
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.employee.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request employee.CreateRequest

	if err := c.BindFunc(&request, "FullName", "Email", "Phone", "Role", "DepartmentID", "HireDate"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateAll(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request employee.UpdateRequest

	if err := c.BindFunc(&request, "FullName", "Email", "Phone", "Role", "DepartmentID", "HireDate"); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	response, err := uc.employee.UpdateAll(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request employee.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	response, err := uc.employee.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.employee.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ExportEmployee(c *web.Context) error {
	rows, err := uc.directoryRows(c)
	if err != nil {
		return c.RespondError(err)
	}

	workbook, err := service.BuildDirectoryWorkbook(rows)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"employees.xlsx\"")
	c.Status(http.StatusOK)

	if err := workbook.Write(c.Writer); err != nil {
		return c.RespondError(err)
	}

	return nil
}

func (uc Controller) GetBadgeBook(c *web.Context) error {
	rows, err := uc.directoryRows(c)
	if err != nil {
		return c.RespondError(err)
	}

	book, err := service.BuildBadgeBook(rows)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\"badges.pdf\"")
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(book.Bytes()); err != nil {
		return c.RespondError(err)
	}

	return nil
}

// directoryRows flattens the whole directory with department names
// resolved, the shape the export and badge services consume.
func (uc Controller) directoryRows(c *web.Context) ([]service.DirectoryRow, error) {
	list, _, err := uc.employee.GetList(c.Ctx, employee.Filter{})
	if err != nil {
		return nil, err
	}

	departments, _, err := uc.department.GetList(c.Ctx, department_repo.Filter{})
	if err != nil {
		return nil, err
	}

	departmentNames := make(map[int]string, len(departments))
	for _, d := range departments {
		if d.Name != nil {
			departmentNames[d.ID] = *d.Name
		}
	}

	rows := make([]service.DirectoryRow, 0, len(list))
	for _, e := range list {
		row := service.DirectoryRow{
			FullName:  deref(e.FullName),
			FirstName: deref(e.FirstName),
			LastName:  deref(e.LastName),
			Email:     deref(e.Email),
			Phone:     deref(e.Phone),
			Role:      deref(e.Role),
			Status:    deref(e.Status),
		}
		if e.DepartmentID != nil {
			row.Department = departmentNames[*e.DepartmentID]
		}
		if e.HireDate != nil {
			row.HireDate = e.HireDate.String()
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
