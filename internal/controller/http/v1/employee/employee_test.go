package employee

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"directory/backend/foundation/web"
	"directory/backend/internal/pkg/recordstore"
	department_repo "directory/backend/internal/repository/store/department"
	employee_repo "directory/backend/internal/repository/store/employee"
)

// newDirectoryServer wires the controller against a fake record store the
// way the router does, minus auth.
func newDirectoryServer(t *testing.T, store http.HandlerFunc) *httptest.Server {
	t.Helper()

	storeServer := httptest.NewServer(store)
	t.Cleanup(storeServer.Close)

	client := recordstore.NewClient(recordstore.Config{
		BaseURL:   storeServer.URL,
		ProjectID: "proj",
		APIKey:    "key",
	}, zap.NewNop())

	controller := NewController(employee_repo.NewRepository(client), department_repo.NewRepository(client))

	app := web.NewApp(zap.NewNop())
	app.Get("/api/v1/employee/list", controller.GetList)
	app.Post("/api/v1/employee/create", controller.Create)
	app.Put("/api/v1/employee/:id", controller.UpdateAll)
	app.Get("/api/v1/employee/export", controller.ExportEmployee)

	server := httptest.NewServer(app.Engine)
	t.Cleanup(server.Close)

	return server
}

func fakeStore(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/tables/employees/records/query"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data": []map[string]interface{}{
					{"Id": 1, "Name": "Jane Doe", "Role": "Engineer", "DepartmentId": 4, "HireDate": "2023-04-01"},
				},
			})
		case strings.Contains(r.URL.Path, "/tables/departments/records/query"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data": []map[string]interface{}{
					{"Id": 4, "Name": "Platform"},
				},
			})
		case strings.Contains(r.URL.Path, "/tables/employees/records") && r.Method == http.MethodPost:
			var body struct {
				Records []map[string]interface{} `json:"records"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Records, 1)

			record := body.Records[0]
			record["Id"] = 7

			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"results": []map[string]interface{}{
					{"success": true, "data": record},
				},
			})
		default:
			t.Errorf("unexpected store request: %s %s", r.Method, r.URL.Path)
		}
	}
}

func TestGetListEndpoint(t *testing.T) {
	server := newDirectoryServer(t, fakeStore(t))

	resp, err := http.Get(server.URL + "/api/v1/employee/list")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Status bool `json:"status"`
		Data   struct {
			Count   int `json:"count"`
			Results []struct {
				ID       int     `json:"id"`
				FullName *string `json:"full_name"`
				Status   *string `json:"status"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	assert.True(t, decoded.Status)
	assert.Equal(t, 1, decoded.Data.Count)
	require.Len(t, decoded.Data.Results, 1)
	require.NotNil(t, decoded.Data.Results[0].Status)
	assert.Equal(t, "active", *decoded.Data.Results[0].Status)
}

func TestCreateEndpoint(t *testing.T) {
	server := newDirectoryServer(t, fakeStore(t))

	body := `{
		"full_name": "Jane Doe",
		"email": "jane@corp.io",
		"phone": "+1 555 0100",
		"role": "Engineer",
		"department_id": 4,
		"hire_date": "2023-04-01"
	}`

	resp, err := http.Post(server.URL+"/api/v1/employee/create", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Status bool `json:"status"`
		Data   struct {
			ID        int     `json:"id"`
			FirstName *string `json:"first_name"`
			LastName  *string `json:"last_name"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	assert.True(t, decoded.Status)
	assert.Equal(t, 7, decoded.Data.ID)
	require.NotNil(t, decoded.Data.FirstName)
	assert.Equal(t, "Jane", *decoded.Data.FirstName)
	require.NotNil(t, decoded.Data.LastName)
	assert.Equal(t, "Doe", *decoded.Data.LastName)
}

func TestCreateEndpointRejectsMissingEmail(t *testing.T) {
	server := newDirectoryServer(t, fakeStore(t))

	body := `{
		"full_name": "Jane Doe",
		"phone": "+1 555 0100",
		"role": "Engineer",
		"department_id": 4,
		"hire_date": "2023-04-01"
	}`

	resp, err := http.Post(server.URL+"/api/v1/employee/create", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var decoded struct {
		Status bool              `json:"status"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	assert.False(t, decoded.Status)
	assert.Contains(t, decoded.Fields, "email")
}

func TestUpdateAllEndpointRequiresFields(t *testing.T) {
	server := newDirectoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("store must not be called for an incomplete update: %s %s", r.Method, r.URL.Path)
	})

	body := `{
		"full_name": "Jane Doe",
		"email": "jane@corp.io",
		"phone": "+1 555 0100",
		"department_id": 4,
		"hire_date": "2023-04-01"
	}`

	request, err := http.NewRequest(http.MethodPut, server.URL+"/api/v1/employee/7", strings.NewReader(body))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var decoded struct {
		Status bool              `json:"status"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	assert.False(t, decoded.Status)
	assert.Contains(t, decoded.Fields, "role")
}

func TestExportEndpoint(t *testing.T) {
	server := newDirectoryServer(t, fakeStore(t))

	resp, err := http.Get(server.URL + "/api/v1/employee/export")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"),
	)
}
