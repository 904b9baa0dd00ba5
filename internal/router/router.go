package router

import (
	"directory/backend/foundation/web"
	"directory/backend/internal/auth"
	"directory/backend/internal/middleware"
	"directory/backend/internal/pkg/config"
	"directory/backend/internal/pkg/recordstore"
	"directory/backend/internal/repository/store/department"
	"directory/backend/internal/repository/store/employee"

	auth_controller "directory/backend/internal/controller/http/v1/auth"
	department_controller "directory/backend/internal/controller/http/v1/department"
	employee_controller "directory/backend/internal/controller/http/v1/employee"
)

type Router struct {
	*web.App
	store *recordstore.Client
	cfg   *config.Config
	port  string
	auth  *auth.Auth
}

func NewRouter(
	app *web.App,
	store *recordstore.Client,
	cfg *config.Config,
	port string,
	auth *auth.Auth,
) *Router {
	return &Router{
		app,
		store,
		cfg,
		port,
		auth,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORSMiddleware(r.cfg.AllowedOrigins))

	// - record store
	employeeStore := employee.NewRepository(r.store)
	departmentStore := department.NewRepository(r.store)

	// controller
	employeeController := employee_controller.NewController(employeeStore, departmentStore)
	departmentController := department_controller.NewController(departmentStore)
	authController := auth_controller.NewController(r.auth, r.cfg.Accounts)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	// #employee
	r.Get("/api/v1/employee/list", employeeController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))
	r.Get("/api/v1/employee/export", employeeController.ExportEmployee, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/badges", employeeController.GetBadgeBook, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/:id", employeeController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))
	r.Post("/api/v1/employee/create", employeeController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/employee/:id", employeeController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/employee/:id", employeeController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/employee/:id", employeeController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #department
	r.Get("/api/v1/department/list", departmentController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))
	r.Get("/api/v1/department/:id", departmentController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/department/create", departmentController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/department/:id", departmentController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/department/:id", departmentController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
