package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler is the signature used by all application handlers in this service.
type Handler func(c *Context) error

// Middleware is a function designed to run some code before and/or after
// another Handler.
type Middleware func(Handler) Handler

// App is the entrypoint into our application. It configures the gin engine
// behind route registration so handlers can keep the Handler signature.
type App struct {
	*gin.Engine
	logger *zap.Logger
}

func NewApp(logger *zap.Logger) *App {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &App{
		Engine: engine,
		logger: logger,
	}
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodGet, path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodPost, path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodPut, path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodPatch, path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodDelete, path, handler, mw...)
}

func (a *App) handle(method, path string, handler Handler, mw ...Middleware) {
	// Wrap the handler right to left so the first middleware runs first.
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] != nil {
			handler = mw[i](handler)
		}
	}

	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := &Context{Context: c, Ctx: c.Request.Context()}

		if err := handler(ctx); err != nil {
			if a.logger != nil {
				a.logger.Error("handling request",
					zap.String("method", method),
					zap.String("path", path),
					zap.Error(err),
				)
			}

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, gin.H{
					"status":  false,
					"message": "internal server error",
				})
			}
		}
	})
}
