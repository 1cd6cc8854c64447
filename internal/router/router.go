// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
)

// NewRouter builds the Echo instance with global middleware, system routes
// and the /api routes.
//
// The request id and New Relic transaction must exist before the context
// enhancer builds the request logger. The rate limiter runs last so its
// denials are logged like any other error.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	router.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerAPIRoutes(api, h)

	return router
}

func registerAPIRoutes(api *echo.Group, h *handler.Handlers) {
	properties := api.Group("/properties")
	properties.GET("", handler.Handle(h.Properties.Handler, h.Properties.ListProperties, http.StatusOK))
	properties.POST("", handler.Handle(h.Properties.Handler, h.Properties.CreateProperty, http.StatusCreated))

	reservations := api.Group("/reservations")
	reservations.GET("", handler.Handle(h.Reservations.Handler, h.Reservations.ListReservations, http.StatusOK))

	users := api.Group("/users")
	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated))
	users.GET("", handler.Handle(h.Users.Handler, h.Users.FindUser, http.StatusOK))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK))
}
