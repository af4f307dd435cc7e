package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"atelier/docs"
	"atelier/internal/config"
	"atelier/internal/handler"
	"atelier/internal/logger"
	"atelier/internal/model"
	"atelier/internal/service"
)

// Handlers groups every HTTP handler the router wires.
type Handlers struct {
	Auth     *handler.AuthHandler
	Gallery  *handler.GalleryHandler
	Photo    *handler.PhotoHandler
	Event    *handler.EventHandler
	Contact  *handler.ContactHandler
	Taxonomy *handler.TaxonomyHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers, authService service.AuthService) {
	e.Use(middleware.RequestID())
	e.Use(logger.Middleware())
	e.Use(middleware.Recover())

	e.Validator = handler.NewValidator()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/slideshow", h.Gallery.Slideshow)
	api.GET("/gallery/:cat", h.Gallery.Category)
	api.GET("/gallery/:cat/:sub", h.Gallery.Category)
	api.GET("/gallery/:cat/:sub/:page", h.Gallery.Category)
	api.POST("/contact", h.Contact.Submit)
	api.GET("/events", h.Event.ListPublic)
	api.GET("/events/:id", h.Event.Get)
	api.POST("/events/:id/apply", h.Event.Apply)
	api.POST("/auth/login", h.Auth.Login)

	// Session routes
	secured := api.Group("", Session(authService))
	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/me", h.Auth.Me)

	// Admin routes
	admin := secured.Group("/admin", RequireRole(model.RoleAdmin))
	admin.GET("/taxonomy/:kind", h.Taxonomy.List)
	admin.POST("/taxonomy/:kind", h.Taxonomy.Register)
	admin.GET("/gallery", h.Photo.List)
	admin.GET("/gallery/unregistered", h.Photo.Unregistered)
	admin.POST("/gallery/photos", h.Photo.Register)
	admin.GET("/gallery/photos/:id", h.Photo.Get)
	admin.PUT("/gallery/photos/:id", h.Photo.Update)
	admin.GET("/events", h.Event.ListAdmin)
	admin.POST("/events", h.Event.Create)
	admin.GET("/events/:id", h.Event.AdminGet)
	admin.PUT("/events/:id", h.Event.Update)
}
