package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"placeshare/internal/config"
	"placeshare/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	placeHandler *handler.PlaceHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded profile images
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Place routes
	api.GET("/place/:pid", placeHandler.GetPlace)
	api.GET("/place/user/:uid", placeHandler.GetPlacesByUser)
	api.POST("/place", placeHandler.CreatePlace)
	api.PATCH("/place/:pid", placeHandler.UpdatePlace)
	api.DELETE("/place/:pid", placeHandler.DeletePlace)

	// User routes
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users/signup", userHandler.Signup)
	api.POST("/users/login", userHandler.Login)
	api.POST("/users/refresh", userHandler.Refresh)
	api.POST("/users/logout", userHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("/users", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", userHandler.Me)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
