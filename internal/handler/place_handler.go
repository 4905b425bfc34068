package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"placeshare/internal/errors"
	"placeshare/internal/service"
)

// PlaceHandler handles place endpoints.
type PlaceHandler struct {
	placeService service.PlaceService
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(placeService service.PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService}
}

// CreatePlaceRequest represents a place creation request.
type CreatePlaceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
	Address     string `json:"address" validate:"required"`
	Creator     string `json:"creator" validate:"required,uuid"`
}

// UpdatePlaceRequest represents a place update request.
type UpdatePlaceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

// GetPlace godoc
// @Summary Get place by id
// @Tags places
// @Produce json
// @Param pid path string true "Place ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /place/{pid} [get]
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		return invalidInput("invalid place id")
	}

	place, err := h.placeService.GetPlace(c.Request().Context(), placeID)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"place": place})
}

// GetPlacesByUser godoc
// @Summary List places owned by a user
// @Tags places
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /place/user/{uid} [get]
func (h *PlaceHandler) GetPlacesByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		return invalidInput("invalid user id")
	}

	places, err := h.placeService.GetPlacesByUser(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"places": places})
}

// CreatePlace godoc
// @Summary Create a place
// @Tags places
// @Accept json
// @Produce json
// @Param request body CreatePlaceRequest true "Place data"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /place [post]
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	var req CreatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput("invalid inputs passed, please check your data")
	}

	// validate:"uuid" already vetted the format
	creator, err := uuid.Parse(req.Creator)
	if err != nil {
		return invalidInput("invalid creator id")
	}

	place, err := h.placeService.CreatePlace(c.Request().Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Creator:     creator,
	})
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"place": place})
}

// UpdatePlace godoc
// @Summary Update a place's title and description
// @Tags places
// @Accept json
// @Produce json
// @Param pid path string true "Place ID"
// @Param request body UpdatePlaceRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /place/{pid} [patch]
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		return invalidInput("invalid place id")
	}

	var req UpdatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return invalidInput("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput("invalid inputs passed, please check your data")
	}

	place, err := h.placeService.UpdatePlace(c.Request().Context(), placeID, req.Title, req.Description)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"updatePlace": place})
}

// DeletePlace godoc
// @Summary Delete a place
// @Tags places
// @Produce json
// @Param pid path string true "Place ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /place/{pid} [delete]
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		return invalidInput("invalid place id")
	}

	if err := h.placeService.DeletePlace(c.Request().Context(), placeID); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Delete successfully"})
}

// mapError funnels a service error through the domain taxonomy.
func mapError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// invalidInput rejects a request before any service call.
func invalidInput(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
		Message: message,
		Code:    "VALIDATION_ERROR",
	})
}
