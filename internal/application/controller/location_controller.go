package controller

import (
	"net/http"
	"strconv"

	"weather-watchlist/internal/domain/gateway/db"
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/internal/domain/usecase/location"
	"weather-watchlist/pkg/msg"

	"github.com/labstack/echo/v4"
)

type LocationController struct {
	api     *echo.Group
	useCase location.UseCase
}

func NewLocationController(api *echo.Group, useCase location.UseCase) *LocationController {
	return &LocationController{api: api, useCase: useCase}
}

// InitLocationRoutes initializes location and search routes
func (controller *LocationController) InitLocationRoutes() {
	controller.api.GET("/locations", controller.ListLocations)
	controller.api.POST("/locations", controller.CreateLocation)
	controller.api.PATCH("/locations/:id", controller.UpdateLocation)
	controller.api.DELETE("/locations/:id", controller.DeleteLocation)
	controller.api.GET("/search", controller.SearchCities)
}

// ListLocations godoc
// @Summary List tracked locations
// @Tags locations
// @Produce json
// @Success 200 {array} entity.Location
// @Failure 500 {object} model.ErrorResponse
// @Router /locations [get]
func (controller *LocationController) ListLocations(c echo.Context) error {
	locations, err := controller.useCase.ListLocations(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, locations)
}

// CreateLocation godoc
// @Summary Add a city to the watchlist
// @Description Resolves the city name with geocoding, stores it and runs an initial weather sync.
// @Description A city already tracked at the same coordinates is returned as is.
// @Tags locations
// @Produce json
// @Param city_name query string true "City name"
// @Success 200 {object} entity.Location
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse "City not found or API error"
// @Router /locations [post]
func (controller *LocationController) CreateLocation(c echo.Context) error {
	cityName := c.QueryParam("city_name")
	if cityName == "" {
		return errorJSON(c, http.StatusBadRequest, msg.GetMessage("location.error.city-required"))
	}

	created, err := controller.useCase.CreateLocation(c.Request().Context(), cityName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

// UpdateLocation godoc
// @Summary Update a location
// @Tags locations
// @Produce json
// @Param id path int true "Location id"
// @Param is_favorite query bool false "Favorite flag"
// @Param display_name query string false "Display name"
// @Success 200 {object} entity.Location
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /locations/{id} [patch]
func (controller *LocationController) UpdateLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}

	var update db.LocationUpdate
	if raw := c.QueryParam("is_favorite"); raw != "" {
		favorite, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return errorJSON(c, http.StatusBadRequest, msg.GetMessage("location.error.invalid-favorite"))
		}
		update.IsFavorite = &favorite
	}
	if c.QueryParams().Has("display_name") {
		displayName := c.QueryParam("display_name")
		update.DisplayName = &displayName
	}

	updated, err := controller.useCase.UpdateLocation(c.Request().Context(), id, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteLocation godoc
// @Summary Remove a location and its snapshots
// @Tags locations
// @Produce json
// @Param id path int true "Location id"
// @Success 200 {object} model.DeleteResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /locations/{id} [delete]
func (controller *LocationController) DeleteLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}

	if err := controller.useCase.DeleteLocation(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.DeleteResponse{OK: true})
}

// SearchCities godoc
// @Summary Autocomplete city names
// @Description Up to 5 matches; queries shorter than 3 characters answer an empty list.
// @Tags search
// @Produce json
// @Param q query string true "Partial city name"
// @Success 200 {array} entity.Suggestion
// @Router /search [get]
func (controller *LocationController) SearchCities(c echo.Context) error {
	suggestions, err := controller.useCase.SearchCities(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, suggestions)
}
