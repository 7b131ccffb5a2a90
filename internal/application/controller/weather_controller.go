package controller

import (
	"net/http"

	"weather-watchlist/internal/domain/model"
	"weather-watchlist/internal/domain/usecase/weather"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather and sync routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/:id", controller.GetWeather)
	controller.api.POST("/sync/:id", controller.SyncLocation)
}

// GetWeather godoc
// @Summary Current weather and forecast of a location
// @Description current is the latest stored snapshot and is null until the first sync.
// @Description forecast is fetched live and is empty when the provider is unavailable.
// @Tags weather
// @Produce json
// @Param id path int true "Location id"
// @Success 200 {object} model.WeatherReport
// @Failure 404 {object} model.ErrorResponse
// @Router /weather/{id} [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}

	report, err := controller.useCase.GetWeather(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// SyncLocation godoc
// @Summary Refresh the weather of a location
// @Tags weather
// @Produce json
// @Param id path int true "Location id"
// @Success 200 {object} model.SyncResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse "Weather API unavailable"
// @Router /sync/{id} [post]
func (controller *WeatherController) SyncLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}

	snapshot, err := controller.useCase.SyncLocation(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.SyncResponse{Status: "success", Data: *snapshot})
}
