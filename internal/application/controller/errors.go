package controller

import (
	"errors"
	"net/http"

	"weather-watchlist/internal/domain/model"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"
	"weather-watchlist/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, model.ErrorResponse{Error: message})
}

// respondError maps use case errors to their HTTP status. Unknown errors are logged and answered as 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrLocationNotFound):
		return errorJSON(c, http.StatusNotFound, msg.GetMessage("location.error.not-found"))
	case errors.Is(err, model.ErrCityNotFound):
		return errorJSON(c, http.StatusNotFound, msg.GetMessage("location.error.city-not-found"))
	case errors.Is(err, model.ErrProviderUnavailable):
		return errorJSON(c, http.StatusServiceUnavailable, msg.GetMessage("weather.error.provider-unavailable"))
	default:
		log.Error("Request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
}

// pathID reads the :id path parameter
func pathID(c echo.Context) (int64, error) {
	return numberutils.ToPositiveInt64(c.Param("id"))
}

func invalidID(c echo.Context) error {
	return errorJSON(c, http.StatusBadRequest, msg.GetMessage("location.error.invalid-id"))
}
