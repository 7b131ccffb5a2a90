package api

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"strconv"

	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/model"
	"weather-watchlist/pkg/http"

	"github.com/google/uuid"
)

// watchlistGatewayImpl implements the WatchlistGateway interface
type watchlistGatewayImpl struct {
	httpClient  *http.Client
	contextPath string
}

// NewWatchlistGateway creates a WatchlistGateway for the API served at baseURL under contextPath (usually /api)
func NewWatchlistGateway(baseURL, contextPath string, clientOptions http.ClientOptions) WatchlistGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapLogger{Name: "watchlist-api"}
	}
	return &watchlistGatewayImpl{
		httpClient:  http.NewHttpClient(baseURL, clientOptions),
		contextPath: contextPath,
	}
}

func (w *watchlistGatewayImpl) request(ctx context.Context, method http.RequestMethod, path string) *http.Request {
	return w.httpClient.Request().
		WithContext(ctx).
		WithMethod(method).
		WithPath(w.contextPath + path).
		WithHeaders(map[string]string{"X-Request-ID": uuid.NewString()}).
		WithErrorResp(&model.ErrorResponse{})
}

// ListLocations gets every tracked location
func (w *watchlistGatewayImpl) ListLocations(ctx context.Context) ([]entity.Location, error) {
	successResp, errResp, _, err := w.request(ctx, http.GET, "/locations").
		WithSuccessResp(&[]entity.Location{}).
		Execute()
	if err != nil {
		return nil, wrapError("list locations", errResp, err)
	}
	if successResp == nil {
		return []entity.Location{}, nil
	}
	return *successResp.(*[]entity.Location), nil
}

// AddLocation asks the API to geocode and track cityName
func (w *watchlistGatewayImpl) AddLocation(ctx context.Context, cityName string) (*entity.Location, error) {
	successResp, errResp, _, err := w.request(ctx, http.POST, "/locations").
		WithQueryParams(map[string]string{"city_name": cityName}).
		WithSuccessResp(&entity.Location{}).
		Execute()
	if err != nil {
		return nil, wrapError("add location", errResp, err)
	}
	return asLocation(successResp), nil
}

// SetFavorite updates the favorite flag of a location
func (w *watchlistGatewayImpl) SetFavorite(ctx context.Context, id int64, favorite bool) (*entity.Location, error) {
	return w.patch(ctx, id, map[string]string{"is_favorite": strconv.FormatBool(favorite)})
}

// Rename sets the display name of a location
func (w *watchlistGatewayImpl) Rename(ctx context.Context, id int64, displayName string) (*entity.Location, error) {
	return w.patch(ctx, id, map[string]string{"display_name": displayName})
}

func (w *watchlistGatewayImpl) patch(ctx context.Context, id int64, params map[string]string) (*entity.Location, error) {
	successResp, errResp, _, err := w.request(ctx, http.PATCH, fmt.Sprintf("/locations/%d", id)).
		WithQueryParams(params).
		WithSuccessResp(&entity.Location{}).
		Execute()
	if err != nil {
		return nil, wrapError(fmt.Sprintf("update location %d", id), errResp, err)
	}
	return asLocation(successResp), nil
}

// DeleteLocation stops tracking a location
func (w *watchlistGatewayImpl) DeleteLocation(ctx context.Context, id int64) error {
	_, errResp, _, err := w.request(ctx, http.DELETE, fmt.Sprintf("/locations/%d", id)).
		WithSuccessResp(&model.DeleteResponse{}).
		Execute()
	if err != nil {
		return wrapError(fmt.Sprintf("delete location %d", id), errResp, err)
	}
	return nil
}

// GetWeather gets the latest snapshot and the forecast of a location
func (w *watchlistGatewayImpl) GetWeather(ctx context.Context, id int64) (*model.WeatherReport, error) {
	successResp, errResp, _, err := w.request(ctx, http.GET, fmt.Sprintf("/weather/%d", id)).
		WithSuccessResp(&model.WeatherReport{}).
		Execute()
	if err != nil {
		return nil, wrapError(fmt.Sprintf("get weather %d", id), errResp, err)
	}
	report, ok := successResp.(*model.WeatherReport)
	if !ok || report == nil {
		return nil, fmt.Errorf("get weather %d: empty response", id)
	}
	return report, nil
}

// SyncLocation forces a provider refresh of a location
func (w *watchlistGatewayImpl) SyncLocation(ctx context.Context, id int64) (*entity.WeatherSnapshot, error) {
	successResp, errResp, _, err := w.request(ctx, http.POST, fmt.Sprintf("/sync/%d", id)).
		WithSuccessResp(&model.SyncResponse{}).
		Execute()
	if err != nil {
		return nil, wrapError(fmt.Sprintf("sync location %d", id), errResp, err)
	}
	if response, ok := successResp.(*model.SyncResponse); ok && response != nil {
		return &response.Data, nil
	}
	return nil, nil
}

// Search gets city suggestions for a partial name
func (w *watchlistGatewayImpl) Search(ctx context.Context, query string) ([]entity.Suggestion, error) {
	successResp, errResp, _, err := w.request(ctx, http.GET, "/search").
		WithQueryParams(map[string]string{"q": query}).
		WithSuccessResp(&[]entity.Suggestion{}).
		Execute()
	if err != nil {
		return nil, wrapError("search", errResp, err)
	}
	if successResp == nil {
		return []entity.Suggestion{}, nil
	}
	return *successResp.(*[]entity.Suggestion), nil
}

func asLocation(successResp any) *entity.Location {
	if location, ok := successResp.(*entity.Location); ok {
		return location
	}
	return nil
}

// wrapError keeps the StatusError reachable with errors.As and adds ErrNotFound for 404 answers.
func wrapError(operation string, errResp any, err error) error {
	message := ""
	if errorResponse, ok := errResp.(*model.ErrorResponse); ok {
		message = errorResponse.Error
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status == nethttp.StatusNotFound {
		err = errors.Join(ErrNotFound, err)
	}

	if message != "" {
		return fmt.Errorf("%s: %s: %w", operation, message, err)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
