package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkghttp "weather-watchlist/pkg/http"
)

func newWatchlistGateway(t *testing.T, handler http.HandlerFunc) WatchlistGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWatchlistGateway(srv.URL, "/api", pkghttp.ClientOptions{})
}

func TestAddLocationEscapesCityAndSendsRequestID(t *testing.T) {
	gateway := newWatchlistGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/locations" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("city_name"); got != "São Paulo & co" {
			t.Errorf("city_name not escaped correctly: %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":4,"name":"São Paulo","country":"BR","is_favorite":false,"last_synced":"2024-05-01T10:00:00.123456"}`))
	})

	location, err := gateway.AddLocation(context.Background(), "São Paulo & co")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if location.ID != 4 || location.Country != "BR" || location.LastSynced == nil {
		t.Fatalf("unexpected location %+v", location)
	}
}

func TestAddLocationNotFound(t *testing.T) {
	gateway := newWatchlistGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"City not found"}`))
	})

	_, err := gateway.AddLocation(context.Background(), "Atlantis")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusNotFound {
		t.Fatalf("expected StatusError 404, got %v", err)
	}
}

func TestGetWeatherWithNullCurrent(t *testing.T) {
	gateway := newWatchlistGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/weather/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"id":7,"name":"Oslo","country":"NO"},"current":null,"forecast":[{"timestamp":"2024-05-01T12:00:00","temp":3.4,"description":"snow","icon":"13d"}]}`))
	})

	report, err := gateway.GetWeather(context.Background(), 7)
	if err != nil {
		t.Fatalf("get weather: %v", err)
	}
	if report.Current != nil {
		t.Fatalf("expected nil current, got %+v", report.Current)
	}
	if len(report.Forecast) != 1 || report.Forecast[0].Icon != "13d" {
		t.Fatalf("unexpected forecast %+v", report.Forecast)
	}
}

func TestSetFavoriteSendsBoolean(t *testing.T) {
	gateway := newWatchlistGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/locations/1" || r.URL.Query().Get("is_favorite") != "true" {
			t.Errorf("unexpected %s %s?%s", r.Method, r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Lima","country":"PE","is_favorite":true}`))
	})

	location, err := gateway.SetFavorite(context.Background(), 1, true)
	if err != nil || !location.IsFavorite {
		t.Fatalf("unexpected %+v err=%v", location, err)
	}
}

func TestTransportFailureIsNotStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	gateway := NewWatchlistGateway(srv.URL, "/api", pkghttp.ClientOptions{})

	_, err := gateway.ListLocations(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("transport failure reported as status error: %v", err)
	}
}

func TestInvalidJSONIsReported(t *testing.T) {
	gateway := newWatchlistGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":`))
	})

	if _, err := gateway.ListLocations(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
