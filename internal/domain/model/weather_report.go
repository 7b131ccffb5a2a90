package model

import "weather-watchlist/internal/domain/entity"

// WeatherReport is the body of GET /weather/{id}. Current is nil until the first sync stored a snapshot.
type WeatherReport struct {
	Location entity.Location         `json:"location"`
	Current  *entity.WeatherSnapshot `json:"current"`
	Forecast []entity.ForecastEntry  `json:"forecast"`
}

// SyncResponse is the body of POST /sync/{id}
type SyncResponse struct {
	Status string                 `json:"status"`
	Data   entity.WeatherSnapshot `json:"data"`
}

// DeleteResponse is the body of DELETE /locations/{id}
type DeleteResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the body of every non-2xx answer of the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// SyncMessage is the payload queued for asynchronous synchronization of one location
type SyncMessage struct {
	LocationID int64  `json:"location_id"`
	RequestID  string `json:"request_id"`
}
