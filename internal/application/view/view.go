// Package view declares the widgets the dashboard renders into. Implementations must be safe for
// concurrent use: card hydrations run in parallel and each writes to its own panel.
package view

import (
	"time"

	"weather-watchlist/internal/domain/entity"
)

// ToastKind is the severity of a toast
type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toaster shows transient messages
type Toaster interface {
	Toast(kind ToastKind, message string)
}

// CardModel is what a card shows before its weather panel is hydrated
type CardModel struct {
	ID          int64
	Title       string
	CountryCode string
	Country     string
	Favorite    bool
	LastSynced  *time.Time
}

// WeatherModel is the hydrated content of a weather panel
type WeatherModel struct {
	Temp        int
	Description string
	Icon        string
	IconURL     string
	Humidity    int
	WindSpeed   float64
}

// Panel is the weather area of a card
type Panel interface {
	ShowSyncing()
	ShowUnavailable()
	ShowWeather(weather WeatherModel)
}

// Card is one location in the grid. Favorite reports the current visual state of the star control.
type Card interface {
	Panel() Panel
	Favorite() bool
	SetFavorite(favorite bool)
}

// Grid holds the cards
type Grid interface {
	Clear()
	ShowEmpty(message string)
	AddCard(card CardModel) Card
	RemoveCard(id int64)
}

// ForecastRow is one entry of the forecast overlay
type ForecastRow struct {
	Weekday     string
	Time        string
	Icon        string
	IconURL     string
	Temp        int
	Description string
}

// ForecastModel is the content of the forecast overlay
type ForecastModel struct {
	Title   string
	Country string
	Rows    []ForecastRow
}

// Overlay is the modal forecast panel
type Overlay interface {
	Render(forecast ForecastModel)
	Open()
}

// Suggestions is the list shown under the search input
type Suggestions interface {
	Show(suggestions []entity.Suggestion)
	Hide()
}

// Busy is a control that can show a busy state and be disabled while busy
type Busy interface {
	SetBusy(busy bool)
}

// Form is the add-city input and its submit control
type Form interface {
	Busy
	Value() string
	Clear()
}

// Confirmer asks a blocking yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// Page bundles every widget of the dashboard
type Page struct {
	Toaster     Toaster
	Grid        Grid
	Overlay     Overlay
	Suggestions Suggestions
	Form        Form
	SyncButton  Busy
	Confirmer   Confirmer
}
