// Package dashboard orchestrates the watchlist page: it loads the tracked locations, renders one card
// per location, hydrates every card with its weather and applies the user's mutations while keeping
// the location mirror and the rendered cards in step.
package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"weather-watchlist/internal/application/view"
	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/gateway/api"
	"weather-watchlist/pkg/country"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const defaultIconBaseURL = "https://openweathermap.org/img/wn"

// Target is the part of a card that received a click
type Target int

const (
	TargetBody Target = iota
	TargetFavorite
	TargetDelete
)

// Options tune rendering. Zero values use English, the OpenWeather icon CDN and the local time zone.
type Options struct {
	Locale       language.Tag
	IconBaseURL  string
	TimeLocation *time.Location
}

// Dashboard owns the location mirror and the card registry of one page.
type Dashboard struct {
	gateway api.WatchlistGateway
	page    view.Page
	opts    Options
	mirror  *Mirror

	// mu makes a view change and the mirror change it accompanies one step.
	mu    sync.Mutex
	cards map[int64]view.Card

	hydrations sync.WaitGroup
}

func New(gateway api.WatchlistGateway, page view.Page, opts Options) *Dashboard {
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	if opts.IconBaseURL == "" {
		opts.IconBaseURL = defaultIconBaseURL
	}
	if opts.TimeLocation == nil {
		opts.TimeLocation = time.Local
	}

	return &Dashboard{
		gateway: gateway,
		page:    page,
		opts:    opts,
		mirror:  &Mirror{},
		cards:   make(map[int64]view.Card),
	}
}

// Mirror exposes the location mirror for read access
func (d *Dashboard) Mirror() *Mirror {
	return d.mirror
}

// FetchLocations replaces the mirror with the server collection and re-renders the grid.
// On failure the previous mirror and render are left untouched.
func (d *Dashboard) FetchLocations(ctx context.Context) error {
	locations, err := d.gateway.ListLocations(ctx)
	if err != nil {
		log.Warn("failed to load locations", zap.Error(err))
		d.page.Toaster.Toast(view.ToastError, msg.GetMessage("dashboard.toast.load-failed"))
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.mirror.Replace(locations)
	d.renderLocked(ctx)
	return nil
}

// RenderLocations rebuilds the grid from the mirror and starts one hydration per card.
func (d *Dashboard) RenderLocations(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renderLocked(ctx)
}

func (d *Dashboard) renderLocked(ctx context.Context) {
	locations, version := d.mirror.Snapshot()

	d.page.Grid.Clear()
	clear(d.cards)

	if len(locations) == 0 {
		d.page.Grid.ShowEmpty(msg.GetMessage("dashboard.empty"))
		return
	}

	log.Debug("rendering locations", zap.Int("count", len(locations)), zap.Uint64("version", version))
	for _, location := range locations {
		card := d.page.Grid.AddCard(d.cardModel(location))
		d.cards[location.ID] = card

		d.hydrations.Add(1)
		go func(id int64, panel view.Panel) {
			defer d.hydrations.Done()
			d.LoadWeatherData(ctx, id, panel)
		}(location.ID, card.Panel())
	}
}

// ClickCard routes a click. Clicks on a control run that control only and never open the overlay.
func (d *Dashboard) ClickCard(ctx context.Context, id int64, target Target) error {
	switch target {
	case TargetFavorite:
		return d.ToggleFavorite(ctx, id)
	case TargetDelete:
		return d.DeleteLocation(ctx, id)
	default:
		return d.ShowForecast(ctx, id)
	}
}

// Wait blocks until every hydration started so far has finished.
func (d *Dashboard) Wait() {
	d.hydrations.Wait()
}

func (d *Dashboard) card(id int64) (view.Card, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	card, ok := d.cards[id]
	return card, ok
}

func (d *Dashboard) cardModel(location entity.Location) view.CardModel {
	model := view.CardModel{
		ID:          location.ID,
		Title:       location.Label(),
		CountryCode: location.Country,
		Country:     country.Name(location.Country, d.opts.Locale),
		Favorite:    location.IsFavorite,
	}
	if location.LastSynced != nil {
		synced := location.LastSynced.In(d.opts.TimeLocation)
		model.LastSynced = &synced
	}
	return model
}

func (d *Dashboard) iconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return strings.TrimRight(d.opts.IconBaseURL, "/") + "/" + icon + "@2x.png"
}
