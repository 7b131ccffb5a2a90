package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-watchlist/internal/application/view"
	"weather-watchlist/internal/domain/entity"
	"weather-watchlist/internal/domain/gateway/api"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownLocation is returned when a control refers to a card that is not rendered.
var ErrUnknownLocation = errors.New("unknown location")

// AddCity submits the form value. The server resolves the city, so on success the list is
// fetched again instead of synthesizing the new entry locally.
func (d *Dashboard) AddCity(ctx context.Context) error {
	form := d.page.Form
	cityName := strings.TrimSpace(form.Value())
	if cityName == "" {
		return nil
	}

	form.SetBusy(true)
	defer form.SetBusy(false)

	location, err := d.gateway.AddLocation(ctx, cityName)
	if err != nil {
		log.Warn("failed to add city", zap.String("city", cityName), zap.Error(err))
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			d.page.Toaster.Toast(view.ToastError, msg.GetMessage("dashboard.toast.city-not-found"))
		} else {
			d.page.Toaster.Toast(view.ToastError, msg.GetMessage("dashboard.toast.add-failed"))
		}
		return err
	}

	form.Clear()
	label := cityName
	if location != nil {
		label = location.Label()
	}
	d.page.Toaster.Toast(view.ToastSuccess, msg.GetMessage("dashboard.toast.added", label))
	return d.FetchLocations(ctx)
}

// ToggleFavorite inverts the star of a card. State changes only after the server confirmed,
// and go to the card rendered at that moment, which a refresh during the call may have replaced.
func (d *Dashboard) ToggleFavorite(ctx context.Context, id int64) error {
	card, ok := d.card(id)
	if !ok {
		return fmt.Errorf("toggle favorite %d: %w", id, ErrUnknownLocation)
	}
	favorite := !card.Favorite()

	if _, err := d.gateway.SetFavorite(ctx, id, favorite); err != nil {
		log.Warn("failed to update favorite", zap.Int64("location_id", id), zap.Error(err))
		d.page.Toaster.Toast(view.ToastError, msg.GetMessage("dashboard.toast.favorite-failed"))
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	current, ok := d.cards[id]
	if !ok {
		log.Debug("favorite confirmed for a card no longer rendered", zap.Int64("location_id", id))
		return nil
	}
	current.SetFavorite(favorite)
	d.mirror.Update(id, func(location *entity.Location) {
		location.IsFavorite = favorite
	})
	return nil
}

// DeleteLocation asks for confirmation, then removes the location on the server and its card locally.
// The grid is only re-rendered when the last card goes, to show the empty placeholder.
func (d *Dashboard) DeleteLocation(ctx context.Context, id int64) error {
	label := fmt.Sprintf("#%d", id)
	if location, ok := d.mirror.Get(id); ok {
		label = location.Label()
	}
	if !d.page.Confirmer.Confirm(msg.GetMessage("dashboard.confirm-delete", label)) {
		return nil
	}

	if err := d.gateway.DeleteLocation(ctx, id); err != nil {
		log.Warn("failed to delete location", zap.Int64("location_id", id), zap.Error(err))
		d.page.Toaster.Toast(view.ToastError, msg.GetMessage("dashboard.toast.delete-failed"))
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.page.Grid.RemoveCard(id)
	delete(d.cards, id)
	if remaining, _ := d.mirror.Remove(id); remaining == 0 {
		d.renderLocked(ctx)
	}
	d.page.Toaster.Toast(view.ToastSuccess, msg.GetMessage("dashboard.toast.deleted"))
	return nil
}

// SyncAll forces a provider refresh of every mirrored location concurrently. The list is
// fetched again only when every call succeeded; any failure yields one aggregate toast.
func (d *Dashboard) SyncAll(ctx context.Context) error {
	ids := d.mirror.IDs()
	d.page.Toaster.Toast(view.ToastInfo, msg.GetMessage("dashboard.toast.sync-start"))

	d.page.SyncButton.SetBusy(true)
	defer d.page.SyncButton.SetBusy(false)

	var group errgroup.Group
	for _, id := range ids {
		group.Go(func() error {
			if _, err := d.gateway.SyncLocation(ctx, id); err != nil {
				log.Warn("failed to sync location", zap.Int64("location_id", id), zap.Error(err))
				return err
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		d.page.Toaster.Toast(view.ToastError, msg.GetMessage("dashboard.toast.sync-failed"))
		return err
	}

	d.page.Toaster.Toast(view.ToastSuccess, msg.GetMessage("dashboard.toast.sync-done"))
	return d.FetchLocations(ctx)
}
