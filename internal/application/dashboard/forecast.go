package dashboard

import (
	"context"

	"weather-watchlist/internal/application/view"
	"weather-watchlist/pkg/country"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/msg"
	"weather-watchlist/pkg/util/numberutils"

	"go.uber.org/zap"
)

// ShowForecast renders the forecast of a location in server order and opens the overlay.
// On failure the overlay stays closed.
func (d *Dashboard) ShowForecast(ctx context.Context, id int64) error {
	report, err := d.gateway.GetWeather(ctx, id)
	if err != nil {
		log.Warn("failed to load forecast", zap.Int64("location_id", id), zap.Error(err))
		d.page.Toaster.Toast(view.ToastError, msg.GetMessage("dashboard.toast.forecast-failed"))
		return err
	}

	rows := make([]view.ForecastRow, 0, len(report.Forecast))
	for _, entry := range report.Forecast {
		at := entry.Timestamp.In(d.opts.TimeLocation)
		rows = append(rows, view.ForecastRow{
			Weekday:     at.Format("Mon"),
			Time:        at.Format("15:04"),
			Icon:        entry.Icon,
			IconURL:     d.iconURL(entry.Icon),
			Temp:        numberutils.RoundToInt(entry.Temp),
			Description: entry.Description,
		})
	}

	d.page.Overlay.Render(view.ForecastModel{
		Title:   report.Location.Label(),
		Country: country.Name(report.Location.Country, d.opts.Locale),
		Rows:    rows,
	})
	d.page.Overlay.Open()
	return nil
}
