package dashboard

import (
	"context"

	"weather-watchlist/internal/application/view"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/util/numberutils"

	"go.uber.org/zap"
)

// LoadWeatherData fills one card's weather panel. A location without a stored snapshot shows the
// syncing placeholder; a failed call shows the unavailable placeholder and affects nothing else.
func (d *Dashboard) LoadWeatherData(ctx context.Context, id int64, panel view.Panel) {
	report, err := d.gateway.GetWeather(ctx, id)
	if err != nil {
		log.Warn("failed to load weather", zap.Int64("location_id", id), zap.Error(err))
		panel.ShowUnavailable()
		return
	}

	current := report.Current
	if current == nil {
		panel.ShowSyncing()
		return
	}

	panel.ShowWeather(view.WeatherModel{
		Temp:        numberutils.RoundToInt(current.Temp),
		Description: current.Description,
		Icon:        current.Icon,
		IconURL:     d.iconURL(current.Icon),
		Humidity:    current.Humidity,
		WindSpeed:   current.WindSpeed,
	})
}
