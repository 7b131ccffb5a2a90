package main

import (
	"io"
	"strings"

	_ "weather-watchlist/configs"
	"weather-watchlist/internal/application/dashboard"
	"weather-watchlist/internal/application/view/console"
	"weather-watchlist/internal/domain/gateway/api"
	"weather-watchlist/pkg/country"
	pkghttp "weather-watchlist/pkg/http"
	"weather-watchlist/pkg/log"
	"weather-watchlist/pkg/resource"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is one dashboard page rendered on the console.
type app struct {
	console   *console.Console
	dashboard *dashboard.Dashboard
	suggester *dashboard.Suggester
}

type globalFlags struct {
	apiURL  string
	locale  string
	verbose bool
}

func newApp(flags *globalFlags, out io.Writer, in io.Reader) *app {
	gateway := api.NewWatchlistGateway(flags.apiURL, resource.GetString("app.server.context-path"), pkghttp.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.client.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.client.read-timeout"),
	})

	view := console.New(out, in)
	page := view.Page()

	return &app{
		console: view,
		dashboard: dashboard.New(gateway, page, dashboard.Options{
			Locale:      country.Tag(flags.locale),
			IconBaseURL: resource.GetString("app.client.icon-base-url"),
		}),
		suggester: dashboard.NewSuggester(gateway, page, dashboard.SuggesterOptions{
			Delay:     resource.GetDuration("app.search.debounce"),
			MinLength: resource.GetInt("app.search.min-length"),
			DropStale: resource.GetBool("app.search.drop-stale"),
		}),
	}
}

// configureLogging keeps the console readable: only errors reach stderr unless verbose is set.
func configureLogging(verbose bool, out io.Writer) {
	level := zap.ErrorLevel
	if verbose {
		level = zap.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(out), level)
	log.Replace(zap.New(core, zap.AddCallerSkip(1)))
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
