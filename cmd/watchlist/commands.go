package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"weather-watchlist/internal/application/dashboard"
	"weather-watchlist/pkg/resource"
	"weather-watchlist/pkg/util/numberutils"

	"github.com/spf13/cobra"
)

func newRootCommand(out io.Writer, in io.Reader) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "watchlist",
		Short:         "Track the weather of your favorite cities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogging(flags.verbose, cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)
	root.SetIn(in)

	root.PersistentFlags().StringVar(&flags.apiURL, "api-url", resource.GetString("app.client.base-url"), "watchlist API base URL")
	root.PersistentFlags().StringVar(&flags.locale, "locale", resource.GetString("app.client.locale"), "language of country names")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every API call")

	root.AddCommand(
		newListCommand(flags),
		newAddCommand(flags),
		newFavoriteCommand(flags),
		newDeleteCommand(flags),
		newSyncCommand(flags),
		newForecastCommand(flags),
		newSearchCommand(flags),
	)
	return root
}

func newListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every tracked city with its current weather",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := newApp(flags, cmd.OutOrStdout(), cmd.InOrStdin())
			defer a.dashboard.Wait()
			return a.dashboard.FetchLocations(cmd.Context())
		},
	}
}

func newAddCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <city name>",
		Short: "Add a city to the watchlist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(flags, cmd.OutOrStdout(), cmd.InOrStdin())
			defer a.dashboard.Wait()
			a.console.SetValue(joinArgs(args))
			return a.dashboard.AddCity(cmd.Context())
		},
	}
}

func newFavoriteCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle the favorite star of a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return onCard(cmd, flags, cmd.InOrStdin(), args[0], dashboard.TargetFavorite)
		},
	}
}

func newDeleteCommand(flags *globalFlags) *cobra.Command {
	var yes bool
	command := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a city from the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if yes {
				in = strings.NewReader("y\n")
			}
			return onCard(cmd, flags, in, args[0], dashboard.TargetDelete)
		},
	}
	command.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return command
}

func newForecastCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <id>",
		Short: "Show the 5-day forecast of a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := numberutils.ToPositiveInt64(args[0])
			if err != nil {
				return fmt.Errorf("invalid location id %q: %w", args[0], err)
			}
			a := newApp(flags, cmd.OutOrStdout(), cmd.InOrStdin())
			return a.dashboard.ClickCard(cmd.Context(), id, dashboard.TargetBody)
		},
	}
}

func newSyncCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the weather of every tracked city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := newApp(flags, cmd.OutOrStdout(), cmd.InOrStdin())
			defer a.dashboard.Wait()
			if err := a.dashboard.FetchLocations(cmd.Context()); err != nil {
				return err
			}
			a.dashboard.Wait()
			return a.dashboard.SyncAll(cmd.Context())
		},
	}
}

// newSearchCommand looks up one query, or reads queries line by line when none is given.
// Every line re-arms the debounce, so lines typed faster than the quiet period only search once.
func newSearchCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Suggest city names",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(flags, cmd.OutOrStdout(), cmd.InOrStdin())
			if len(args) > 0 {
				a.suggester.HandleSearch(cmd.Context(), joinArgs(args))
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				a.suggester.Input(cmd.Context(), scanner.Text())
			}
			a.suggester.Flush()
			a.suggester.Wait()
			return scanner.Err()
		},
	}
}

// onCard renders the list first so the card exists, then clicks the given control on it.
func onCard(cmd *cobra.Command, flags *globalFlags, in io.Reader, rawID string, target dashboard.Target) error {
	id, err := numberutils.ToPositiveInt64(rawID)
	if err != nil {
		return fmt.Errorf("invalid location id %q: %w", rawID, err)
	}

	a := newApp(flags, cmd.OutOrStdout(), in)
	defer a.dashboard.Wait()
	if err = a.dashboard.FetchLocations(cmd.Context()); err != nil {
		return err
	}
	a.dashboard.Wait()
	return a.dashboard.ClickCard(cmd.Context(), id, target)
}
