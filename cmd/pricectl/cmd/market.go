package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
)

func marketCmd() *cobra.Command {
	marketRoot := &cobra.Command{
		Use:   "market",
		Short: "Manage per-shop market conditions",
		Long: "Read and set the daily weather, competitor pressure, and local demand\n" +
			"that feed every quote.",
	}

	marketRoot.AddCommand(
		marketGetCmd(),
		marketSetCmd(),
		marketRefreshCmd(),
	)

	return marketRoot
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --day %q: want YYYY-MM-DD", s)
	}
	return day, nil
}

func marketGetCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:     "get <shop-id>",
		Short:   "Show a shop's market conditions",
		Example: `  pricectl market get shop-1 --day 2026-03-09`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(day)
			if err != nil {
				return err
			}

			resp, err := newClient().GetMarket(cmd.Context(), args[0], d)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printMarket(cmd.OutOrStdout(), resp.Snapshot, resp.Stored)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "day as YYYY-MM-DD (default: today)")

	return cmd
}

func marketSetCmd() *cobra.Command {
	var (
		day        string
		weather    string
		competitor float64
		demand     float64
	)

	cmd := &cobra.Command{
		Use:   "set <shop-id>",
		Short: "Set a shop's market conditions for a day",
		Example: `  # Rainy day with a competitor undercutting by 5%
  pricectl market set shop-1 --weather rain --competitor -0.05 --demand 1.1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(day)
			if err != nil {
				return err
			}

			resp, err := newClient().SetMarket(cmd.Context(), args[0], &engine.MarketUpdate{
				Day:             d,
				Weather:         pricing.WeatherCondition(weather),
				CompetitorIndex: competitor,
				LocalDemand:     demand,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printMarket(cmd.OutOrStdout(), resp.Snapshot, resp.Stored)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "day as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&weather, "weather", "clear", "weather (clear, rain, snow, extreme)")
	cmd.Flags().Float64Var(&competitor, "competitor", 0, "competitor index in [-1, 1]")
	cmd.Flags().Float64Var(&demand, "demand", 1.0, "local demand multiplier")

	return cmd
}

func marketRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Create today's snapshot for every shop lacking one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := newClient().RefreshMarket(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]int{"created": created})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d market snapshots.\n", created)
			return nil
		},
	}
}
