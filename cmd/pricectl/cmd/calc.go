package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
)

func calcCmd() *cobra.Command {
	var (
		file   string
		remote bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Price resolved params",
		Long: "Price a fully resolved set of pricing params with both the estimate\n" +
			"formula and the itemized breakdown. Runs locally unless --remote is set;\n" +
			"nothing is stored either way.",
		Example: `  # Evaluate params offline
  pricectl calc -f params.yaml

  # Evaluate on the server
  pricectl calc -f params.yaml --remote --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("--file is required")
			}

			var params pricing.PricingParams
			if err := readDocument(file, &params); err != nil {
				return err
			}

			var calc engine.Calculation
			if remote {
				res, err := newClient().Calculate(cmd.Context(), &params)
				if err != nil {
					return err
				}
				calc = *res
			} else {
				calc = engine.NewEngine(nil).Calculate(params)
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), calc)
			}
			return printCalculation(cmd.OutOrStdout(), &calc)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with pricing params")
	cmd.Flags().BoolVar(&remote, "remote", false, "evaluate on the API server")

	return cmd
}
