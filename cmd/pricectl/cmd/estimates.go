package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/inspection-pricing/internal/api/client"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

func estimatesCmd() *cobra.Command {
	estimatesRoot := &cobra.Command{
		Use:   "estimates",
		Short: "Query and manage estimates",
		Long:  "Query stored estimates, move them through their lifecycle, and export them.",
	}

	estimatesRoot.AddCommand(
		estimatesListCmd(),
		estimatesGetCmd(),
		estimatesStatusCmd(),
		estimatesExportCmd(),
	)

	return estimatesRoot
}

// estimateFilters holds the list flags shared by list and export.
type estimateFilters struct {
	shopID     string
	inspection string
	customerID string
	statuses   []string
	minTotal   float64
	maxTotal   float64
	divergent  string
	limit      int
	offset     int
	orderBy    string
}

func (f *estimateFilters) register(cmd *cobra.Command, defaultLimit int) {
	cmd.Flags().StringVar(&f.shopID, "shop", "", "shop ID filter")
	cmd.Flags().StringVar(&f.inspection, "inspection", "", "inspection ID filter")
	cmd.Flags().StringVar(&f.customerID, "customer", "", "customer ID filter")
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "status filter (draft, sent, approved, declined)")
	cmd.Flags().Float64Var(&f.minTotal, "min-total", 0, "minimum total")
	cmd.Flags().Float64Var(&f.maxTotal, "max-total", 0, "maximum total")
	cmd.Flags().StringVar(&f.divergent, "divergent", "", "only estimates whose formulas disagree (true, false)")
	cmd.Flags().IntVar(&f.limit, "limit", defaultLimit, "number of results")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&f.orderBy, "order-by", "", "sort order (created_at, updated_at, total)")
}

func (f *estimateFilters) params() (*apiclient.ListEstimatesParams, error) {
	p := &apiclient.ListEstimatesParams{
		ShopID:       f.shopID,
		InspectionID: f.inspection,
		CustomerID:   f.customerID,
		Statuses:     f.statuses,
		MinTotal:     f.minTotal,
		MaxTotal:     f.maxTotal,
		Limit:        f.limit,
		Offset:       f.offset,
		OrderBy:      f.orderBy,
	}
	if f.divergent != "" {
		d, err := strconv.ParseBool(f.divergent)
		if err != nil {
			return nil, fmt.Errorf("invalid --divergent value %q", f.divergent)
		}
		p.Divergent = &d
	}
	return p, nil
}

func estimatesListCmd() *cobra.Command {
	var filters estimateFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List estimates with optional filters",
		Example: `  # Latest estimates for a shop
  pricectl estimates list --shop shop-1

  # Approved estimates over $500, largest first
  pricectl estimates list --status approved --min-total 500 --order-by total

  # Estimates whose two formulas disagree
  pricectl estimates list --divergent true`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := filters.params()
			if err != nil {
				return err
			}

			resp, err := newClient().ListEstimates(cmd.Context(), params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}

			if len(resp.Estimates) == 0 {
				fmt.Fprintln(out, "No estimates found.")
				return nil
			}

			fmt.Fprintf(out, "Showing %d of %d estimates\n\n", len(resp.Estimates), resp.Total)
			return printEstimatesTable(out, resp.Estimates)
		},
	}
	filters.register(cmd, 50)

	return cmd
}

func estimatesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show estimate details and breakdown",
		Example: `  pricectl estimates get 4f9c2a`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := newClient().GetEstimate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), est)
			}
			return printEstimateDetail(cmd.OutOrStdout(), est)
		},
	}
}

func estimatesStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status <id> <draft|sent|approved|declined>",
		Short:   "Update an estimate's status",
		Example: `  pricectl estimates status 4f9c2a approved`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.EstimateStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}

			est, err := newClient().UpdateEstimateStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), est)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Estimate %s is now %s.\n", est.ID, est.Status)
			return nil
		},
	}
}

func estimatesExportCmd() *cobra.Command {
	var (
		filters estimateFilters
		xlsx    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export estimates to a spreadsheet",
		Long: "Export estimates matching the filters to an XLSX workbook with one row\n" +
			"per estimate and its itemized breakdown.",
		Example: `  pricectl estimates export --shop shop-1 --status approved --xlsx approved.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if xlsx == "" {
				return fmt.Errorf("--xlsx is required")
			}

			params, err := filters.params()
			if err != nil {
				return err
			}

			resp, err := newClient().ListEstimates(cmd.Context(), params)
			if err != nil {
				return err
			}

			f, err := os.Create(xlsx) //nolint:gosec // path from trusted CLI flag
			if err != nil {
				return fmt.Errorf("creating %s: %w", xlsx, err)
			}
			defer func() { _ = f.Close() }()

			if err := writeEstimatesXLSX(f, resp.Estimates); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d of %d estimates to %s\n",
				len(resp.Estimates), resp.Total, xlsx)
			return f.Close()
		},
	}
	filters.register(cmd, 1000)
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "output workbook path")

	return cmd
}
