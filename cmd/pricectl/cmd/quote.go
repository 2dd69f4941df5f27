package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
)

func quoteCmd() *cobra.Command {
	var (
		file       string
		shopID     string
		inspection string
		sku        string
		customerID string
		bookings   int
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote an estimate",
		Long: "Price a service for an inspected vehicle and store the result as a\n" +
			"draft estimate. The request comes from a YAML or JSON file; flags\n" +
			"override the file.",
		Example: `  # Quote from a request file
  pricectl quote -f request.yaml

  # Reuse a request for a different service
  pricectl quote -f request.yaml --sku ceramic-coat`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("--file is required")
			}

			var req engine.QuoteRequest
			if err := readDocument(file, &req); err != nil {
				return err
			}
			if shopID != "" {
				req.ShopID = shopID
			}
			if inspection != "" {
				req.InspectionID = inspection
			}
			if sku != "" {
				req.ServiceSKU = sku
			}
			if customerID != "" {
				req.CustomerID = customerID
			}
			if cmd.Flags().Changed("bookings") {
				req.CurrentBookings = bookings
			}

			est, err := newClient().Quote(cmd.Context(), &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), est)
			}
			return printEstimateDetail(cmd.OutOrStdout(), est)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON quote request")
	cmd.Flags().StringVar(&shopID, "shop", "", "shop ID")
	cmd.Flags().StringVar(&inspection, "inspection", "", "inspection ID")
	cmd.Flags().StringVar(&sku, "sku", "", "service SKU")
	cmd.Flags().StringVar(&customerID, "customer", "", "customer ID")
	cmd.Flags().IntVar(&bookings, "bookings", 0, "jobs already booked today")

	return cmd
}
