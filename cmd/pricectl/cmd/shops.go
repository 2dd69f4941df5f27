package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/inspection-pricing/internal/api/client"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
)

func shopsCmd() *cobra.Command {
	shopsRoot := &cobra.Command{
		Use:   "shops",
		Short: "Manage shops",
		Long:  "Create shops and manage their rates, multiplier tables, and service catalog.",
	}

	shopsRoot.AddCommand(
		shopsListCmd(),
		shopsGetCmd(),
		shopsCreateCmd(),
		shopsSettingsCmd(),
	)

	return shopsRoot
}

func shopsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all shops",
		RunE: func(cmd *cobra.Command, _ []string) error {
			shops, err := newClient().ListShops(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, shops)
			}
			if len(shops) == 0 {
				fmt.Fprintln(out, "No shops found.")
				return nil
			}
			return printShopsTable(out, shops)
		},
	}
}

func shopsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show shop details and service catalog",
		Example: `  pricectl shops get shop-1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shop, err := newClient().GetShop(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), shop)
			}
			return printShopDetail(cmd.OutOrStdout(), shop)
		},
	}
}

func shopsCreateCmd() *cobra.Command {
	var (
		capacity     int
		settingsFile string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a shop",
		Example: `  # Create a shop with the default catalog
  pricectl shops create "Uptown Auto Spa" --capacity 12

  # Create a shop with custom settings
  pricectl shops create "Downtown Detail" -f settings.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &apiclient.CreateShopRequest{Name: args[0], DailyCapacity: capacity}
			if settingsFile != "" {
				var s pricing.ShopSettings
				if err := readDocument(settingsFile, &s); err != nil {
					return err
				}
				req.Settings = &s
			}

			shop, err := newClient().CreateShop(cmd.Context(), req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), shop)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created shop %s (%s).\n", shop.Name, shop.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "jobs per day before surge pricing applies")
	cmd.Flags().StringVarP(&settingsFile, "file", "f", "", "YAML or JSON shop settings")

	return cmd
}

func shopsSettingsCmd() *cobra.Command {
	var settingsFile string

	cmd := &cobra.Command{
		Use:   "settings <id>",
		Short: "Show or replace a shop's settings",
		Long: "Without --file, print the shop's settings as JSON. With --file, replace\n" +
			"them; quotes priced afterwards use the new settings.",
		Example: `  # Save current settings, edit, and apply
  pricectl shops settings shop-1 > settings.json
  pricectl shops settings shop-1 -f settings.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			out := cmd.OutOrStdout()

			if settingsFile == "" {
				shop, err := c.GetShop(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return outputJSON(out, shop.Settings)
			}

			var s pricing.ShopSettings
			if err := readDocument(settingsFile, &s); err != nil {
				return err
			}

			shop, err := c.UpdateShopSettings(cmd.Context(), args[0], &s)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(out, shop)
			}
			fmt.Fprintf(out, "Updated settings for %s (%d packages).\n", shop.ID, len(shop.Settings.Packages))
			return nil
		},
	}
	cmd.Flags().StringVarP(&settingsFile, "file", "f", "", "YAML or JSON shop settings to apply")

	return cmd
}
