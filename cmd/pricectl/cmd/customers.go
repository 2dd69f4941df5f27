package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

func customersCmd() *cobra.Command {
	customersRoot := &cobra.Command{
		Use:   "customers",
		Short: "Manage customer loyalty profiles",
	}

	customersRoot.AddCommand(
		customersGetCmd(),
		customersSetCmd(),
	)

	return customersRoot
}

func customersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <shop-id> <customer-id>",
		Short:   "Show a customer's loyalty profile",
		Example: `  pricectl customers get shop-1 cust-42`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient().GetCustomer(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), c)
			}
			return printCustomerDetail(cmd.OutOrStdout(), c)
		},
	}
}

func customersSetCmd() *cobra.Command {
	var (
		name   string
		tier   string
		points int
		spend  float64
	)

	cmd := &cobra.Command{
		Use:     "set <shop-id> <customer-id>",
		Short:   "Create or replace a customer's loyalty profile",
		Example: `  pricectl customers set shop-1 cust-42 --name "Ada" --tier gold --points 2500`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := newClient().UpsertCustomer(cmd.Context(), &domain.Customer{
				ID:     args[1],
				ShopID: args[0],
				Name:   name,
				Profile: pricing.CustomerProfile{
					MembershipTier:  pricing.MembershipTier(tier),
					LoyaltyPoints:   points,
					HistoricalSpend: spend,
				},
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), saved)
			}
			return printCustomerDetail(cmd.OutOrStdout(), saved)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&tier, "tier", "", "membership tier (none, bronze, silver, gold, platinum)")
	cmd.Flags().IntVar(&points, "points", 0, "loyalty points")
	cmd.Flags().Float64Var(&spend, "spend", 0, "historical spend")

	return cmd
}
