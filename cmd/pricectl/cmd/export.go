package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

const estimatesSheet = "Estimates"

var estimateHeader = []any{
	"id", "shop_id", "inspection_id", "customer_id", "service_sku", "status",
	"vehicle", "total", "breakdown_total", "divergent",
	"base_price", "labor_cost", "damage_surcharge", "area_surcharge",
	"weather_surcharge", "seasonal_adjustment", "competitor_adjustment",
	"membership_discount", "loyalty_credit", "savings",
	"warnings", "created_at",
}

// writeEstimatesXLSX writes one row per estimate to a single-sheet workbook.
func writeEstimatesXLSX(w io.Writer, estimates []domain.Estimate) error {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), estimatesSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := xl.SetSheetRow(estimatesSheet, "A1", &estimateHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range estimates {
		e := &estimates[i]
		b := &e.Breakdown
		row := []any{
			e.ID, e.ShopID, e.InspectionID, e.CustomerID, e.ServiceSKU, string(e.Status),
			fmt.Sprintf("%d %s %s", e.Vehicle.Year, e.Vehicle.Make, e.Vehicle.Model),
			e.Total, b.Total, e.Divergent,
			b.BasePrice, b.LaborCost, b.DamageSurcharge, b.AreaSurcharge,
			b.WeatherSurcharge, b.SeasonalAdjustment, b.CompetitorAdjustment,
			b.MembershipDiscount, b.LoyaltyCredit, b.Savings,
			strings.Join(e.ValidationErrors, "; "),
			e.CreatedAt.UTC().Format(time.RFC3339),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := xl.SetSheetRow(estimatesSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := xl.SetPanes(estimatesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if _, err := xl.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
