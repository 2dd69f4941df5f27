package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printEstimatesTable(w io.Writer, estimates []domain.Estimate) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSHOP\tINSPECTION\tSERVICE\tSTATUS\tTOTAL\tDIVERGENT\tCREATED\n")
	for i := range estimates {
		e := &estimates[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t$%.2f\t%v\t%s\n",
			e.ID,
			e.ShopID,
			e.InspectionID,
			e.ServiceSKU,
			e.Status,
			e.Total,
			e.Divergent,
			e.CreatedAt.Format(time.DateTime),
		)
	}
	return tw.finish()
}

func printEstimateDetail(w io.Writer, e *domain.Estimate) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", e.ID)
	tw.writef("Shop:\t%s\n", e.ShopID)
	tw.writef("Inspection:\t%s\n", e.InspectionID)
	if e.CustomerID != "" {
		tw.writef("Customer:\t%s\n", e.CustomerID)
	}
	tw.writef("Service:\t%s\n", e.ServiceSKU)
	tw.writef("Status:\t%s\n", e.Status)
	tw.writef("Vehicle:\t%d %s %s\n", e.Vehicle.Year, e.Vehicle.Make, e.Vehicle.Model)
	tw.writef("Total:\t$%.2f\n", e.Total)
	tw.writef("Breakdown Total:\t$%.2f\n", e.Breakdown.Total)
	if e.Divergent {
		tw.writef("Divergent:\tyes\n")
	}
	for _, msg := range e.ValidationErrors {
		tw.writef("Warning:\t%s\n", msg)
	}
	if err := tw.finish(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	if err != nil {
		return err
	}
	return printBreakdown(w, &e.Breakdown)
}

func printCalculation(w io.Writer, calc *engine.Calculation) error {
	tw := newTabWriter(w)
	tw.writef("Estimate:\t$%.2f\n", calc.Estimate)
	tw.writef("Breakdown Total:\t$%.2f\n", calc.Breakdown.Total)
	tw.writef("Divergent:\t%v\n", calc.Divergent)
	for _, msg := range calc.ValidationErrors {
		tw.writef("Warning:\t%s\n", msg)
	}
	if err := tw.finish(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return printBreakdown(w, &calc.Breakdown)
}

func printBreakdown(w io.Writer, b *pricing.PriceBreakdown) error {
	tw := newTabWriter(w)
	tw.writef("COMPONENT\tVALUE\n")
	tw.writef("Base price\t$%.2f\n", b.BasePrice)
	tw.writef("Labor\t$%.2f\n", b.LaborCost)
	tw.writef("Damage surcharge\t$%.2f\n", b.DamageSurcharge)
	tw.writef("Area surcharge\t$%.2f\n", b.AreaSurcharge)
	tw.writef("Filthiness\tx%.3f\n", b.FilthinessMultiplier)
	tw.writef("Workload\tx%.3f\n", b.WorkloadMultiplier)
	tw.writef("Location\tx%.3f\n", b.LocationMultiplier)
	tw.writef("Skill\tx%.3f\n", b.SkillMultiplier)
	tw.writef("Weather surcharge\t$%.2f\n", b.WeatherSurcharge)
	tw.writef("Seasonal adjustment\t$%.2f\n", b.SeasonalAdjustment)
	tw.writef("Competitor adjustment\t$%.2f\n", b.CompetitorAdjustment)
	tw.writef("Membership discount\t-$%.2f\n", b.MembershipDiscount)
	tw.writef("Loyalty credit\t-$%.2f\n", b.LoyaltyCredit)
	tw.writef("Subtotal\t$%.2f\n", b.Subtotal)
	tw.writef("Total\t$%.2f\n", b.Total)
	tw.writef("Savings\t$%.2f\n", b.Savings)
	return tw.finish()
}

func printShopsTable(w io.Writer, shops []domain.Shop) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tCAPACITY\tLABOR RATE\tPACKAGES\n")
	for i := range shops {
		tw.writef("%s\t%s\t%d\t$%.2f\t%d\n",
			shops[i].ID,
			truncate(shops[i].Name, 40),
			shops[i].DailyCapacity,
			shops[i].Settings.LaborRate,
			len(shops[i].Settings.Packages),
		)
	}
	return tw.finish()
}

func printShopDetail(w io.Writer, s *domain.Shop) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", s.ID)
	tw.writef("Name:\t%s\n", s.Name)
	tw.writef("Daily Capacity:\t%d\n", s.DailyCapacity)
	tw.writef("Labor Rate:\t$%.2f/hr\n", s.Settings.LaborRate)
	tw.writef("Skill Markup:\t%.0f%%\n", s.Settings.SkillMarkup*100)
	tw.writef("Location Surcharge:\t%.0f%%\n", s.Settings.LocationSurcharge*100)
	if err := tw.finish(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw = newTabWriter(w)
	tw.writef("SKU\tNAME\tBASE PRICE\tHOURS\n")
	for _, p := range s.Settings.Packages {
		tw.writef("%s\t%s\t$%.2f\t%.1f\n", p.SKU, p.Name, p.BasePrice, p.DefaultDuration)
	}
	return tw.finish()
}

func printCustomerDetail(w io.Writer, c *domain.Customer) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", c.ID)
	tw.writef("Shop:\t%s\n", c.ShopID)
	if c.Name != "" {
		tw.writef("Name:\t%s\n", c.Name)
	}
	tw.writef("Tier:\t%s\n", c.Profile.MembershipTier)
	tw.writef("Loyalty Points:\t%d\n", c.Profile.LoyaltyPoints)
	tw.writef("Historical Spend:\t$%.2f\n", c.Profile.HistoricalSpend)
	return tw.finish()
}

func printMarket(w io.Writer, snap *domain.MarketSnapshot, stored bool) error {
	tw := newTabWriter(w)
	tw.writef("Shop:\t%s\n", snap.ShopID)
	tw.writef("Day:\t%s\n", snap.Day.Format(time.DateOnly))
	source := "stored"
	if !stored {
		source = "neutral (nothing stored)"
	}
	tw.writef("Source:\t%s\n", source)
	tw.writef("Weather:\t%s (x%.2f)\n", snap.Weather, snap.Conditions.WeatherFactor)
	tw.writef("Seasonal Demand:\tx%.2f\n", snap.Conditions.SeasonalDemand)
	tw.writef("Competitor Index:\t%+.2f\n", snap.Conditions.CompetitorIndex)
	tw.writef("Local Demand:\tx%.2f\n", snap.Conditions.LocalDemand)
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
