package renderer

import (
	"github.com/etnz/debtservice"
)

// Estimate is the view of an estimate report.
// Numbers are handled using the display types (Money, Percent)
// So that they already contain basics renderers.
type Estimate struct {
	// Date of the estimate, as recorded in the ledger.
	Date string
	// Source of the bond yield.
	Source string
	// Fallback is true if no source answered.
	Fallback bool

	BondYield debtservice.Percent
	Spread    debtservice.Percent
	TotalRate debtservice.Percent

	TotalPrincipal debtservice.Money
	AnnualPayment  debtservice.Money
	TotalInterest  debtservice.Money
	// HouseholdCost is the annual payment per household, zero if unknown.
	HouseholdCost debtservice.Money

	Projects []EstimateProject
}

// EstimateProject is a line of the project table.
type EstimateProject struct {
	Name            string
	Term            int
	Principal       debtservice.Money
	AnnualPayment   debtservice.Money
	TotalInterest   debtservice.Money
	HouseholdImpact debtservice.Money
}

// NewEstimate creates the view of rec.
func NewEstimate(rec debtservice.CostRecord, quote debtservice.Quote) *Estimate {
	e := &Estimate{
		Date:           rec.Date.Format(debtservice.StampFormat),
		Source:         quote.Source,
		Fallback:       quote.Fallback,
		BondYield:      rec.BondYield.Round(3),
		Spread:         (rec.TotalRate - rec.BondYield).Round(3),
		TotalRate:      rec.TotalRate.Round(3),
		TotalPrincipal: rec.M(rec.TotalPrincipal),
		AnnualPayment:  rec.M(rec.AnnualPayment),
		TotalInterest:  rec.M(rec.TotalInterest),
		HouseholdCost:  rec.M(rec.HouseholdCost),
	}
	for _, p := range rec.Projects {
		e.Projects = append(e.Projects, EstimateProject{
			Name:            p.Name,
			Term:            p.Term,
			Principal:       rec.M(float64(p.Principal)),
			AnnualPayment:   rec.M(p.AnnualPayment),
			TotalInterest:   rec.M(p.TotalInterest),
			HouseholdImpact: rec.M(p.HouseholdImpact),
		})
	}
	return e
}
