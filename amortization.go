package debtservice

import (
	"fmt"
	"math"
	"time"
)

// Payment returns the fixed annual payment that amortizes principal over term
// years at rate.
//
//	payment = P·r(1+r)^n / ((1+r)^n − 1), with r = rate/100
//
// A zero rate is not special cased: the result is not a finite number.
func Payment(principal float64, rate Percent, term int) float64 {
	r := rate.Rate()
	growth := math.Pow(1+r, float64(term))
	return principal * (r * growth) / (growth - 1)
}

// ProjectCost is the cost of a single project at a given rate.
type ProjectCost struct {
	Project
	AnnualPayment   float64
	TotalInterest   float64 // over the whole term
	HouseholdImpact float64 // annual payment per household, 0 if unknown
}

// CostRecord is the outcome of an estimate, the one written to the ledger.
type CostRecord struct {
	Date      time.Time
	Currency  string
	BondYield Percent // base rate
	TotalRate Percent // BondYield + spread

	// aggregates over all projects
	TotalPrincipal float64
	AnnualPayment  float64
	TotalInterest  float64
	HouseholdCost  float64 // annual payment per household, 0 if unknown

	Projects []ProjectCost
}

// Estimate computes the cost of every project in cfg when the bond yield is bondYield.
//
// Figures are not rounded, rounding is a matter of display.
func Estimate(cfg Config, bondYield Percent, on time.Time) CostRecord {
	rec := CostRecord{
		Date:      on,
		Currency:  cfg.Currency,
		BondYield: bondYield,
		TotalRate: bondYield + cfg.Spread,
	}
	for _, p := range cfg.Projects {
		principal := float64(p.Principal)
		payment := Payment(principal, rec.TotalRate, p.Term)
		cost := ProjectCost{
			Project:       p,
			AnnualPayment: payment,
			TotalInterest: payment*float64(p.Term) - principal,
		}
		if cfg.Households > 0 {
			cost.HouseholdImpact = payment / float64(cfg.Households)
		}
		rec.TotalPrincipal += principal
		rec.AnnualPayment += cost.AnnualPayment
		rec.TotalInterest += cost.TotalInterest
		rec.Projects = append(rec.Projects, cost)
	}
	if cfg.Households > 0 {
		rec.HouseholdCost = rec.AnnualPayment / float64(cfg.Households)
	}
	return rec
}

// Check returns ErrNotFinite if the annual payment is NaN or infinite.
// Such a record can be neither logged nor displayed.
func (r CostRecord) Check() error {
	if math.IsNaN(r.AnnualPayment) || math.IsInf(r.AnnualPayment, 0) {
		return fmt.Errorf("%w: annual payment at a %v%% total rate is %v", ErrNotFinite, float64(r.TotalRate), r.AnnualPayment)
	}
	return nil
}

// M returns an amount as Money in the record's currency.
func (r CostRecord) M(amount float64) Money { return M(amount, r.Currency) }
