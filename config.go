package debtservice

// Defaults of the estimator. They are the values used when nothing is overridden.
const (
	DefaultSpread   Percent = 0.90 // municipal risk premium over the bond yield.
	DefaultFallback Percent = 3.86 // used when every rate source fails.
	DefaultCurrency         = "CAD"
	DefaultLedger           = "interest_rate_log.csv"
)

// Project is a capital project to be financed by debt.
type Project struct {
	Name      string
	Principal int64 // in whole currency units
	Term      int   // in years
}

// Config holds the parameters of an estimate.
//
// A Config is built once and passed by value, it is never modified afterwards.
type Config struct {
	Spread     Percent   // added to the bond yield to get the borrowing rate
	Fallback   Percent   // rate used by the Resolver when all sources fail
	Manual     Percent   // manual override of the bond yield, ignored unless > 0
	Households int       // number of households sharing the burden, ignored unless > 0
	Currency   string    // ISO code of the principals
	Projects   []Project // the debt shopping list
}

// DefaultConfig returns the configuration with the default debt shopping list.
func DefaultConfig() Config {
	return Config{
		Spread:   DefaultSpread,
		Fallback: DefaultFallback,
		Currency: DefaultCurrency,
		Projects: []Project{
			{Name: "SEC Arena", Principal: 140_000_000, Term: 30},
			{Name: "Police Station Redevelop.", Principal: 56_000_000, Term: 30},
			{Name: "Southwest Community Centre", Principal: 44_000_000, Term: 30},
			{Name: "Oak Park Rd Extension", Principal: 97_000_000, Term: 30},
		},
	}
}
