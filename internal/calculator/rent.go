package calculator

// Rent share bounds, as a percent of monthly income.
const (
	MinRentPercent     = 20
	MaxRentPercent     = 40
	DefaultRentPercent = 30
)

// RentInput holds raw form values.
type RentInput struct {
	MonthlyIncome Amount `json:"monthlyIncome"`
	OtherExpenses Amount `json:"otherExpenses"`
	RentPercent   Amount `json:"rentPercent"`
}

// RentResult is the rent budget and what is left after it.
type RentResult struct {
	RentPercent     float64 `json:"rentPercent"`
	MaxRent         float64 `json:"maxRent"`
	RemainingIncome float64 `json:"remainingIncome"`
	Affordable      bool    `json:"affordable"`
}

// Rent budgets a share of income for rent.
func Rent(in RentInput) RentResult {
	income := in.MonthlyIncome.Float()
	expenses := in.OtherExpenses.Float()
	pct := clampRentPercent(in.RentPercent.Float())

	maxRent := income * pct / 100
	remaining := income - maxRent - expenses
	return RentResult{
		RentPercent:     pct,
		MaxRent:         maxRent,
		RemainingIncome: remaining,
		Affordable:      remaining > 0,
	}
}

func clampRentPercent(pct float64) float64 {
	switch {
	case pct == 0:
		return DefaultRentPercent
	case pct < MinRentPercent:
		return MinRentPercent
	case pct > MaxRentPercent:
		return MaxRentPercent
	default:
		return pct
	}
}
