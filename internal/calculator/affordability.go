package calculator

import "math"

// housingShare is the portion of gross monthly income allowed for housing.
const housingShare = 0.28

// DTIStatus classifies a debt-to-income ratio.
type DTIStatus string

const (
	DTIGood DTIStatus = "good"
	DTIFair DTIStatus = "fair"
	DTIPoor DTIStatus = "poor"
)

// ClassifyDTI buckets a debt-to-income percentage.
func ClassifyDTI(ratio float64) DTIStatus {
	switch {
	case ratio > 36:
		return DTIPoor
	case ratio > 28:
		return DTIFair
	default:
		return DTIGood
	}
}

// AffordabilityInput holds raw form values.
type AffordabilityInput struct {
	AnnualIncome Amount `json:"annualIncome"`
	MonthlyDebts Amount `json:"monthlyDebts"`
	DownPayment  Amount `json:"downPayment"`
	InterestRate Amount `json:"interestRate"`
	TermYears    Amount `json:"termYears"`
}

// AffordabilityResult is the largest purchase the income supports.
type AffordabilityResult struct {
	MaxPrice       float64   `json:"maxPrice"`
	MaxLoan        float64   `json:"maxLoan"`
	MonthlyPayment float64   `json:"monthlyPayment"`
	DebtToIncome   float64   `json:"debtToIncome"`
	Status         DTIStatus `json:"status"`
}

// Affordability applies the 28% housing rule.
func Affordability(in AffordabilityInput) AffordabilityResult {
	monthlyIncome := in.AnnualIncome.Float() / 12
	debts := in.MonthlyDebts.Float()
	down := in.DownPayment.Float()
	r := monthlyRate(in.InterestRate.Float())
	n := in.TermYears.Float() * 12

	available := monthlyIncome*housingShare - debts
	if available <= 0 || r <= 0 || n <= 0 {
		return AffordabilityResult{Status: DTIGood}
	}

	loan := finite(available * (1 - math.Pow(1+r, -n)) / r)
	var dti float64
	if monthlyIncome > 0 {
		dti = debts / monthlyIncome * 100
	}
	return AffordabilityResult{
		MaxLoan:        loan,
		MaxPrice:       loan + down,
		MonthlyPayment: available,
		DebtToIncome:   dti,
		Status:         ClassifyDTI(dti),
	}
}
