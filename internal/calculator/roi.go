package calculator

import "math"

// Rating grades an investment by its annual return.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// RateROI grades an annual ROI percentage.
func RateROI(annualROI float64) Rating {
	switch {
	case annualROI >= 15:
		return RatingExcellent
	case annualROI >= 10:
		return RatingGood
	case annualROI >= 5:
		return RatingFair
	default:
		return RatingPoor
	}
}

// ROIInput holds raw form values.
type ROIInput struct {
	PurchasePrice      Amount `json:"purchasePrice"`
	DownPayment        Amount `json:"downPayment"`
	MonthlyRent        Amount `json:"monthlyRent"`
	MonthlyExpenses    Amount `json:"monthlyExpenses"`
	AnnualAppreciation Amount `json:"annualAppreciation"` // percent
	HoldingYears       Amount `json:"holdingYears"`
}

// ROIResult projects a buy-to-let over the holding period.
type ROIResult struct {
	MonthlyCashFlow  float64 `json:"monthlyCashFlow"`
	AnnualCashFlow   float64 `json:"annualCashFlow"`
	MonthlyROI       float64 `json:"monthlyROI"`
	AnnualROI        float64 `json:"annualROI"`
	CashOnCashReturn float64 `json:"cashOnCashReturn"`
	FutureValue      float64 `json:"futureValue"`
	TotalReturn      float64 `json:"totalReturn"`
	TotalROI         float64 `json:"totalROI"`
	Rating           Rating  `json:"rating"`
}

// ROI returns all zeros when price or down payment is not positive.
func ROI(in ROIInput) ROIResult {
	price := in.PurchasePrice.Float()
	down := in.DownPayment.Float()
	if price <= 0 || down <= 0 {
		return ROIResult{Rating: RatingPoor}
	}
	appreciation := in.AnnualAppreciation.Float() / 100
	years := in.HoldingYears.Float()

	monthly := in.MonthlyRent.Float() - in.MonthlyExpenses.Float()
	annual := monthly * 12
	annualROI := annual / down * 100
	future := finite(price * math.Pow(1+appreciation, years))
	total := (future - price) + annual*years

	return ROIResult{
		MonthlyCashFlow:  monthly,
		AnnualCashFlow:   annual,
		MonthlyROI:       monthly / down * 100,
		AnnualROI:        annualROI,
		CashOnCashReturn: annualROI,
		FutureValue:      future,
		TotalReturn:      total,
		TotalROI:         total / down * 100,
		Rating:           RateROI(annualROI),
	}
}
