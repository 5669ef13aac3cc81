package calculator

import "math"

// MortgageInput holds raw form values.
type MortgageInput struct {
	Price        Amount `json:"price"`
	DownPayment  Amount `json:"downPayment"`
	InterestRate Amount `json:"interestRate"` // annual percent
	TermYears    Amount `json:"termYears"`
}

// MortgageResult is the amortized repayment for a fixed-rate loan.
type MortgageResult struct {
	LoanAmount     float64 `json:"loanAmount"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPaid      float64 `json:"totalPaid"`
}

// Mortgage computes the monthly payment on price less down payment.
func Mortgage(in MortgageInput) MortgageResult {
	principal := in.Price.Float() - in.DownPayment.Float()
	r := monthlyRate(in.InterestRate.Float())
	n := in.TermYears.Float() * 12

	res := MortgageResult{LoanAmount: math.Max(principal, 0)}
	if principal <= 0 || r <= 0 || n <= 0 {
		return res
	}

	growth := math.Pow(1+r, n)
	payment := finite(principal * r * growth / (growth - 1))
	if payment == 0 {
		return res
	}
	res.MonthlyPayment = payment
	res.TotalPaid = payment * n
	res.TotalInterest = res.TotalPaid - principal
	return res
}
