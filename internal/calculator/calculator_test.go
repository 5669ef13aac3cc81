package calculator

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"12.5", 12.5},
		{"3,000,000", 3000000},
		{" 600 000 ", 600000},
		{"1_000", 1000},
		{"-250", -250},
		{"NaN", 0},
		{"12abc", 12},
		{"7.5%", 7.5},
		{"+3", 3},
		{"5.", 5},
		{".5", 0.5},
		{"2e3", 2000},
		{"2ex", 2},
		{"1e99999999", 0},
		{"1e-99999999", 0},
		{"1e400", 0},
		{strings.Repeat("9", 100), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumber(tt.in), "input %q", tt.in)
	}
}

func TestParseNumber_HugeExponentReturnsPromptly(t *testing.T) {
	done := make(chan float64, 1)
	go func() { done <- ParseNumber("1e99999999") }()

	select {
	case got := <-done:
		assert.Zero(t, got)
	case <-time.After(2 * time.Second):
		t.Fatal("ParseNumber did not return")
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var in MortgageInput
	require.NoError(t, json.Unmarshal([]byte(`{"price":3000000,"downPayment":"600,000","interestRate":12.5,"termYears":null}`), &in))

	assert.Equal(t, Amount("3000000"), in.Price)
	assert.Equal(t, Amount("600,000"), in.DownPayment)
	assert.Equal(t, 12.5, in.InterestRate.Float())
	assert.Equal(t, Amount(""), in.TermYears)

	require.NoError(t, json.Unmarshal([]byte(`{"price":true,"downPayment":{"a":1}}`), &in))
	assert.Zero(t, in.Price.Float())
	assert.Zero(t, in.DownPayment.Float())
}

func TestMortgage(t *testing.T) {
	res := Mortgage(MortgageInput{Price: "3000000", DownPayment: "600000", InterestRate: "12.5", TermYears: "20"})

	assert.Equal(t, 2400000.0, res.LoanAmount)
	assert.InDelta(t, 27267.37, res.MonthlyPayment, 0.01)
	assert.InDelta(t, res.MonthlyPayment*240, res.TotalPaid, 1e-6)
	assert.InDelta(t, res.MonthlyPayment*240-2400000, res.TotalInterest, 1e-6)
}

func TestMortgage_NotComputable(t *testing.T) {
	tests := map[string]MortgageInput{
		"down covers price": {Price: "1000", DownPayment: "1000", InterestRate: "10", TermYears: "10"},
		"zero rate":         {Price: "1000", DownPayment: "0", InterestRate: "0", TermYears: "10"},
		"zero term":         {Price: "1000", DownPayment: "0", InterestRate: "10", TermYears: ""},
		"garbage":           {Price: "x", DownPayment: "y", InterestRate: "z", TermYears: "w"},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			res := Mortgage(in)
			assert.Zero(t, res.MonthlyPayment)
			assert.Zero(t, res.TotalInterest)
			assert.Zero(t, res.TotalPaid)
		})
	}
}

func TestAffordability(t *testing.T) {
	res := Affordability(AffordabilityInput{
		AnnualIncome: "960000",
		MonthlyDebts: "15000",
		DownPayment:  "500000",
		InterestRate: "12.5",
		TermYears:    "20",
	})

	assert.InDelta(t, 7400, res.MonthlyPayment, 1e-6)
	assert.InDelta(t, 651327.87, res.MaxLoan, 0.01)
	assert.InDelta(t, 1151327.87, res.MaxPrice, 0.01)
	assert.InDelta(t, 18.75, res.DebtToIncome, 1e-9)
	assert.Equal(t, DTIGood, res.Status)
}

func TestAffordability_DebtsExceedBudget(t *testing.T) {
	res := Affordability(AffordabilityInput{
		AnnualIncome: "120000",
		MonthlyDebts: "5000",
		DownPayment:  "100000",
		InterestRate: "12",
		TermYears:    "20",
	})
	assert.Equal(t, AffordabilityResult{Status: DTIGood}, res)
}

func TestClassifyDTI(t *testing.T) {
	assert.Equal(t, DTIGood, ClassifyDTI(28))
	assert.Equal(t, DTIFair, ClassifyDTI(28.01))
	assert.Equal(t, DTIFair, ClassifyDTI(36))
	assert.Equal(t, DTIPoor, ClassifyDTI(36.5))
}

func TestRent(t *testing.T) {
	res := Rent(RentInput{MonthlyIncome: "80000", OtherExpenses: "25000", RentPercent: "30"})

	assert.Equal(t, 30.0, res.RentPercent)
	assert.Equal(t, 24000.0, res.MaxRent)
	assert.Equal(t, 31000.0, res.RemainingIncome)
	assert.True(t, res.Affordable)
}

func TestRent_PercentBounds(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", DefaultRentPercent},
		{"abc", DefaultRentPercent},
		{"10", MinRentPercent},
		{"55", MaxRentPercent},
		{"35", 35},
	}
	for _, tt := range tests {
		res := Rent(RentInput{MonthlyIncome: "100000", RentPercent: Amount(tt.in)})
		assert.Equal(t, tt.want, res.RentPercent, "input %q", tt.in)
		assert.Equal(t, 100000*tt.want/100, res.MaxRent)
	}
}

func TestRent_NotAffordable(t *testing.T) {
	res := Rent(RentInput{MonthlyIncome: "50000", OtherExpenses: "35000", RentPercent: "30"})
	assert.Equal(t, 0.0, res.RemainingIncome)
	assert.False(t, res.Affordable)
}

func TestROI(t *testing.T) {
	res := ROI(ROIInput{
		PurchasePrice:      "3000000",
		DownPayment:        "600000",
		MonthlyRent:        "55000",
		MonthlyExpenses:    "8000",
		AnnualAppreciation: "5",
		HoldingYears:       "5",
	})

	assert.Equal(t, 47000.0, res.MonthlyCashFlow)
	assert.Equal(t, 564000.0, res.AnnualCashFlow)
	assert.InDelta(t, 7.8333, res.MonthlyROI, 1e-4)
	assert.InDelta(t, 94, res.AnnualROI, 1e-9)
	assert.Equal(t, res.AnnualROI, res.CashOnCashReturn)
	assert.InDelta(t, 3828844.6875, res.FutureValue, 1e-4)
	assert.InDelta(t, 3648844.6875, res.TotalReturn, 1e-4)
	assert.InDelta(t, 608.1408, res.TotalROI, 1e-4)
	assert.Equal(t, RatingExcellent, res.Rating)
}

func TestROI_NonPositiveStake(t *testing.T) {
	for _, in := range []ROIInput{
		{PurchasePrice: "0", DownPayment: "100", MonthlyRent: "10"},
		{PurchasePrice: "100", DownPayment: "", MonthlyRent: "10"},
		{PurchasePrice: "100", DownPayment: "-5", MonthlyRent: "10"},
	} {
		assert.Equal(t, ROIResult{Rating: RatingPoor}, ROI(in))
	}
}

func TestRateROI(t *testing.T) {
	assert.Equal(t, RatingExcellent, RateROI(15))
	assert.Equal(t, RatingGood, RateROI(14.99))
	assert.Equal(t, RatingGood, RateROI(10))
	assert.Equal(t, RatingFair, RateROI(5))
	assert.Equal(t, RatingPoor, RateROI(4.99))
	assert.Equal(t, RatingPoor, RateROI(-3))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "KES 27,267", FormatPrice(27267.37, "KES"))
	assert.Equal(t, "KES 3,828,845", FormatPrice(3828844.6875, "KES"))
	assert.Equal(t, "KES 999", FormatPrice(999.4, "KES"))
	assert.Equal(t, "KES 0", FormatPrice(0, "KES"))
	assert.Equal(t, "-1,500", FormatPrice(-1500, ""))
}
