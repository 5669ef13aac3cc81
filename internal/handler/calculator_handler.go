package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kenyareal/internal/calculator"
)

const displayCurrency = "KES"

// CalculatorHandler exposes the financial tools. Inputs are strings as typed
// into a form; unparsable values count as zero.
type CalculatorHandler struct{}

// NewCalculatorHandler creates a new calculator handler.
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// MortgageResponse is the mortgage result with display strings.
type MortgageResponse struct {
	calculator.MortgageResult
	Display map[string]string `json:"display"`
}

// AffordabilityResponse is the affordability result with display strings.
type AffordabilityResponse struct {
	calculator.AffordabilityResult
	Display map[string]string `json:"display"`
}

// RentResponse is the rent result with display strings.
type RentResponse struct {
	calculator.RentResult
	Display map[string]string `json:"display"`
}

// ROIResponse is the ROI result with display strings.
type ROIResponse struct {
	calculator.ROIResult
	Display map[string]string `json:"display"`
}

func kes(v float64) string {
	return calculator.FormatPrice(v, displayCurrency)
}

// Mortgage godoc
// @Summary Mortgage repayment
// @Tags tools
// @Accept json
// @Produce json
// @Param request body calculator.MortgageInput true "Loan details"
// @Success 200 {object} MortgageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /tools/mortgage [post]
func (h *CalculatorHandler) Mortgage(c echo.Context) error {
	var in calculator.MortgageInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res := calculator.Mortgage(in)
	return c.JSON(http.StatusOK, MortgageResponse{
		MortgageResult: res,
		Display: map[string]string{
			"loanAmount":     kes(res.LoanAmount),
			"monthlyPayment": kes(res.MonthlyPayment),
			"totalInterest":  kes(res.TotalInterest),
			"totalPaid":      kes(res.TotalPaid),
		},
	})
}

// Affordability godoc
// @Summary How much house an income supports
// @Tags tools
// @Accept json
// @Produce json
// @Param request body calculator.AffordabilityInput true "Income and loan details"
// @Success 200 {object} AffordabilityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /tools/affordability [post]
func (h *CalculatorHandler) Affordability(c echo.Context) error {
	var in calculator.AffordabilityInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res := calculator.Affordability(in)
	return c.JSON(http.StatusOK, AffordabilityResponse{
		AffordabilityResult: res,
		Display: map[string]string{
			"maxPrice":       kes(res.MaxPrice),
			"maxLoan":        kes(res.MaxLoan),
			"monthlyPayment": kes(res.MonthlyPayment),
		},
	})
}

// Rent godoc
// @Summary Rent budget
// @Tags tools
// @Accept json
// @Produce json
// @Param request body calculator.RentInput true "Income and expenses"
// @Success 200 {object} RentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /tools/rent [post]
func (h *CalculatorHandler) Rent(c echo.Context) error {
	var in calculator.RentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res := calculator.Rent(in)
	return c.JSON(http.StatusOK, RentResponse{
		RentResult: res,
		Display: map[string]string{
			"maxRent":         kes(res.MaxRent),
			"remainingIncome": kes(res.RemainingIncome),
		},
	})
}

// ROI godoc
// @Summary Buy-to-let return on investment
// @Tags tools
// @Accept json
// @Produce json
// @Param request body calculator.ROIInput true "Investment details"
// @Success 200 {object} ROIResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /tools/roi [post]
func (h *CalculatorHandler) ROI(c echo.Context) error {
	var in calculator.ROIInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res := calculator.ROI(in)
	return c.JSON(http.StatusOK, ROIResponse{
		ROIResult: res,
		Display: map[string]string{
			"monthlyCashFlow": kes(res.MonthlyCashFlow),
			"annualCashFlow":  kes(res.AnnualCashFlow),
			"futureValue":     kes(res.FutureValue),
			"totalReturn":     kes(res.TotalReturn),
		},
	})
}
