package chatbot

import (
	"math"

	"github.com/shopspring/decimal"
)

// EMITenures are the loan terms, in months, offered in every EMI breakdown.
var EMITenures = []int{12, 24, 36, 48, 60}

// EMI returns the rounded monthly instalment of an amortized loan.
// annualRate is in percent.
func EMI(principal int64, annualRate float64, months int) int64 {
	if months <= 0 {
		return principal
	}
	p := float64(principal)
	r := annualRate / 12 / 100
	if r == 0 {
		return roundRupees(p / float64(months))
	}
	growth := math.Pow(1+r, float64(months))
	return roundRupees(p * r * growth / (growth - 1))
}

func roundRupees(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

// Schedule returns one EMIOption per tenure.
func Schedule(principal int64, annualRate float64, tenures []int) []EMIOption {
	out := make([]EMIOption, 0, len(tenures))
	for _, n := range tenures {
		emi := EMI(principal, annualRate, n)
		total := emi * int64(max(n, 1))
		out = append(out, EMIOption{
			TenureMonths: n,
			EMI:          emi,
			TotalPayment: total,
			Interest:     total - principal,
		})
	}
	return out
}
