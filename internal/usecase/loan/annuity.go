package loan

import "github.com/shopspring/decimal"

// MonthlyPayment computes the fixed annuity installment for a principal at
// an annual rate over months, rounded to 2 decimal places (half up):
//
//	P * r * (1+r)^n / ((1+r)^n - 1), r = annual/12
//
// A zero rate degrades to straight-line principal / months.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	p := decimal.NewFromFloat(principal)
	if annualRate == 0 {
		return p.DivRound(decimal.NewFromInt(int64(months)), 2).InexactFloat64()
	}
	r := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(12))
	one := decimal.NewFromInt(1)
	factor := one.Add(r).Pow(decimal.NewFromInt(int64(months)))
	payment := p.Mul(r).Mul(factor).DivRound(factor.Sub(one), 8)
	return payment.Round(2).InexactFloat64()
}
