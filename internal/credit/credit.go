// Package credit computes loan amortization schedules. It is plain
// closed-form and loop arithmetic; nothing here touches the expression
// pipeline.
package credit

import (
	"math"
	"strconv"
)

// ParamError indicates a loan parameter outside its allowed range.
type ParamError struct {
	// Name is the parameter name.
	Name string
	// Value is the rejected value.
	Value float64
}

func (err *ParamError) Error() string {
	return "invalid " + err.Name + ": " + strconv.FormatFloat(err.Value, 'g', -1, 64)
}

// Annuity is a fixed-payment schedule.
type Annuity struct {
	// Monthly is the constant monthly payment.
	Monthly float64
	// Total is the amount paid over the whole term.
	Total float64
	// Overpay is Total minus the principal.
	Overpay float64
}

// Differentiated is a declining-payment schedule.
type Differentiated struct {
	// Payments holds one payment per month, largest first.
	Payments []float64
	// Total is the amount paid over the whole term.
	Total float64
	// Overpay is Total minus the principal.
	Overpay float64
}

func checkParams(principal, annualRate float64, months int) error {
	if principal <= 0 || math.IsInf(principal, 0) || math.IsNaN(principal) {
		return &ParamError{Name: "principal", Value: principal}
	}
	if annualRate < 0 || math.IsInf(annualRate, 0) || math.IsNaN(annualRate) {
		return &ParamError{Name: "rate", Value: annualRate}
	}
	if months <= 0 {
		return &ParamError{Name: "months", Value: float64(months)}
	}
	return nil
}

// AnnuitySchedule computes the fixed monthly payment for a loan of the
// given principal at annualRate percent over months. A zero rate
// degenerates to paying the principal in equal shares.
func AnnuitySchedule(principal, annualRate float64, months int) (Annuity, error) {
	if err := checkParams(principal, annualRate, months); err != nil {
		return Annuity{}, err
	}
	n := float64(months)
	r := annualRate / 100 / 12
	var monthly float64
	if r == 0 {
		monthly = principal / n
	} else {
		monthly = principal * r / (1 - math.Pow(1+r, -n))
	}
	total := monthly * n
	return Annuity{
		Monthly: monthly,
		Total:   total,
		Overpay: total - principal,
	}, nil
}

// DifferentiatedSchedule computes a schedule where every month repays a
// fixed share of the principal plus interest on the remaining balance.
func DifferentiatedSchedule(principal, annualRate float64, months int) (Differentiated, error) {
	if err := checkParams(principal, annualRate, months); err != nil {
		return Differentiated{}, err
	}
	r := annualRate / 100 / 12
	base := principal / float64(months)
	payments := make([]float64, months)
	total := 0.0
	remaining := principal
	for m := range payments {
		payments[m] = base + remaining*r
		total += payments[m]
		remaining -= base
	}
	return Differentiated{
		Payments: payments,
		Total:    total,
		Overpay:  total - principal,
	}, nil
}
