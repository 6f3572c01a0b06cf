package functions

import (
	"math"

	"github.com/cwbudde/leibniz/internal/expr"
)

// domainLog implements log, failing with a DomainError outside (0, +inf)
// (spec.md §7: "log(-1)" is a DomainError example).
func domainLog(x float64) (float64, error) {
	if x <= 0 {
		return 0, &expr.DomainError{Function: "Log", Value: x}
	}
	return math.Log(x), nil
}

// domainExp has no restricted real domain; overflow saturates to +Inf the
// same way math.Exp does, which is acceptable double-precision behavior
// per spec.md §1 ("not bit-exact across platforms").
func domainExp(x float64) (float64, error) {
	return math.Exp(x), nil
}

// domainSqrt implements sqrt, failing outside [0, +inf) (spec.md §7:
// "sqrt(-1)" is a DomainError example).
func domainSqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, &expr.DomainError{Function: "Sqrt", Value: x}
	}
	return math.Sqrt(x), nil
}

// domainAsin implements asin, restricted to [-1, 1].
func domainAsin(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, &expr.DomainError{Function: "Asin", Value: x}
	}
	return math.Asin(x), nil
}

// domainAcos implements acos, restricted to [-1, 1].
func domainAcos(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, &expr.DomainError{Function: "Acos", Value: x}
	}
	return math.Acos(x), nil
}

// domainAtanh implements atanh, restricted to the open interval (-1, 1).
func domainAtanh(x float64) (float64, error) {
	if x <= -1 || x >= 1 {
		return 0, &expr.DomainError{Function: "Atanh", Value: x}
	}
	return math.Atanh(x), nil
}
