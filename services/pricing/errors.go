package pricing

import "fmt"

// PricingError is a recoverable engine failure carrying a stable code the
// API layer can surface to callers.
type PricingError struct {
	Code    string
	Message string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrInvalidBasePrice       = &PricingError{Code: "invalidBasePrice", Message: "base price must be positive"}
	ErrInvalidComparisonInput = &PricingError{Code: "invalidComparisonInput", Message: "our price and at least one competitor price are required"}
	ErrInvalidFlashDealInput  = &PricingError{Code: "invalidFlashDealInput", Message: "base price and inventory figures are required"}
)
