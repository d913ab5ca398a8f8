package logging

import "strings"

// IsInsufficientCredit reports whether a vendor error indicates the account
// has run out of credit. Anthropic phrases this as "credit balance is too
// low"; matching on the stable fragment keeps us robust to wording drift.
func IsInsufficientCredit(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "credit balance")
}
