package core

import (
	"fmt"
	"strings"
)

// ConfigError reports a vendor whose API key is not configured.
type ConfigError struct {
	Vendor string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s API key not configured", strings.ToUpper(e.Vendor))
}

// VendorError carries a non-2xx vendor response: the HTTP status and the
// vendor-supplied message, extracted from whatever error shape the vendor
// returned.
type VendorError struct {
	Vendor     string
	StatusCode int
	Message    string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Vendor, e.StatusCode, e.Message)
}
