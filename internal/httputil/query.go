package httputil

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ParseDecimalQuery parses a required decimal query parameter.
func ParseDecimalQuery(c *gin.Context, name string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return decimal.Zero, fmt.Errorf("missing %s parameter", name)
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s parameter: must be a decimal number", name)
	}
	return value, nil
}

// QueryOrDefault returns the trimmed query parameter, or fallback when it is absent or blank.
func QueryOrDefault(c *gin.Context, name, fallback string) string {
	if value := strings.TrimSpace(c.Query(name)); value != "" {
		return value
	}
	return fallback
}
