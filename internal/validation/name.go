package validation

import (
	"fmt"
	"strings"
	"time"
)

// ValidateRequired rejects empty or whitespace-only values.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateLength rejects values longer than max characters after trimming.
func ValidateLength(field, value string, max int) error {
	if len([]rune(strings.TrimSpace(value))) > max {
		return fmt.Errorf("%s is too long (max %d characters)", field, max)
	}
	return nil
}

// ValidateDate accepts empty values and YYYY-MM-DD dates.
func ValidateDate(field, value string) error {
	if value == "" {
		return nil
	}
	_, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return nil
}
