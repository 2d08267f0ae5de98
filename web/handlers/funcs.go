package handlers

import (
	"fmt"
	"html/template"
)

// FuncMap carries the helpers templates need beyond the builtins.
var FuncMap = template.FuncMap{
	"price": formatDecimal("%.2f"),
	"score": formatDecimal("%.1f"),
}

// formatDecimal renders float fields, dereferencing the optional ones.
func formatDecimal(format string) func(v any) string {
	return func(v any) string {
		switch n := v.(type) {
		case float64:
			return fmt.Sprintf(format, n)
		case *float64:
			if n != nil {
				return fmt.Sprintf(format, *n)
			}
		}
		return ""
	}
}
