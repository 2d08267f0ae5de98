package content

import (
	"fmt"
	"time"
)

// The site renders dates in long-form Brazilian Portuguese, the publication's
// only locale.
var monthNamesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate renders an API timestamp as e.g. "31 de agosto de 2026".
// Unparseable input is returned unchanged so templates still show something.
func FormatDate(iso string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return fmt.Sprintf("%02d de %s de %d", t.Day(), monthNamesPtBR[t.Month()-1], t.Year())
		}
	}
	return iso
}
