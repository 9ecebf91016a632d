// internal/savethedate/dates.go
package savethedate

import (
	"fmt"
	"time"
)

// DateStyle selects how a card prints the wedding date.
type DateStyle string

const (
	DateLong     DateStyle = "long"     // January 2, 2006
	DateNumeric  DateStyle = "numeric"  // 02.01.2006
	DateFilipino DateStyle = "filipino" // Enero 2, 2006
)

var filipinoMonths = [12]string{
	"Enero", "Pebrero", "Marso", "Abril", "Mayo", "Hunyo",
	"Hulyo", "Agosto", "Setyembre", "Oktubre", "Nobyembre", "Disyembre",
}

// FormatDate renders a YYYY-MM-DD string. Empty or unparseable input gives "".
func FormatDate(date string, style DateStyle) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	switch style {
	case DateNumeric:
		return t.Format("02.01.2006")
	case DateFilipino:
		return fmt.Sprintf("%s %d, %d", filipinoMonths[t.Month()-1], t.Day(), t.Year())
	default:
		return t.Format("January 2, 2006")
	}
}
