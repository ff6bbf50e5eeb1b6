package typeset

import (
	"fmt"
	"time"
)

// spanishMonths holds the long lower-case month names, indexed by time.Month.
var spanishMonths = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// MonthName returns the Spanish long-form name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return unknownStr
	}
	return spanishMonths[m]
}

// sameDay reports whether a and b fall on the same calendar day,
// each read in its own location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDateRange renders the workshop date range.
//
// A single day renders as "20 de enero de 2026". A range renders as
// "19 al 20 de enero de 2026"; month and year always come from start.
func FormatDateRange(start, end time.Time) string {
	if sameDay(start, end) {
		return fmt.Sprintf("%d de %s de %d", start.Day(), MonthName(start.Month()), start.Year())
	}
	return fmt.Sprintf("%d al %d de %s de %d", start.Day(), end.Day(), MonthName(start.Month()), start.Year())
}

// FormatDateText renders the issue date as "15 días del mes de febrero de 2026".
func FormatDateText(date time.Time) string {
	return fmt.Sprintf("%d días del mes de %s de %d", date.Day(), MonthName(date.Month()), date.Year())
}
