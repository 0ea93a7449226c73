package schema

import (
	"fmt"

	"github.com/tombi-toml/tombi/document"
)

// canonicalDateTime renders a date/time document.Value into the canonical
// string form `enum`/`const` comparisons use, per "Date/time: enum against
// the canonical string form".
func canonicalDateTime(v document.Value) string {
	switch d := v.(type) {
	case document.OffsetDateTime:
		date := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
		if d.Nsec != 0 {
			date += fmt.Sprintf(".%09d", d.Nsec)
		}

		if d.OffsetMinutes == 0 {
			return date + "Z"
		}

		sign := "+"
		minutes := d.OffsetMinutes

		if minutes < 0 {
			sign = "-"
			minutes = -minutes
		}

		return fmt.Sprintf("%s%s%02d:%02d", date, sign, minutes/60, minutes%60)
	case document.LocalDateTime:
		date := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
		if d.Nsec != 0 {
			date += fmt.Sprintf(".%09d", d.Nsec)
		}

		return date
	case document.LocalDate:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case document.LocalTime:
		t := fmt.Sprintf("%02d:%02d:%02d", d.Hour, d.Minute, d.Second)
		if d.Nsec != 0 {
			t += fmt.Sprintf(".%09d", d.Nsec)
		}

		return t
	default:
		return ""
	}
}
