package document

import "strconv"

// dateTimeParts is the decoded result of scanning a date-time literal's
// text, mirroring the components [lexer]'s scanDateTime recognizes but
// keeping their numeric values rather than just the token's span.
type dateTimeParts struct {
	year, month, day           int
	hour, minute, second, nsec int
	hasDate, hasTime           bool
	hasSeconds                 bool
	hasOffset, offsetZ         bool
	offsetSign                 int
	offsetHour, offsetMinute   int
}

// hasExplicitSeconds reports whether the literal spelled out a seconds
// component, as opposed to the v1.1.0-preview-only shortened "HH:MM" form.
func (p dateTimeParts) hasExplicitSeconds() bool {
	return p.hasSeconds
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// parseDateTimeParts decodes raw (the exact text of an OFFSET_DATE_TIME /
// LOCAL_DATE_TIME / LOCAL_DATE / LOCAL_TIME token) into its numeric
// components. It re-derives the same grammar [lexer.Lexer.scanDateTime]
// recognizes, since the lexer itself only records token boundaries, not
// decoded values.
func parseDateTimeParts(raw string) (dateTimeParts, bool) {
	var p dateTimeParts

	s := raw

	if len(s) >= 10 && s[4] == '-' && s[7] == '-' &&
		isAllDigits(s[0:4]) && isAllDigits(s[5:7]) && isAllDigits(s[8:10]) {
		y, _ := strconv.Atoi(s[0:4])
		m, _ := strconv.Atoi(s[5:7])
		d, _ := strconv.Atoi(s[8:10])
		p.year, p.month, p.day = y, m, d
		p.hasDate = true
		s = s[10:]

		if len(s) > 0 && (s[0] == 'T' || s[0] == 't' || s[0] == ' ') {
			s = s[1:]
		}
	}

	if len(s) >= 5 && s[2] == ':' && isAllDigits(s[0:2]) && isAllDigits(s[3:5]) {
		h, _ := strconv.Atoi(s[0:2])
		mi, _ := strconv.Atoi(s[3:5])
		p.hour, p.minute = h, mi
		p.hasTime = true
		s = s[5:]

		if len(s) >= 3 && s[0] == ':' && isAllDigits(s[1:3]) {
			sec, _ := strconv.Atoi(s[1:3])
			p.second = sec
			p.hasSeconds = true
			s = s[3:]

			if len(s) > 0 && (s[0] == '.' || s[0] == ',') {
				j := 1
				for j < len(s) && s[j] >= '0' && s[j] <= '9' {
					j++
				}

				p.nsec = fracToNanos(s[1:j])
				s = s[j:]
			}
		}

		if len(s) > 0 {
			switch s[0] {
			case 'Z', 'z':
				p.hasOffset = true
				p.offsetZ = true
				s = s[1:]
			case '+', '-':
				if len(s) >= 6 && s[3] == ':' && isAllDigits(s[1:3]) && isAllDigits(s[4:6]) {
					sign := 1
					if s[0] == '-' {
						sign = -1
					}

					oh, _ := strconv.Atoi(s[1:3])
					om, _ := strconv.Atoi(s[4:6])
					p.hasOffset = true
					p.offsetSign, p.offsetHour, p.offsetMinute = sign, oh, om
					s = s[6:]
				}
			}
		}
	}

	return p, s == ""
}

// fracToNanos pads or truncates a fractional-seconds digit run to exactly
// 9 digits (nanosecond precision).
func fracToNanos(digits string) int {
	if len(digits) > 9 {
		digits = digits[:9]
	}

	for len(digits) < 9 {
		digits += "0"
	}

	n, _ := strconv.Atoi(digits)

	return n
}
