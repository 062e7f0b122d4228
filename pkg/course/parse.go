package course

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var dayAliases = map[string]Day{
	"M": Monday, "MO": Monday, "MON": Monday,
	"T": Tuesday, "TU": Tuesday, "TUE": Tuesday, "TUES": Tuesday,
	"W": Wednesday, "WE": Wednesday, "WED": Wednesday,
	"TH": Thursday, "R": Thursday, "THU": Thursday, "THUR": Thursday, "THURS": Thursday,
	"F": Friday, "FR": Friday, "FRI": Friday,
	"S": Saturday, "SA": Saturday, "SAT": Saturday,
	"SU": Sunday, "SUN": Sunday,
}

// ParseDay resolves one day token ("M", "Th", "Tues", ...) to its canonical
// code.
func ParseDay(token string) (Day, error) {
	d, ok := dayAliases[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return "", fmt.Errorf("unknown day code %q", token)
	}
	return d, nil
}

// ParseDays parses a days string like "M/W", "T Th" or "MWF" into canonical
// day codes. An empty string yields no days (an asynchronous meeting).
func ParseDays(s string) ([]Day, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var tokens []string
	switch {
	case strings.Contains(s, "/"):
		tokens = strings.Split(s, "/")
	case strings.ContainsAny(s, " ,"):
		tokens = strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	default:
		// Compact form like "MWF" or "TTh": greedily match two-letter codes
		// first so "Th" is not read as Tuesday + an unknown "h".
		for i := 0; i < len(s); {
			if i+1 < len(s) {
				if _, ok := dayAliases[strings.ToUpper(s[i:i+2])]; ok {
					tokens = append(tokens, s[i:i+2])
					i += 2
					continue
				}
			}
			tokens = append(tokens, s[i:i+1])
			i++
		}
	}

	var days []Day
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		d, err := ParseDay(tok)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// ParseClock converts a time string like "8:30 AM", "1:00PM" or "13:00" to
// minutes since midnight.
func ParseClock(s string) (Minutes, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty time string")
	}

	isPM := strings.Contains(s, "PM")
	isAM := strings.Contains(s, "AM")
	s = strings.TrimSpace(strings.NewReplacer("AM", "", "PM", "").Replace(s))

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected h:mm", s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}

	if isPM && hour != 12 {
		hour += 12
	} else if isAM && hour == 12 {
		hour = 0
	}
	return Minutes(hour*60 + minute), nil
}

var compactCode = regexp.MustCompile(`^([A-Z]+)(\d+)$`)

// NormalizeCode uppercases a course code and inserts the missing "*"
// separator, so "cis2750" becomes "CIS*2750". Codes already containing "*"
// are only uppercased.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || strings.Contains(code, "*") {
		return code
	}
	if m := compactCode.FindStringSubmatch(code); m != nil {
		return m[1] + "*" + m[2]
	}
	return code
}
