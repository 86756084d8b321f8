package cli

import (
	"regexp"
	"strconv"
	"time"
)

var placeholderPattern = regexp.MustCompile(`@([A-Za-z_]+)@`)

// PlaceholderNames lists every recognized placeholder, in the order
// shown by the no-argument help listing.
var PlaceholderNames = []string{
	"UTC", "NOW", "TODAY", "TOMORROW", "YESTERDAY",
	"YEAR", "MONTH", "DAY", "TIME", "HOUR", "MINUTE", "SECOND",
	"TZ_OFFSET", "TZ",
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

var weekdayNames = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

// SubstitutePlaceholders resolves @NAME@ tokens in input against a table
// derived from now (UTC) and env["now"]/the local timezone. Substitution
// is a single left-to-right pass; an unresolvable name is left
// untouched. It never fails.
func SubstitutePlaceholders(input string, env map[string]any) string {
	table := placeholderTable(resolveNow(env))
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := table[name]; ok {
			return v
		}
		return match
	})
}

func resolveNow(env map[string]any) time.Time {
	if v, ok := env["now"]; ok {
		if s, ok := v.(string); ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Now().UTC()
}

// localZone returns the local timezone, falling back to UTC if lookup
// fails (minimal systems without a zoneinfo database). This is a defined
// behavior, not an error condition.
func localZone() *time.Location {
	loc, err := time.LoadLocation("Local")
	if err != nil {
		return time.UTC
	}
	return loc
}

// placeholderTable derives the substitution table from t (UTC). The
// date-granularity entries (TODAY through DAY and the weekday names)
// use the UTC date; only the time-of-day and zone entries use the local
// form of t.
func placeholderTable(t time.Time) map[string]string {
	local := t.In(localZone())
	_, offsetSeconds := local.Zone()
	offsetSign := "+"
	if offsetSeconds < 0 {
		offsetSign = "-"
		offsetSeconds = -offsetSeconds
	}
	offsetHours := offsetSeconds / 3600
	offsetMinutes := (offsetSeconds % 3600) / 60

	table := map[string]string{
		"UTC":       t.Format(time.RFC3339),
		"NOW":       local.Format(time.RFC3339),
		"TODAY":     t.Format("2006-01-02"),
		"TOMORROW":  t.AddDate(0, 0, 1).Format("2006-01-02"),
		"YESTERDAY": t.AddDate(0, 0, -1).Format("2006-01-02"),
		"YEAR":      t.Format("2006"),
		"MONTH":     t.Format("01"),
		"DAY":       t.Format("02"),
		"TIME":      local.Format("15:04:05"),
		"HOUR":      local.Format("15"),
		"MINUTE":    local.Format("04"),
		"SECOND":    local.Format("05"),
		"TZ_OFFSET": offsetSign + padTwo(offsetHours) + ":" + padTwo(offsetMinutes),
		"TZ":        local.Location().String(),
	}
	for name, wd := range weekdayNames {
		table[name] = nextWeekday(t, wd).Format("2006-01-02")
	}
	return table
}

func nextWeekday(from time.Time, target time.Weekday) time.Time {
	days := int(target - from.Weekday())
	if days < 0 {
		days += 7
	}
	return from.AddDate(0, 0, days)
}

func padTwo(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
