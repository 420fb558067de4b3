package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// isoDate is the canonical output layout
const isoDate = "2006-01-02"

// clock supplies the year for dates spoken without one
var clock = time.Now

var (
	ordinalSuffix = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\b`)
	ofWord        = regexp.MustCompile(`\bof\b`)
	weekday       = regexp.MustCompile(`\b(?:mon|tues?|wed(?:nes)?|thu(?:rs?)?|fri|sat(?:ur)?|sun)(?:day)?\b`)
	abbrevDot     = regexp.MustCompile(`([a-z])\.`)
	septShort     = regexp.MustCompile(`\bsept\b`)
	timeSep       = regexp.MustCompile(`(\d)t(\d)`)

	dayMonYearDash = regexp.MustCompile(`^(\d{1,2})-([a-z]+)-(\d{2,4})$`)
	numericDash    = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{2,4}$`)
	monDayYear     = regexp.MustCompile(`^([a-z]+) (\d{1,2}) (\d{2,4})$`)
	monYear        = regexp.MustCompile(`^([a-z]+) (\d{4})$`)
	monDay         = regexp.MustCompile(`^([a-z]+) (\d{1,2})$`)
	dayMon         = regexp.MustCompile(`^(\d{1,2}) ([a-z]+)$`)
	digitsOnly     = regexp.MustCompile(`^\d+$`)
)

// Date reformats a spoken or typed calendar date as YYYY-MM-DD.
// Numeric forms read month first unless the month would overflow.
// Values that do not parse come back trimmed and otherwise unchanged
func Date(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return s
	}
	if t, ok := parseDate(s); ok {
		return t.Format(isoDate)
	}
	return s
}

func parseDate(s string) (t time.Time, ok bool) {
	s = spokenDate(s)
	if s == "" {
		return time.Time{}, false
	}
	// bare digit runs are years or unix stamps to the parser; only YYYYMMDD is a date here
	if digitsOnly.MatchString(s) && len(s) != 8 {
		return time.Time{}, false
	}

	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	t, err := dateparse.ParseIn(s, time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// spokenDate rewrites dictated forms into ones the parser reads unambiguously:
// day before month name, slashes between numeric parts, no ordinals, weekdays or filler
func spokenDate(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ",", " ")
	s = ordinalSuffix.ReplaceAllString(s, "$1")
	s = ofWord.ReplaceAllString(s, " ")
	s = weekday.ReplaceAllString(s, " ")
	s = abbrevDot.ReplaceAllString(s, "$1 ")
	s = septShort.ReplaceAllString(s, "sep")
	s = timeSep.ReplaceAllString(s, "${1}T${2}")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimPrefix(s, "the ")

	switch {
	case dayMonYearDash.MatchString(s):
		return dayMonYearDash.ReplaceAllString(s, "$1 $2 $3")
	case numericDash.MatchString(s):
		return strings.ReplaceAll(s, "-", "/")
	case monDayYear.MatchString(s):
		return monDayYear.ReplaceAllString(s, "$2 $1 $3")
	case monYear.MatchString(s):
		return monYear.ReplaceAllString(s, "1 $1 $2")
	case monDay.MatchString(s):
		return monDay.ReplaceAllString(s, "$2 $1 ") + clock().Format("2006")
	case dayMon.MatchString(s):
		return s + " " + clock().Format("2006")
	}
	return s
}
