package l10n

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrymomot/localekit/pkg/plural"
)

// Granularity names accepted by FormatTimedelta.
const (
	GranularityYear   = "year"
	GranularityMonth  = "month"
	GranularityWeek   = "week"
	GranularityDay    = "day"
	GranularityHour   = "hour"
	GranularityMinute = "minute"
	GranularitySecond = "second"
)

// timedeltaUnits is ordered largest first for automatic unit selection.
var timedeltaUnits = []struct {
	name string
	dur  time.Duration
}{
	{GranularityYear, 365 * 24 * time.Hour},
	{GranularityMonth, 30 * 24 * time.Hour},
	{GranularityWeek, 7 * 24 * time.Hour},
	{GranularityDay, 24 * time.Hour},
	{GranularityHour, time.Hour},
	{GranularityMinute, time.Minute},
	{GranularitySecond, time.Second},
}

// unitForms selects the singular or plural unit name by count.
var unitForms = map[string]plural.Forms{
	GranularityYear:   {1: "year", plural.CatchAllKey: "years"},
	GranularityMonth:  {1: "month", plural.CatchAllKey: "months"},
	GranularityWeek:   {1: "week", plural.CatchAllKey: "weeks"},
	GranularityDay:    {1: "day", plural.CatchAllKey: "days"},
	GranularityHour:   {1: "hour", plural.CatchAllKey: "hours"},
	GranularityMinute: {1: "minute", plural.CatchAllKey: "minutes"},
	GranularitySecond: {1: "second", plural.CatchAllKey: "seconds"},
}

// timedeltaThreshold is the fraction of a unit at which the duration is
// promoted to that unit, so six days already reads as "1 week".
const timedeltaThreshold = 0.85

// FormatTimedelta renders a duration as a coarse human-readable quantity,
// e.g. "1 week" or "3 hours". The sign is discarded.
//
// With an empty granularity the largest unit whose value reaches the
// promotion threshold is chosen. A named granularity forces that unit,
// rounding to the nearest multiple with a minimum of one, so six days with
// granularity "month" still renders as "1 month".
func (f *Formatter) FormatTimedelta(d time.Duration, granularity string) string {
	if d < 0 {
		d = -d
	}
	if d == 0 {
		return "0 " + plural.Pluralize(unitForms[GranularitySecond], 0)
	}

	if granularity != "" {
		for _, unit := range timedeltaUnits {
			if unit.name == granularity {
				return formatUnit(d, unit.name, unit.dur)
			}
		}
		return ""
	}

	for _, unit := range timedeltaUnits {
		if float64(d)/float64(unit.dur) >= timedeltaThreshold {
			return formatUnit(d, unit.name, unit.dur)
		}
	}
	return formatUnit(d, GranularitySecond, time.Second)
}

func formatUnit(d time.Duration, name string, unit time.Duration) string {
	n := int(math.Round(float64(d) / float64(unit)))
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%d %s", n, plural.Pluralize(unitForms[name], n))
}
