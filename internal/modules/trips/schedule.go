package trips

import (
	"fmt"
	"time"

	"commute-notice/internal/models"
)

// shiftRegime pairs a regime name with its baseline end-of-shift time,
// expressed as minutes from midnight. Every regime ends one hour earlier
// on Fridays.
type shiftRegime struct {
	name     string
	baseline int
}

var shiftRegimes = []shiftRegime{
	{"Summer", 15 * 60},
	{"Usual-Intensive", 16 * 60},
	{"Normal", 17 * 60},
}

// Departures suggests a departure time per regime: the (possibly Friday-
// shifted) baseline minus the commute minutes. When the commute exceeds
// the baseline's time of day the entry is clamped to 00:00 and marked
// infeasible instead of wrapping into the previous day.
func Departures(totalMinutes int, today time.Time) models.DepartureTable {
	friday := today.Weekday() == time.Friday

	table := make(models.DepartureTable, 0, len(shiftRegimes))
	for _, r := range shiftRegimes {
		baseline := r.baseline
		if friday {
			baseline -= 60
		}
		departure := baseline - totalMinutes
		feasible := departure >= 0
		if !feasible {
			departure = 0
		}
		table = append(table, models.DepartureEntry{
			Regime:    r.name,
			Baseline:  clock(baseline),
			Departure: clock(departure),
			Feasible:  feasible,
		})
	}
	return table
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
