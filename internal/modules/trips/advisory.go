package trips

import "commute-notice/internal/models"

// Advisory thresholds. The overnight rule is minutes-based; older exports
// compared kilometres against the same constant. Moving the basis back is
// a business decision, not a code fix.
const (
	overnightMinutes      = 80
	halfPerDiemKm         = 40.0
	specialWorkdayMinutes = 60
)

// Evaluate derives the three advisories from a trip pair. The flags are
// independent: all three may fire at once and none suppresses another.
// A collapsed round trip is judged on its canonical leg alone.
func Evaluate(pair models.TripPair) models.AdvisoryFlags {
	legs := []models.TripLeg{pair.LegIn, pair.LegOut}
	if pair.IdenticalReverse {
		legs = []models.TripLeg{pair.Canonical()}
	}

	var flags models.AdvisoryFlags
	for _, leg := range legs {
		if leg.RawMinutes > overnightMinutes {
			flags.Overnight = true
		}
		if leg.DistanceKm > halfPerDiemKm {
			flags.HalfPerDiem = true
		}
		if leg.RawMinutes > specialWorkdayMinutes {
			flags.SpecialWorkday = true
		}
	}
	return flags
}
