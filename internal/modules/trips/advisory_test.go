package trips

import (
	"testing"

	"commute-notice/internal/models"
)

func TestEvaluateAllFlagsIndependent(t *testing.T) {
	// A pair that trips every threshold must raise all three advisories
	// at once: none suppresses another.
	pair := models.TripPair{
		LegIn:  models.TripLeg{RawMinutes: 95, DistanceKm: 45},
		LegOut: models.TripLeg{RawMinutes: 95, DistanceKm: 45},
	}

	flags := Evaluate(pair)
	if !flags.Overnight {
		t.Error("overnight = false, want true (95 > 80)")
	}
	if !flags.HalfPerDiem {
		t.Error("half_per_diem = false, want true (45 > 40)")
	}
	if !flags.SpecialWorkday {
		t.Error("special_workday = false, want true (95 > 60)")
	}
}

func TestEvaluateSingleLegTrips(t *testing.T) {
	pair := models.TripPair{
		LegIn:  models.TripLeg{RawMinutes: 50, DistanceKm: 10},
		LegOut: models.TripLeg{RawMinutes: 70, DistanceKm: 20},
	}

	flags := Evaluate(pair)
	if flags.Overnight {
		t.Error("overnight = true, want false (max 70 <= 80)")
	}
	if flags.HalfPerDiem {
		t.Error("half_per_diem = true, want false (max 20 <= 40)")
	}
	if !flags.SpecialWorkday {
		t.Error("special_workday = false, want true (70 > 60)")
	}
}

func TestEvaluateThresholdsAreStrict(t *testing.T) {
	pair := models.TripPair{
		LegIn:  models.TripLeg{RawMinutes: 80, DistanceKm: 40},
		LegOut: models.TripLeg{RawMinutes: 60, DistanceKm: 40},
	}

	flags := Evaluate(pair)
	if flags.Overnight || flags.HalfPerDiem || flags.SpecialWorkday {
		t.Errorf("flags at exact thresholds = %+v, want all false", flags)
	}
}

func TestEvaluateZeroInputs(t *testing.T) {
	flags := Evaluate(models.TripPair{})
	if flags.Overnight || flags.HalfPerDiem || flags.SpecialWorkday {
		t.Errorf("flags for empty pair = %+v, want all false", flags)
	}
}

func TestEvaluateCollapsedPairUsesCanonicalLeg(t *testing.T) {
	// Only the canonical leg counts for a collapsed round trip: the
	// faster direction's figures must not leak in.
	pair := models.TripPair{
		LegIn:            models.TripLeg{RawMinutes: 85, DistanceKm: 50},
		LegOut:           models.TripLeg{RawMinutes: 55, DistanceKm: 30},
		IdenticalReverse: true,
	}

	flags := Evaluate(pair)
	if !flags.Overnight || !flags.HalfPerDiem || !flags.SpecialWorkday {
		t.Errorf("flags = %+v, want all true from canonical leg", flags)
	}
}
