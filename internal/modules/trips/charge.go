package trips

import "commute-notice/internal/models"

// freeCommuteMinutes is the fixed allowance deducted from every leg
// before any minutes are charged to the employer.
const freeCommuteMinutes = 30

// Chargeable converts raw travel minutes into employer-chargeable
// minutes. Pure and total: never negative, monotonic in its input.
func Chargeable(rawMinutes int) int {
	if rawMinutes <= freeCommuteMinutes {
		return 0
	}
	return rawMinutes - freeCommuteMinutes
}

// ChargePair applies the deduction to both legs. An identical round trip
// collapses to its canonical (slower) leg, charged once and doubled, so
// minor routing asymmetry between the two directions cannot undercount
// a literal there-and-back commute.
func ChargePair(pair models.TripPair) models.ChargeResult {
	if pair.IdenticalReverse {
		c := Chargeable(pair.Canonical().RawMinutes)
		return models.ChargeResult{
			ChargeableIn:    c,
			ChargeableOut:   c,
			TotalChargeable: 2 * c,
		}
	}
	in := Chargeable(pair.LegIn.RawMinutes)
	out := Chargeable(pair.LegOut.RawMinutes)
	return models.ChargeResult{
		ChargeableIn:    in,
		ChargeableOut:   out,
		TotalChargeable: in + out,
	}
}
