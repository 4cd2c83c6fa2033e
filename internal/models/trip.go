package models

// TripLeg is one direction of a commute: either a reference-table lookup
// (origin/destination empty, figures from the table) or a routing-provider
// estimate for two free-text addresses.
type TripLeg struct {
	Origin      string  `json:"origin,omitempty"`
	Destination string  `json:"destination,omitempty"`
	DistanceKm  float64 `json:"distance_km"`
	RawMinutes  int     `json:"minutes_raw"`
}

// TripPair is the start-of-day leg plus the end-of-day leg.
// IdenticalReverse holds when one leg mirrors the other's origin and
// destination, compared case- and whitespace-insensitively.
type TripPair struct {
	LegIn            TripLeg `json:"leg_in"`
	LegOut           TripLeg `json:"leg_out"`
	IdenticalReverse bool    `json:"identical_reverse"`
}

// Canonical returns the leg that stands for a collapsed round trip: the
// one with the larger raw minutes, the in-leg winning ties.
func (p TripPair) Canonical() TripLeg {
	if p.LegIn.RawMinutes >= p.LegOut.RawMinutes {
		return p.LegIn
	}
	return p.LegOut
}

// ChargeResult is the employer-chargeable view of a TripPair after the
// fixed free-commute deduction. For an identical round trip the total is
// twice the canonical leg's chargeable minutes.
type ChargeResult struct {
	ChargeableIn    int `json:"chargeable_in"`
	ChargeableOut   int `json:"chargeable_out"`
	TotalChargeable int `json:"total_chargeable"`
}

// AdvisoryFlags are the three threshold advisories. They are evaluated
// independently and may all fire at once.
type AdvisoryFlags struct {
	Overnight      bool `json:"overnight"`
	HalfPerDiem    bool `json:"half_per_diem"`
	SpecialWorkday bool `json:"special_workday"`
}

// DepartureEntry is the suggested departure for one shift regime.
// Feasible is false when the commute minutes exceed the baseline's
// time of day; Departure is then clamped to 00:00.
type DepartureEntry struct {
	Regime    string `json:"regime"`
	Baseline  string `json:"baseline_time"`
	Departure string `json:"today_time"`
	Feasible  bool   `json:"feasible"`
}

type DepartureTable []DepartureEntry

// Assessment is the request-scoped result of one calculation: everything
// the UI renders and the notification composer serializes. It never
// outlives the request that produced it.
type Assessment struct {
	Pair            TripPair       `json:"pair"`
	Charge          ChargeResult   `json:"charge"`
	Flags           AdvisoryFlags  `json:"flags"`
	TotalRawMinutes int            `json:"total_raw_minutes"`
	TotalMinutes    int            `json:"total_minutes"`
	Departures      DepartureTable `json:"departures"`
}

// TableTripRequest selects the two municipalities for a reference-table
// calculation.
type TableTripRequest struct {
	PlaceIn  string `json:"place_in" validate:"required"`
	PlaceOut string `json:"place_out" validate:"required"`
}

// RouteTripRequest carries the four free-text addresses for a
// routing-provider calculation. All four are required, as in the form
// this API replaces.
type RouteTripRequest struct {
	OriginIn       string `json:"origin_in" validate:"required"`
	DestinationIn  string `json:"destination_in" validate:"required"`
	OriginOut      string `json:"origin_out" validate:"required"`
	DestinationOut string `json:"destination_out" validate:"required"`
}
