package models

// PlaceRecord is one normalized row of the municipality reference table.
// Names are unique per table: duplicate rows are collapsed keeping the
// largest total travel minutes observed (longest known time wins).
type PlaceRecord struct {
	Name              string  `json:"name"`
	TravelMinutes     int     `json:"travel_minutes_total"`
	ChargeableMinutes int     `json:"travel_minutes_chargeable"`
	DistanceKm        float64 `json:"distance_km"`
	WorkCenter        string  `json:"work_center,omitempty"`
	Province          string  `json:"province,omitempty"`
}
