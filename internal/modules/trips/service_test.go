package trips

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"commute-notice/internal/models"
)

type fakePlaces struct {
	records map[string]models.PlaceRecord
}

func (f *fakePlaces) ListNames() ([]string, error) { return nil, nil }
func (f *fakePlaces) Reload() error                { return nil }

func (f *fakePlaces) Lookup(name string) (models.PlaceRecord, error) {
	rec, ok := f.records[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return models.PlaceRecord{}, fmt.Errorf("lookup %q: %w", name, models.ErrNotFound)
	}
	return rec, nil
}

type fakeEstimator struct {
	pair models.TripPair
	err  error
}

func (f *fakeEstimator) Estimate(ctx context.Context, origin, destination string) (models.TripLeg, error) {
	return models.TripLeg{}, nil
}

func (f *fakeEstimator) EstimatePair(ctx context.Context, req models.RouteTripRequest) (models.TripPair, error) {
	if f.err != nil {
		return models.TripPair{}, f.err
	}
	return f.pair, nil
}

func fixedMonday() time.Time {
	return time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
}

func TestAssessFromTable(t *testing.T) {
	placeSvc := &fakePlaces{records: map[string]models.PlaceRecord{
		"alcalá": {Name: "Alcalá", TravelMinutes: 95, DistanceKm: 45},
	}}
	svc := NewService(placeSvc, &fakeEstimator{})
	svc.now = fixedMonday

	got, err := svc.AssessFromTable(context.Background(), models.TableTripRequest{
		PlaceIn:  "Alcalá",
		PlaceOut: "Alcalá",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalRawMinutes != 190 || got.TotalMinutes != 190 {
		t.Errorf("totals = %d/%d, want 190/190", got.TotalRawMinutes, got.TotalMinutes)
	}
	if !got.Flags.Overnight || !got.Flags.HalfPerDiem || !got.Flags.SpecialWorkday {
		t.Errorf("flags = %+v, want all true", got.Flags)
	}
	if got.Pair.IdenticalReverse {
		t.Error("table path must never collapse into a round trip")
	}
	if len(got.Departures) != 3 {
		t.Fatalf("expected 3 departure regimes, got %d", len(got.Departures))
	}
}

func TestAssessFromTableUnknownPlace(t *testing.T) {
	svc := NewService(&fakePlaces{records: map[string]models.PlaceRecord{}}, &fakeEstimator{})

	_, err := svc.AssessFromTable(context.Background(), models.TableTripRequest{
		PlaceIn:  "Nowhere",
		PlaceOut: "Nowhere",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown municipality")
	}
}

func TestAssessFromRouteDistinctLegs(t *testing.T) {
	est := &fakeEstimator{pair: models.TripPair{
		LegIn:  models.TripLeg{Origin: "A", Destination: "B", RawMinutes: 50, DistanceKm: 10},
		LegOut: models.TripLeg{Origin: "C", Destination: "D", RawMinutes: 70, DistanceKm: 20},
	}}
	svc := NewService(&fakePlaces{}, est)
	svc.now = fixedMonday

	got, err := svc.AssessFromRoute(context.Background(), models.RouteTripRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Charge.ChargeableIn != 20 || got.Charge.ChargeableOut != 40 {
		t.Errorf("chargeable = %d/%d, want 20/40", got.Charge.ChargeableIn, got.Charge.ChargeableOut)
	}
	if got.TotalMinutes != 60 {
		t.Errorf("total = %d, want 60", got.TotalMinutes)
	}
	if got.Flags.Overnight || got.Flags.HalfPerDiem {
		t.Errorf("flags = %+v, want only special_workday", got.Flags)
	}
	if !got.Flags.SpecialWorkday {
		t.Error("special_workday = false, want true (70 > 60)")
	}
}

func TestAssessFromRouteIdenticalRoundTrip(t *testing.T) {
	est := &fakeEstimator{pair: models.TripPair{
		LegIn:            models.TripLeg{Origin: "Madrid", Destination: "Toledo", RawMinutes: 100, DistanceKm: 72},
		LegOut:           models.TripLeg{Origin: "Toledo", Destination: "Madrid", RawMinutes: 90, DistanceKm: 71},
		IdenticalReverse: true,
	}}
	svc := NewService(&fakePlaces{}, est)
	svc.now = fixedMonday

	got, err := svc.AssessFromRoute(context.Background(), models.RouteTripRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalMinutes != 140 {
		t.Errorf("total = %d, want 140 (2 * chargeable(100))", got.TotalMinutes)
	}
	if got.TotalRawMinutes != 200 {
		t.Errorf("raw total = %d, want 200 (2 * canonical 100)", got.TotalRawMinutes)
	}
}

func TestAssessFromRoutePropagatesEstimateFailure(t *testing.T) {
	est := &fakeEstimator{err: fmt.Errorf("leg failed: %w", models.ErrRouteNotFound)}
	svc := NewService(&fakePlaces{}, est)

	_, err := svc.AssessFromRoute(context.Background(), models.RouteTripRequest{})
	if err == nil {
		t.Fatal("expected the pair failure to propagate")
	}
}
