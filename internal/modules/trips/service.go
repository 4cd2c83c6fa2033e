package trips

import (
	"context"
	"fmt"
	"time"

	"commute-notice/internal/models"
	"commute-notice/internal/modules/places"
	"commute-notice/internal/modules/routing"
)

// ServiceInterface assembles a full assessment for either calculation
// path. Every call produces a fresh, request-scoped Assessment; nothing
// is kept between calls.
type ServiceInterface interface {
	AssessFromTable(ctx context.Context, req models.TableTripRequest) (*models.Assessment, error)
	AssessFromRoute(ctx context.Context, req models.RouteTripRequest) (*models.Assessment, error)
}

type Service struct {
	places    places.ServiceInterface
	estimator routing.EstimatorInterface
	now       func() time.Time
}

func NewService(placeSvc places.ServiceInterface, estimator routing.EstimatorInterface) *Service {
	return &Service{
		places:    placeSvc,
		estimator: estimator,
		now:       time.Now,
	}
}

// AssessFromTable resolves both selections against the municipality
// table. The reported total is the raw sum of both legs, matching how
// the table path has always been presented; the chargeable breakdown is
// carried alongside.
func (s *Service) AssessFromTable(ctx context.Context, req models.TableTripRequest) (*models.Assessment, error) {
	recIn, err := s.places.Lookup(req.PlaceIn)
	if err != nil {
		return nil, fmt.Errorf("service.AssessFromTable: %w", err)
	}
	recOut, err := s.places.Lookup(req.PlaceOut)
	if err != nil {
		return nil, fmt.Errorf("service.AssessFromTable: %w", err)
	}

	// Selecting the same municipality for both legs is the normal case
	// here, not a round trip to collapse: the table already prices a
	// single direction.
	pair := models.TripPair{
		LegIn:  models.TripLeg{DistanceKm: recIn.DistanceKm, RawMinutes: recIn.TravelMinutes},
		LegOut: models.TripLeg{DistanceKm: recOut.DistanceKm, RawMinutes: recOut.TravelMinutes},
	}

	totalRaw := pair.LegIn.RawMinutes + pair.LegOut.RawMinutes
	return &models.Assessment{
		Pair:            pair,
		Charge:          ChargePair(pair),
		Flags:           Evaluate(pair),
		TotalRawMinutes: totalRaw,
		TotalMinutes:    totalRaw,
		Departures:      Departures(totalRaw, s.now()),
	}, nil
}

// AssessFromRoute estimates both legs through the routing provider. The
// reported total is the chargeable sum (after the per-leg deduction),
// doubled from the canonical leg when the round trip collapses.
func (s *Service) AssessFromRoute(ctx context.Context, req models.RouteTripRequest) (*models.Assessment, error) {
	pair, err := s.estimator.EstimatePair(ctx, req)
	if err != nil {
		return nil, err
	}

	charge := ChargePair(pair)
	totalRaw := pair.LegIn.RawMinutes + pair.LegOut.RawMinutes
	if pair.IdenticalReverse {
		totalRaw = 2 * pair.Canonical().RawMinutes
	}

	return &models.Assessment{
		Pair:            pair,
		Charge:          charge,
		Flags:           Evaluate(pair),
		TotalRawMinutes: totalRaw,
		TotalMinutes:    charge.TotalChargeable,
		Departures:      Departures(charge.TotalChargeable, s.now()),
	}, nil
}
