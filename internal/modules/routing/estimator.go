package routing

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"commute-notice/internal/config"
	"commute-notice/internal/models"
)

// minAverageSpeedKmh is the speed floor: congestion is never allowed to
// make a trip look shorter than free-flow driving at this speed.
const minAverageSpeedKmh = 90

// Duration policies. PolicyPerStepFloor is the default; PolicySimpleCap
// ignores provider durations entirely and is kept for parity with the
// earlier flat-speed calculation.
const (
	PolicyPerStepFloor = "per-step-floor"
	PolicySimpleCap    = "simple-cap"
)

// EstimatorInterface is what the trips module consumes.
type EstimatorInterface interface {
	Estimate(ctx context.Context, origin, destination string) (models.TripLeg, error)
	EstimatePair(ctx context.Context, req models.RouteTripRequest) (models.TripPair, error)
}

// Estimator turns provider routes into TripLegs under the configured
// duration policy, bounded by a per-call timeout.
type Estimator struct {
	provider ProviderInterface
	policy   string
	timeout  time.Duration
}

func NewEstimator(provider ProviderInterface, cfg config.RoutingConfig) *Estimator {
	policy := cfg.DurationPolicy
	if policy != PolicySimpleCap {
		policy = PolicyPerStepFloor
	}
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Estimator{provider: provider, policy: policy, timeout: timeout}
}

func (e *Estimator) Estimate(ctx context.Context, origin, destination string) (models.TripLeg, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	leg, err := e.provider.Route(ctx, origin, destination)
	if err != nil {
		return models.TripLeg{}, err
	}

	var minutes int
	switch e.policy {
	case PolicySimpleCap:
		minutes = minutesSimpleCap(leg)
	default:
		minutes = minutesPerStepFloor(leg)
	}

	return models.TripLeg{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  float64(leg.DistanceMeters) / 1000,
		RawMinutes:  minutes,
	}, nil
}

// EstimatePair fetches both legs concurrently. The legs are independent,
// so a failure of one never hides the other: both errors come back in a
// single PairError and no partial pair is returned.
func (e *Estimator) EstimatePair(ctx context.Context, req models.RouteTripRequest) (models.TripPair, error) {
	var wg sync.WaitGroup
	var legIn, legOut models.TripLeg
	var errIn, errOut error

	wg.Add(2)
	go func() {
		defer wg.Done()
		legIn, errIn = e.Estimate(ctx, req.OriginIn, req.DestinationIn)
	}()
	go func() {
		defer wg.Done()
		legOut, errOut = e.Estimate(ctx, req.OriginOut, req.DestinationOut)
	}()
	wg.Wait()

	if errIn != nil || errOut != nil {
		return models.TripPair{}, &PairError{In: errIn, Out: errOut}
	}

	return models.TripPair{
		LegIn:            legIn,
		LegOut:           legOut,
		IdenticalReverse: mirrors(legIn, legOut),
	}, nil
}

// minutesPerStepFloor sums, per step, the larger of the provider duration
// and the theoretical duration at the speed floor, then rounds up to
// whole minutes. Routes without a step breakdown fall back to applying
// the floor over the whole leg.
func minutesPerStepFloor(leg RouteLeg) int {
	if len(leg.Steps) == 0 {
		secs := math.Max(float64(leg.DurationSeconds), floorSeconds(leg.DistanceMeters))
		return int(math.Ceil(secs / 60))
	}
	var total float64
	for _, st := range leg.Steps {
		total += math.Max(float64(st.DurationSeconds), floorSeconds(st.DistanceMeters))
	}
	return int(math.Ceil(total / 60))
}

// minutesSimpleCap derives minutes from distance alone at the speed
// floor, discarding whatever the provider reported.
func minutesSimpleCap(leg RouteLeg) int {
	km := float64(leg.DistanceMeters) / 1000
	return int(math.Ceil(km / minAverageSpeedKmh * 60))
}

func floorSeconds(distanceMeters int) float64 {
	return float64(distanceMeters) / 1000 / minAverageSpeedKmh * 3600
}

// mirrors reports whether the out-leg is the in-leg driven backwards,
// comparing addresses case- and whitespace-insensitively.
func mirrors(in, out models.TripLeg) bool {
	return foldAddress(in.Origin) == foldAddress(out.Destination) &&
		foldAddress(in.Destination) == foldAddress(out.Origin)
}

func foldAddress(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
