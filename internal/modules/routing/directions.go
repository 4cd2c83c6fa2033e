package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"commute-notice/internal/config"
	"commute-notice/internal/models"
)

// RouteStep is one step of a driving route as the provider reports it.
type RouteStep struct {
	DistanceMeters  int
	DurationSeconds int
}

// RouteLeg is the provider's view of a single origin-to-destination drive.
type RouteLeg struct {
	DistanceMeters  int
	DurationSeconds int
	Steps           []RouteStep
}

// ProviderInterface abstracts the external routing provider so the
// estimator can be tested without network access.
type ProviderInterface interface {
	Route(ctx context.Context, origin, destination string) (RouteLeg, error)
}

// UnconfiguredProvider stands in when no API key is configured: every
// call fails immediately with ErrCredentialsUnavailable so only the
// routing tab is lost, not the whole application.
type UnconfiguredProvider struct{}

func (UnconfiguredProvider) Route(ctx context.Context, origin, destination string) (RouteLeg, error) {
	return RouteLeg{}, fmt.Errorf("routing: no API key: %w", models.ErrCredentialsUnavailable)
}

// DirectionsClient calls the Google Maps Directions API for a driving
// route, preferring toll-free roads when configured.
type DirectionsClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	avoidTolls bool
}

func NewDirectionsClient(cfg config.RoutingConfig) (*DirectionsClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("routing: no API key: %w", models.ErrCredentialsUnavailable)
	}
	return &DirectionsClient{
		httpClient: &http.Client{},
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		avoidTolls: cfg.AvoidTolls,
	}, nil
}

// directionsResponse is the minimal slice of the Directions API response
// this service cares about.
type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
			Steps []struct {
				Distance struct {
					Value int `json:"value"`
				} `json:"distance"`
				Duration struct {
					Value int `json:"value"`
				} `json:"duration"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func (c *DirectionsClient) Route(ctx context.Context, origin, destination string) (RouteLeg, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", "driving")
	if c.avoidTolls {
		q.Set("avoid", "tolls")
	}
	q.Set("key", c.apiKey)
	reqURL := c.baseURL + "/maps/api/directions/json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return RouteLeg{}, fmt.Errorf("%w: build request: %v", models.ErrProvider, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RouteLeg{}, fmt.Errorf("%w: %v", models.ErrProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RouteLeg{}, fmt.Errorf("%w: read body: %v", models.ErrProvider, err)
	}
	if resp.StatusCode >= 400 {
		return RouteLeg{}, fmt.Errorf("%w: HTTP %d", models.ErrProvider, resp.StatusCode)
	}

	var directions directionsResponse
	if err := json.Unmarshal(body, &directions); err != nil {
		return RouteLeg{}, fmt.Errorf("%w: unmarshal: %v", models.ErrProvider, err)
	}

	switch directions.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return RouteLeg{}, fmt.Errorf("%w: %s -> %s", models.ErrRouteNotFound, origin, destination)
	default:
		return RouteLeg{}, fmt.Errorf("%w: status %s: %s", models.ErrProvider, directions.Status, directions.ErrorMessage)
	}

	if len(directions.Routes) == 0 || len(directions.Routes[0].Legs) == 0 {
		return RouteLeg{}, fmt.Errorf("%w: %s -> %s", models.ErrRouteNotFound, origin, destination)
	}

	apiLeg := directions.Routes[0].Legs[0]
	leg := RouteLeg{
		DistanceMeters:  apiLeg.Distance.Value,
		DurationSeconds: apiLeg.Duration.Value,
	}
	for _, st := range apiLeg.Steps {
		leg.Steps = append(leg.Steps, RouteStep{
			DistanceMeters:  st.Distance.Value,
			DurationSeconds: st.Duration.Value,
		})
	}
	return leg, nil
}
