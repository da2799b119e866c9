package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"swiftdrop/config"
	"swiftdrop/models"
)

// Estimator supplies the road distance between two addresses. Pricing treats
// distance as an injected dependency, never a constant it owns.
type Estimator interface {
	EstimateDistance(ctx context.Context, pickup, dropoff models.LocationDetails) (float64, error)
}

// FixedEstimator is a STUB for environments without a distance provider: it
// returns the same distance for every pair of addresses. Do not use it in
// production.
type FixedEstimator struct {
	KM float64
}

func (e *FixedEstimator) EstimateDistance(ctx context.Context, pickup, dropoff models.LocationDetails) (float64, error) {
	return e.KM, nil
}

// matrixResponse is the slice of the Distance Matrix payload we care about.
type matrixResponse struct {
	Rows []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				ValueMeters int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
	Status string `json:"status"`
}

// GoogleEstimator resolves distances through the Google Distance Matrix API.
type GoogleEstimator struct {
	APIKey string
	Client *http.Client
}

func NewGoogleEstimator(apiKey string) *GoogleEstimator {
	return &GoogleEstimator{
		APIKey: apiKey,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func formatAddress(loc models.LocationDetails) string {
	parts := []string{loc.StreetAddress, loc.Suburb, loc.State, loc.Postcode, "Australia"}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

func (e *GoogleEstimator) EstimateDistance(ctx context.Context, pickup, dropoff models.LocationDetails) (float64, error) {
	if pickup.IsEmpty() || dropoff.IsEmpty() {
		return 0, fmt.Errorf("both pickup and dropoff addresses are required")
	}

	q := url.Values{}
	q.Set("origins", formatAddress(pickup))
	q.Set("destinations", formatAddress(dropoff))
	q.Set("key", e.APIKey)

	reqURL := "https://maps.googleapis.com/maps/api/distancematrix/json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var matrix matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return 0, fmt.Errorf("failed to parse distance matrix response: %w", err)
	}
	if matrix.Status != "OK" || len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix returned status %q", matrix.Status)
	}
	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("no route between addresses: %s", element.Status)
	}
	return float64(element.Distance.ValueMeters) / 1000.0, nil
}

// FromConfig picks the Google estimator when an API key is configured and
// falls back to the fixed stub otherwise.
func FromConfig() Estimator {
	if key := config.AppConfig.GoogleAPIKey; key != "" {
		return NewGoogleEstimator(key)
	}
	return &FixedEstimator{KM: config.AppConfig.DefaultDistanceKM}
}
