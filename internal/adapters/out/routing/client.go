// Package routing provides the route distance client used for delivery time
// estimates. A routing service is asked for the travel distance between the
// restaurant and the drop-off point; when the service is unreachable or
// misbehaves, the straight-line distance is used so order creation never
// fails on a routing outage.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
)

const defaultTimeout = 3 * time.Second

// Client implements ports.RoutePlanner against an HTTP routing service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a routing client. An empty baseURL disables the remote
// call entirely and every request resolves to the straight-line distance.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

type routeResponse struct {
	DistanceMeters float64 `json:"distance_meters"`
}

// RouteDistanceMeters returns the travel distance between two points.
func (c *Client) RouteDistanceMeters(ctx context.Context, from, to kernel.GeoPoint) (float64, error) {
	if c.baseURL == "" {
		return from.DistanceMeters(to)
	}

	distance, err := c.queryService(ctx, from, to)
	if err != nil {
		c.logger.Warn("routing service unavailable, using straight-line distance",
			"error", err)
		return from.DistanceMeters(to)
	}

	return distance, nil
}

func (c *Client) queryService(ctx context.Context, from, to kernel.GeoPoint) (float64, error) {
	query := url.Values{}
	query.Set("from_lat", fmt.Sprintf("%f", from.Latitude()))
	query.Set("from_lng", fmt.Sprintf("%f", from.Longitude()))
	query.Set("to_lat", fmt.Sprintf("%f", to.Latitude()))
	query.Set("to_lng", fmt.Sprintf("%f", to.Longitude()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/route?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var route routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return 0, err
	}

	if route.DistanceMeters < 0 {
		return 0, fmt.Errorf("routing service returned negative distance %f", route.DistanceMeters)
	}

	return route.DistanceMeters, nil
}
