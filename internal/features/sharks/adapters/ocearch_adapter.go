package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"shark-tracker/internal/core/logger"
	"shark-tracker/internal/features/sharks/domain"

	"go.uber.org/zap"
)

const (
	sharksPath = "sharks"
	pingsPath  = "sharks/pings"
)

// OcearchAdapter implements ports.DataSource over the OCEARCH REST API.
type OcearchAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the API root, e.g. https://www.ocearch.org/api/v1/.
	baseURL string
	log     *zap.Logger
}

// NewOcearchAdapter creates a new OcearchAdapter.
func NewOcearchAdapter(client *http.Client, baseURL string) *OcearchAdapter {
	return &OcearchAdapter{
		client:  client,
		baseURL: baseURL,
		log:     logger.Named("sharks.ocearch"),
	}
}

// FetchSharks retrieves GET {base}/sharks.
func (a *OcearchAdapter) FetchSharks(ctx context.Context) ([]domain.Shark, error) {
	var resp domain.SharkResponse
	if err := a.getJSON(ctx, sharksPath, nil, &resp); err != nil {
		return nil, domain.NewFetchError(domain.ResourceSharks, err)
	}

	if err := domain.ValidateSharks(resp.Sharks); err != nil {
		a.log.Warn("Rejected sharks payload", zap.Error(err))
		return nil, domain.NewFetchError(domain.ResourceSharks, err)
	}

	return nonNil(resp.Sharks), nil
}

// FetchPings retrieves GET {base}/sharks/pings.
func (a *OcearchAdapter) FetchPings(ctx context.Context) ([]domain.Ping, error) {
	return a.fetchPings(ctx, nil)
}

// FetchPingsForShark retrieves GET {base}/sharks/pings?id={sharkID}. The
// response is filtered again locally so the result is always an exact-match
// subset even when the upstream ignores the query parameter.
func (a *OcearchAdapter) FetchPingsForShark(ctx context.Context, sharkID string) ([]domain.Ping, error) {
	pings, err := a.fetchPings(ctx, url.Values{"id": []string{sharkID}})
	if err != nil {
		return nil, err
	}
	return domain.FilterBySharkID(pings, sharkID), nil
}

// HealthCheck verifies that the sharks resource is reachable.
func (a *OcearchAdapter) HealthCheck(ctx context.Context) error {
	endpoint, err := a.endpoint(sharksPath, nil)
	if err != nil {
		return fmt.Errorf("health check failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

func (a *OcearchAdapter) fetchPings(ctx context.Context, query url.Values) ([]domain.Ping, error) {
	var resp domain.PingResponse
	if err := a.getJSON(ctx, pingsPath, query, &resp); err != nil {
		return nil, domain.NewFetchError(domain.ResourcePings, err)
	}

	if err := domain.ValidatePings(resp.Pings); err != nil {
		a.log.Warn("Rejected pings payload", zap.Error(err))
		return nil, domain.NewFetchError(domain.ResourcePings, err)
	}

	return nonNil(resp.Pings), nil
}

func (a *OcearchAdapter) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint, err := a.endpoint(path, query)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.log.Warn("OCEARCH request failed", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("ocearch API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		a.log.Warn("Failed to decode OCEARCH response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (a *OcearchAdapter) endpoint(path string, query url.Values) (string, error) {
	joined, err := url.JoinPath(a.baseURL, path)
	if err != nil {
		return "", err
	}
	if len(query) == 0 {
		return joined, nil
	}
	return joined + "?" + query.Encode(), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
