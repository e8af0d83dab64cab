// Package catalogsvc is the read-only HTTP client for the catalog service
// (servicios, comunas, regiones).
package catalogsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) get(ctx context.Context, path string, notFound error, dst interface{}) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to decoding
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// GetServicio fetches a catalog service entry by id.
func (c *Client) GetServicio(ctx context.Context, servicioID string) (*Servicio, error) {
	var servicio Servicio
	path := fmt.Sprintf("/internal/servicios/%s", url.PathEscape(servicioID))
	if err := c.get(ctx, path, ErrServicioNotFound, &servicio); err != nil {
		return nil, err
	}
	return &servicio, nil
}

// GetComuna fetches a comuna entry by id.
func (c *Client) GetComuna(ctx context.Context, comunaID string) (*Comuna, error) {
	var comuna Comuna
	path := fmt.Sprintf("/internal/comunas/%s", url.PathEscape(comunaID))
	if err := c.get(ctx, path, ErrComunaNotFound, &comuna); err != nil {
		return nil, err
	}
	return &comuna, nil
}

// GetRegion fetches a region entry by id.
func (c *Client) GetRegion(ctx context.Context, regionID string) (*Region, error) {
	var region Region
	path := fmt.Sprintf("/internal/regiones/%s", url.PathEscape(regionID))
	if err := c.get(ctx, path, ErrRegionNotFound, &region); err != nil {
		return nil, err
	}
	return &region, nil
}
