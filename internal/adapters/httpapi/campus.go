package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/secondary"
)

// CampusesPath is the campus collection endpoint.
const CampusesPath = "/api/campuses"

// CampusClient implements secondary.CampusAPI over REST.
type CampusClient struct {
	client *Client
}

// NewCampusClient creates a campus transport on top of client.
func NewCampusClient(client *Client) *CampusClient {
	return &CampusClient{client: client}
}

// ListAll fetches every campus.
func (c *CampusClient) ListAll(ctx context.Context) ([]models.Campus, error) {
	var campuses []models.Campus
	if err := c.client.do(ctx, http.MethodGet, CampusesPath, nil, &campuses); err != nil {
		return nil, err
	}
	if campuses == nil {
		campuses = []models.Campus{}
	}
	return campuses, nil
}

// Create posts a new campus.
func (c *CampusClient) Create(ctx context.Context, payload models.CampusPayload) (*models.Campus, error) {
	var campus models.Campus
	if err := c.client.do(ctx, http.MethodPost, CampusesPath, payload, &campus); err != nil {
		return nil, err
	}
	return &campus, nil
}

// Update patches an existing campus.
func (c *CampusClient) Update(ctx context.Context, id string, payload models.CampusPayload) (*models.Campus, error) {
	var campus models.Campus
	if err := c.client.do(ctx, http.MethodPatch, CampusesPath+"/"+url.PathEscape(id), payload, &campus); err != nil {
		return nil, err
	}
	return &campus, nil
}

// Delete removes a campus.
func (c *CampusClient) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, http.MethodDelete, CampusesPath+"/"+url.PathEscape(id), nil, nil)
}

var _ secondary.CampusAPI = (*CampusClient)(nil)
