package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/secondary"
)

// ShopsPath is the shop collection endpoint.
const ShopsPath = "/api/shops"

// ShopClient implements secondary.ShopAPI over REST.
type ShopClient struct {
	client *Client
}

// NewShopClient creates a shop transport on top of client.
func NewShopClient(client *Client) *ShopClient {
	return &ShopClient{client: client}
}

// ListAll fetches every shop.
func (c *ShopClient) ListAll(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := c.client.do(ctx, http.MethodGet, ShopsPath, nil, &shops); err != nil {
		return nil, err
	}
	if shops == nil {
		shops = []models.Shop{}
	}
	return shops, nil
}

// Create posts a new shop.
func (c *ShopClient) Create(ctx context.Context, payload models.ShopPayload) (*models.Shop, error) {
	var shop models.Shop
	if err := c.client.do(ctx, http.MethodPost, ShopsPath, payload, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// Update patches an existing shop.
func (c *ShopClient) Update(ctx context.Context, id string, payload models.ShopPayload) (*models.Shop, error) {
	var shop models.Shop
	if err := c.client.do(ctx, http.MethodPatch, ShopsPath+"/"+url.PathEscape(id), payload, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// Delete removes a shop.
func (c *ShopClient) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, http.MethodDelete, ShopsPath+"/"+url.PathEscape(id), nil, nil)
}

var _ secondary.ShopAPI = (*ShopClient)(nil)
