package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/roadready/sdk-go/routes"
)

// CentersClient reads the road-test center catalog.
type CentersClient struct {
	client *Client
}

func (c *CentersClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("sdk: centers client not initialized")
	}
	return nil
}

// List returns all known test centers.
func (c *CentersClient) List(ctx context.Context) ([]TestCenter, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var centers []TestCenter
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.Centers, nil, &centers); err != nil {
		return nil, err
	}
	return centers, nil
}
