package client

import (
	"context"
	"fmt"

	models "github.com/dubaitostars/starclient/internal"
)

func (c *Client) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	var ans []models.Destination
	if err := c.get(ctx, "/destinations", nil, &ans); err != nil {
		return nil, fmt.Errorf("fetching destinations: %w", err)
	}
	return ans, nil
}

func (c *Client) GetDestination(ctx context.Context, id string) (models.Destination, error) {
	var ans models.Destination
	if err := c.get(ctx, "/destinations/"+id, nil, &ans); err != nil {
		return ans, fmt.Errorf("fetching destination: %w", err)
	}
	return ans, nil
}

func (c *Client) GetPopularTimes(ctx context.Context, destinationID string) (models.PopularTimes, error) {
	var ans models.PopularTimes
	if err := c.get(ctx, "/destinations/"+destinationID+"/popular-times", nil, &ans); err != nil {
		return ans, fmt.Errorf("fetching popular times: %w", err)
	}
	return ans, nil
}
