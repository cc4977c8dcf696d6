package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	models "github.com/dubaitostars/starclient/internal"
)

func (c *Client) ListAccommodations(ctx context.Context, filter models.AccommodationFilter) ([]models.Accommodation, error) {
	query := url.Values{}
	if filter.DestinationID != "" {
		query.Set("destination_id", filter.DestinationID)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.MinPrice > 0 {
		query.Set("min_price", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}
	if filter.MinRating > 0 {
		query.Set("min_rating", strconv.FormatFloat(filter.MinRating, 'f', -1, 64))
	}

	var ans []models.Accommodation
	if err := c.get(ctx, "/accommodations", query, &ans); err != nil {
		return nil, fmt.Errorf("fetching accommodations: %w", err)
	}
	return ans, nil
}

func (c *Client) GetAccommodation(ctx context.Context, id string) (models.Accommodation, error) {
	var ans models.Accommodation
	if err := c.get(ctx, "/accommodations/"+id, nil, &ans); err != nil {
		return ans, fmt.Errorf("fetching accommodation: %w", err)
	}
	return ans, nil
}

func (c *Client) GetAccommodationAvailability(ctx context.Context, id string) (models.Availability, error) {
	var ans models.Availability
	if err := c.get(ctx, "/accommodations/"+id+"/availability", nil, &ans); err != nil {
		return ans, fmt.Errorf("fetching availability: %w", err)
	}
	return ans, nil
}

func (c *Client) GetAccommodationReviews(ctx context.Context, id string) ([]models.Review, error) {
	var ans []models.Review
	if err := c.get(ctx, "/accommodations/"+id+"/reviews", nil, &ans); err != nil {
		return nil, fmt.Errorf("fetching reviews: %w", err)
	}
	return ans, nil
}
