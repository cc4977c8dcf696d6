package client

import (
	"context"
	"fmt"
	"net/http"

	models "github.com/dubaitostars/starclient/internal"
)

func (c *Client) GetRecommendations(ctx context.Context, req models.RecommendationRequest) (models.RecommendationResponse, error) {
	var ans models.RecommendationResponse
	if err := c.send(ctx, http.MethodPost, "/ai/recommendations", nil, req, &ans); err != nil {
		return ans, fmt.Errorf("fetching recommendations: %w", err)
	}
	return ans, nil
}

func (c *Client) GetPackingList(ctx context.Context, req models.PackingListRequest) (models.PackingListResponse, error) {
	var ans models.PackingListResponse
	if err := c.send(ctx, http.MethodPost, "/ai/packing-list", nil, req, &ans); err != nil {
		return ans, fmt.Errorf("fetching packing list: %w", err)
	}
	return ans, nil
}

func (c *Client) Ask(ctx context.Context, question string) (models.AskResponse, error) {
	var ans models.AskResponse
	req := models.AskRequest{Question: question}
	if err := c.send(ctx, http.MethodPost, "/ai/ask", nil, req, &ans); err != nil {
		return ans, fmt.Errorf("asking question: %w", err)
	}
	return ans, nil
}

func (c *Client) PlanTrip(ctx context.Context, req models.TripPlanRequest) (models.TripPlanResponse, error) {
	var ans models.TripPlanResponse
	if err := c.send(ctx, http.MethodPost, "/ai/trip-planner", nil, req, &ans); err != nil {
		return ans, fmt.Errorf("planning trip: %w", err)
	}
	return ans, nil
}
