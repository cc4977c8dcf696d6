package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	models "github.com/dubaitostars/starclient/internal"
)

func (c *Client) ListPackages(ctx context.Context, classType string) ([]models.Package, error) {
	query := url.Values{}
	if classType != "" {
		query.Set("class_type", classType)
	}

	var ans []models.Package
	if err := c.get(ctx, "/packages", query, &ans); err != nil {
		return nil, fmt.Errorf("fetching packages: %w", err)
	}
	return ans, nil
}

func (c *Client) GetPackage(ctx context.Context, id string) (models.Package, error) {
	var ans models.Package
	if err := c.get(ctx, "/packages/"+id, nil, &ans); err != nil {
		return ans, fmt.Errorf("fetching package: %w", err)
	}
	return ans, nil
}

func (c *Client) ComparePackages(ctx context.Context, packageIDs []string) ([]models.Package, error) {
	query := url.Values{}
	query.Set("package_ids", strings.Join(packageIDs, ","))

	var ans []models.Package
	if err := c.get(ctx, "/packages/compare", query, &ans); err != nil {
		return nil, fmt.Errorf("comparing packages: %w", err)
	}
	return ans, nil
}

// CalculatePrice asks the pricing endpoint for the base trip price of a
// package flown to a destination for the given number of days. The
// accommodation share of the total is client-side arithmetic on top of
// the returned quote.
func (c *Client) CalculatePrice(ctx context.Context, packageID, destinationID string, durationDays int) (models.PriceQuote, error) {
	query := url.Values{}
	query.Set("package_id", packageID)
	query.Set("destination_id", destinationID)
	query.Set("duration", strconv.Itoa(durationDays))

	var ans models.PriceQuote
	if err := c.get(ctx, "/packages/calculate-price", query, &ans); err != nil {
		return ans, fmt.Errorf("calculating price: %w", err)
	}
	return ans, nil
}
