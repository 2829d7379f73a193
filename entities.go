package igdb

import (
	"context"
	"encoding/json"
	"fmt"
)

// Covers retrieves cover art records matching the given options.
func (c *Client) Covers(ctx context.Context, opts QueryOptions) ([]Cover, error) {
	body, err := c.Request(ctx, EndpointCovers, c.buildQuery(EndpointCovers, opts))
	if err != nil {
		return nil, err
	}

	var covers []Cover
	if err := json.Unmarshal(body, &covers); err != nil {
		return nil, fmt.Errorf("failed to parse covers response: %w", err)
	}
	return covers, nil
}

// Genres retrieves genre records matching the given options.
func (c *Client) Genres(ctx context.Context, opts QueryOptions) ([]Genre, error) {
	body, err := c.Request(ctx, EndpointGenres, c.buildQuery(EndpointGenres, opts))
	if err != nil {
		return nil, err
	}

	var genres []Genre
	if err := json.Unmarshal(body, &genres); err != nil {
		return nil, fmt.Errorf("failed to parse genres response: %w", err)
	}
	return genres, nil
}

// Platforms retrieves platform records matching the given options.
func (c *Client) Platforms(ctx context.Context, opts QueryOptions) ([]Platform, error) {
	body, err := c.Request(ctx, EndpointPlatforms, c.buildQuery(EndpointPlatforms, opts))
	if err != nil {
		return nil, err
	}

	var platforms []Platform
	if err := json.Unmarshal(body, &platforms); err != nil {
		return nil, fmt.Errorf("failed to parse platforms response: %w", err)
	}
	return platforms, nil
}

// Companies retrieves company records matching the given options.
func (c *Client) Companies(ctx context.Context, opts QueryOptions) ([]Company, error) {
	body, err := c.Request(ctx, EndpointCompanies, c.buildQuery(EndpointCompanies, opts))
	if err != nil {
		return nil, err
	}

	var companies []Company
	if err := json.Unmarshal(body, &companies); err != nil {
		return nil, fmt.Errorf("failed to parse companies response: %w", err)
	}
	return companies, nil
}
