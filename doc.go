// Package igdb provides a client for the IGDB game metadata API.
//
// IGDB authenticates through Twitch's OAuth2 client-credentials flow and
// accepts queries written in its own textual query language (Apicalypse)
// posted as the request body. This package implements both halves: a token
// manager that exchanges application credentials for bearer tokens and keeps
// them fresh, and a query builder that composes field selection, filtering,
// sorting and pagination into a single query string.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: request coordination — builds queries, attaches auth headers,
//     decodes JSON responses
//   - TokenManager: OAuth2 client-credentials exchange with in-memory
//     caching, early expiry and single-flight refresh
//   - Query: fluent builder for the Apicalypse query language
//   - Types: domain models for games, covers, genres, platforms, companies
//   - Errors: structured error types for better error handling
//
// # Usage
//
// Create a client with your Twitch application credentials:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := igdb.NewClient("client-id", "client-secret", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	games, err := client.Games(ctx, igdb.QueryOptions{
//		Search: "zelda",
//		Limit:  10,
//	})
//
// Tokens are acquired lazily on the first request and refreshed automatically
// when they approach expiry; concurrent requests share a single refresh.
//
// # Field selection
//
// Each endpoint has a canonical default field set that is merged with any
// caller-supplied fields. A field path suffixed with ".*" (or a dotted
// sub-path such as "cover.image_id") asks the API to expand the linked
// entity into a nested object instead of returning its bare identifier.
// Set QueryOptions.ExcludeDefaults to suppress the merge.
//
// # Error handling
//
// Failed API calls return an *APIError carrying the status code, status text
// and response body. Single-record lookups that match nothing return a nil
// record and a nil error, so "not found" is distinguishable from "failed".
package igdb
