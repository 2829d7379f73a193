package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Filter fragment helpers. Each translates a semantic intent into a
// pre-formatted where-condition for Query.Where or QueryOptions.Where. They
// are pure functions and perform no I/O.

// FilterLinked matches records whose link field contains any of the given
// IDs, e.g. FilterLinked("platforms", 48, 49) -> "platforms = (48,49)".
func FilterLinked(field string, ids ...int64) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return field + " = (" + strings.Join(parts, ",") + ")"
}

// FilterPlatforms matches games released on any of the given platforms.
func FilterPlatforms(ids ...int64) string {
	return FilterLinked("platforms", ids...)
}

// FilterGenres matches games tagged with any of the given genres.
func FilterGenres(ids ...int64) string {
	return FilterLinked("genres", ids...)
}

// FilterMin matches records whose numeric field is at least min.
func FilterMin(field string, min float64) string {
	return field + " >= " + strconv.FormatFloat(min, 'f', -1, 64)
}

// FilterMax matches records whose numeric field is at most max.
func FilterMax(field string, max float64) string {
	return field + " <= " + strconv.FormatFloat(max, 'f', -1, 64)
}

// FilterBetween matches records whose numeric field lies in [min, max].
// Use FilterMin or FilterMax for an open-ended range.
func FilterBetween(field string, min, max float64) string {
	return FilterMin(field, min) + " & " + FilterMax(field, max)
}

// FilterReleasedAfter matches games first released after t. Release dates
// travel as epoch seconds on the wire.
func FilterReleasedAfter(t time.Time) string {
	return "first_release_date > " + strconv.FormatInt(t.Unix(), 10)
}

// FilterReleasedBefore matches games first released before t.
func FilterReleasedBefore(t time.Time) string {
	return "first_release_date < " + strconv.FormatInt(t.Unix(), 10)
}

// Popular restricts a query to ranked games, most-rated first.
func Popular(q *Query) *Query {
	return q.Where("total_rating_count != null").Sort("total_rating_count", SortDesc)
}

// RecentlyReleased restricts a query to games released within the given
// window before now, newest first.
func RecentlyReleased(q *Query, window time.Duration) *Query {
	now := time.Now()
	return q.
		Where(FilterReleasedAfter(now.Add(-window))).
		Where(FilterReleasedBefore(now)).
		Sort("first_release_date", SortDesc)
}

// Upcoming restricts a query to games releasing within the given window
// after now, soonest first.
func Upcoming(q *Query, window time.Duration) *Query {
	now := time.Now()
	return q.
		Where(FilterReleasedAfter(now)).
		Where(FilterReleasedBefore(now.Add(window))).
		Sort("first_release_date", SortAsc)
}

// Games retrieves games matching the given options.
func (c *Client) Games(ctx context.Context, opts QueryOptions) ([]Game, error) {
	body, err := c.Request(ctx, EndpointGames, c.buildQuery(EndpointGames, opts))
	if err != nil {
		return nil, err
	}

	var games []Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("failed to parse games response: %w", err)
	}

	c.logger.Debug().Int("count", len(games)).Msg("Retrieved games")
	return games, nil
}

// GameByID retrieves a single game by its identifier. A nil game and nil
// error means no record matched; errors are reserved for failed requests.
func (c *Client) GameByID(ctx context.Context, id int64, opts QueryOptions) (*Game, error) {
	opts.Where = joinConditions(opts.Where, fmt.Sprintf("id = %d", id))
	opts.Limit = 1

	games, err := c.Games(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

// SearchGames retrieves games matching a full-text search term. The term is
// passed through verbatim; the caller is responsible for escaping.
func (c *Client) SearchGames(ctx context.Context, term string, opts QueryOptions) ([]Game, error) {
	opts.Search = term
	return c.Games(ctx, opts)
}

// PopularGames retrieves ranked games sorted by rating count, descending.
func (c *Client) PopularGames(ctx context.Context, limit int) ([]Game, error) {
	return c.Games(ctx, QueryOptions{
		Where: "total_rating_count != null",
		Sort:  "total_rating_count desc",
		Limit: limit,
	})
}

// RecentlyReleasedGames retrieves games released within the given window
// before now, newest first.
func (c *Client) RecentlyReleasedGames(ctx context.Context, window time.Duration, limit int) ([]Game, error) {
	now := time.Now()
	return c.Games(ctx, QueryOptions{
		Where: joinConditions(FilterReleasedAfter(now.Add(-window)), FilterReleasedBefore(now)),
		Sort:  "first_release_date desc",
		Limit: limit,
	})
}

// UpcomingGames retrieves games releasing within the given window after now,
// soonest first.
func (c *Client) UpcomingGames(ctx context.Context, window time.Duration, limit int) ([]Game, error) {
	now := time.Now()
	return c.Games(ctx, QueryOptions{
		Where: joinConditions(FilterReleasedAfter(now), FilterReleasedBefore(now.Add(window))),
		Sort:  "first_release_date asc",
		Limit: limit,
	})
}
