package igdb

import "maps"

// Endpoint names understood by the client. Each maps to a path segment under
// the API base URL and to a row in the field policy.
const (
	EndpointGames     = "games"
	EndpointCovers    = "covers"
	EndpointGenres    = "genres"
	EndpointPlatforms = "platforms"
	EndpointCompanies = "companies"
)

// FieldPolicy maps an endpoint to the canonical fields requested for it when
// the caller does not opt out. Dotted paths expand the linked entity, so the
// default game selection returns nested covers, genres and platforms rather
// than bare identifiers.
type FieldPolicy map[string][]string

// defaultFields is the built-in policy. It is copied, never handed out, so
// callers cannot mutate shared state.
var defaultFields = FieldPolicy{
	EndpointGames: {
		"id", "name", "slug", "summary", "url",
		"rating", "rating_count", "total_rating", "total_rating_count",
		"first_release_date",
		"cover.image_id",
		"genres.name",
		"platforms.name", "platforms.abbreviation",
		"involved_companies.company.name",
	},
	EndpointCovers:    {"id", "image_id", "width", "height", "game"},
	EndpointGenres:    {"id", "name", "slug", "url"},
	EndpointPlatforms: {"id", "name", "abbreviation", "slug", "generation"},
	EndpointCompanies: {"id", "name", "slug", "description", "country"},
}

// defaultFieldPolicy returns a fresh copy of the built-in field tables.
func defaultFieldPolicy() FieldPolicy {
	policy := make(FieldPolicy, len(defaultFields))
	maps.Copy(policy, defaultFields)
	return policy
}

// mergeFields combines caller-supplied fields with the endpoint defaults,
// de-duplicating while preserving first-seen order. Caller fields come
// first so their expansions win over a default bare path. This is the only
// de-duplicating path; the raw Query.Fields accumulator intentionally keeps
// duplicates.
func mergeFields(custom, defaults []string, includeDefaults bool) []string {
	var merged []string
	seen := make(map[string]struct{}, len(custom)+len(defaults))
	add := func(fields []string) {
		for _, f := range fields {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			merged = append(merged, f)
		}
	}
	add(custom)
	if includeDefaults {
		add(defaults)
	}
	return merged
}
