package igdb

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGamesJSON = `[
	{
		"id": 1042,
		"name": "The Legend of Zelda: Ocarina of Time",
		"slug": "the-legend-of-zelda-ocarina-of-time",
		"rating": 91.5,
		"total_rating_count": 1200,
		"first_release_date": 911519999,
		"cover": {"id": 21, "image_id": "co1uii"},
		"genres": [{"id": 12, "name": "Role-playing (RPG)"}, {"id": 31, "name": "Adventure"}],
		"platforms": [{"id": 4, "name": "Nintendo 64", "abbreviation": "N64"}]
	}
]`

func TestGames(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		// Default fields are merged in for the games endpoint.
		assert.True(t, strings.HasPrefix(string(body), "fields "))
		assert.Contains(t, string(body), "cover.image_id")
		w.Write([]byte(sampleGamesJSON))
	})

	games, err := client.Games(context.Background(), QueryOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, games, 1)

	game := games[0]
	assert.Equal(t, int64(1042), game.ID)
	assert.Equal(t, "The Legend of Zelda: Ocarina of Time", game.Name)
	assert.Equal(t, 91.5, game.Rating)
	assert.Equal(t, 1998, game.ReleaseYear())
	assert.True(t, game.Released())

	require.NotNil(t, game.Cover)
	assert.Equal(t, "co1uii", game.Cover.ImageID)
	require.Len(t, game.Genres, 2)
	assert.Equal(t, "Adventure", game.Genres[1].Name)
	require.Len(t, game.Platforms, 1)
	assert.Equal(t, "N64", game.Platforms[0].Abbreviation)
}

func TestGameByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), "where id = 1042;")
			assert.Contains(t, string(body), "limit 1;")
			w.Write([]byte(sampleGamesJSON))
		})

		game, err := client.GameByID(context.Background(), 1042, QueryOptions{})
		require.NoError(t, err)
		require.NotNil(t, game)
		assert.Equal(t, int64(1042), game.ID)
	})

	t.Run("not found returns nil, not error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		game, err := client.GameByID(context.Background(), 99999999, QueryOptions{})
		require.NoError(t, err)
		assert.Nil(t, game)
	})

	t.Run("caller conditions are kept", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), "where rating > 50 & id = 7;")
			w.Write([]byte(`[]`))
		})

		_, err := client.GameByID(context.Background(), 7, QueryOptions{Where: "rating > 50"})
		require.NoError(t, err)
	})
}

func TestSearchGames(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `search "zelda";`)
		w.Write([]byte(sampleGamesJSON))
	})

	games, err := client.SearchGames(context.Background(), "zelda", QueryOptions{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestPopularGames(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "sort total_rating_count desc;")
		assert.Contains(t, string(body), "where total_rating_count != null;")
		assert.Contains(t, string(body), "limit 10;")
		w.Write([]byte(sampleGamesJSON))
	})

	games, err := client.PopularGames(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestReleaseWindowRoutes(t *testing.T) {
	t.Run("recently released", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), "first_release_date > ")
			assert.Contains(t, string(body), "first_release_date < ")
			assert.Contains(t, string(body), "sort first_release_date desc;")
			w.Write([]byte(`[]`))
		})

		_, err := client.RecentlyReleasedGames(context.Background(), 30*24*time.Hour, 20)
		require.NoError(t, err)
	})

	t.Run("upcoming", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), "sort first_release_date asc;")
			w.Write([]byte(`[]`))
		})

		_, err := client.UpcomingGames(context.Background(), 90*24*time.Hour, 20)
		require.NoError(t, err)
	})
}

func TestFilterFragments(t *testing.T) {
	assert.Equal(t, "platforms = (48,49)", FilterPlatforms(48, 49))
	assert.Equal(t, "genres = (12)", FilterGenres(12))
	assert.Equal(t, "", FilterLinked("platforms"))

	assert.Equal(t, "rating >= 80", FilterMin("rating", 80))
	assert.Equal(t, "rating <= 95.5", FilterMax("rating", 95.5))
	assert.Equal(t, "rating >= 80 & rating <= 90", FilterBetween("rating", 80, 90))

	at := time.Unix(1700000000, 0)
	assert.Equal(t, "first_release_date > 1700000000", FilterReleasedAfter(at))
	assert.Equal(t, "first_release_date < 1700000000", FilterReleasedBefore(at))
}

func TestQueryHelpers(t *testing.T) {
	t.Run("popular", func(t *testing.T) {
		query := Popular(NewQuery().Fields("id", "name").Limit(10)).Build()
		assert.Equal(t, "fields id,name; sort total_rating_count desc; limit 10; where total_rating_count != null;", query)
	})

	t.Run("recently released window", func(t *testing.T) {
		query := RecentlyReleased(NewQuery(), 24*time.Hour).Build()
		assert.Contains(t, query, "sort first_release_date desc;")
		assert.Contains(t, query, "first_release_date > ")
		assert.Contains(t, query, " & first_release_date < ")
	})

	t.Run("upcoming window", func(t *testing.T) {
		query := Upcoming(NewQuery(), 24*time.Hour).Build()
		assert.Contains(t, query, "sort first_release_date asc;")
	})
}

func TestEntityRoutes(t *testing.T) {
	t.Run("genres", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/genres", r.URL.Path)
			w.Write([]byte(`[{"id": 12, "name": "Role-playing (RPG)", "slug": "role-playing-rpg"}]`))
		})

		genres, err := client.Genres(context.Background(), QueryOptions{})
		require.NoError(t, err)
		require.Len(t, genres, 1)
		assert.Equal(t, "role-playing-rpg", genres[0].Slug)
	})

	t.Run("covers", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/covers", r.URL.Path)
			w.Write([]byte(`[{"id": 21, "image_id": "co1uii", "width": 264, "height": 352, "game": 1042}]`))
		})

		covers, err := client.Covers(context.Background(), QueryOptions{Where: "game = 1042"})
		require.NoError(t, err)
		require.Len(t, covers, 1)
		assert.Equal(t, "https://images.igdb.com/igdb/image/upload/t_cover_big/co1uii.jpg", covers[0].URL(SizeCoverBig))
	})

	t.Run("platforms", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/platforms", r.URL.Path)
			w.Write([]byte(`[{"id": 48, "name": "PlayStation 4", "abbreviation": "PS4", "generation": 8}]`))
		})

		platforms, err := client.Platforms(context.Background(), QueryOptions{})
		require.NoError(t, err)
		require.Len(t, platforms, 1)
		assert.Equal(t, 8, platforms[0].Generation)
	})

	t.Run("companies", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/companies", r.URL.Path)
			w.Write([]byte(`[{"id": 70, "name": "Nintendo", "slug": "nintendo"}]`))
		})

		companies, err := client.Companies(context.Background(), QueryOptions{})
		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, "Nintendo", companies[0].Name)
	})
}
