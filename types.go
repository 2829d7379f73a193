package igdb

import "time"

// Game is the metadata record for one game. Linked entities appear as nested
// objects when their expansion paths are selected (the default policy selects
// cover, genre, platform and company expansions) and are absent otherwise.
type Game struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Slug              string            `json:"slug"`
	Summary           string            `json:"summary"`
	Storyline         string            `json:"storyline"`
	URL               string            `json:"url"`
	Rating            float64           `json:"rating"`
	RatingCount       int               `json:"rating_count"`
	TotalRating       float64           `json:"total_rating"`
	TotalRatingCount  int               `json:"total_rating_count"`
	FirstReleaseDate  int64             `json:"first_release_date"`
	Cover             *Cover            `json:"cover,omitempty"`
	Genres            []Genre           `json:"genres,omitempty"`
	Platforms         []Platform        `json:"platforms,omitempty"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies,omitempty"`
	Screenshots       []Screenshot      `json:"screenshots,omitempty"`
	ReleaseDates      []ReleaseDate     `json:"release_dates,omitempty"`
	Websites          []Website         `json:"websites,omitempty"`
	SimilarGames      []int64           `json:"similar_games,omitempty"`
}

// ReleaseYear returns the year of the first release, or 0 when unknown.
func (g *Game) ReleaseYear() int {
	if g.FirstReleaseDate == 0 {
		return 0
	}
	return time.Unix(g.FirstReleaseDate, 0).UTC().Year()
}

// Released reports whether the game's first release date has passed.
func (g *Game) Released() bool {
	return g.FirstReleaseDate > 0 && g.FirstReleaseDate <= time.Now().Unix()
}

// Cover is a game's cover art record.
type Cover struct {
	ID      int64  `json:"id"`
	ImageID string `json:"image_id"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Game    int64  `json:"game"`
}

// URL builds the CDN URL for this cover at the given size.
func (c *Cover) URL(size ImageSize) string {
	return ImageURL(c.ImageID, size)
}

// Screenshot is an in-game screenshot record.
type Screenshot struct {
	ID      int64  `json:"id"`
	ImageID string `json:"image_id"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Game    int64  `json:"game"`
}

// URL builds the CDN URL for this screenshot at the given size.
func (s *Screenshot) URL(size ImageSize) string {
	return ImageURL(s.ImageID, size)
}

// Genre classifies games by play style.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// Platform is a hardware or software platform games release on.
type Platform struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Slug         string `json:"slug"`
	Generation   int    `json:"generation"`
}

// Company is a game developer or publisher.
type Company struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Country     int    `json:"country"`
}

// InvolvedCompany links a company to a game with its role.
type InvolvedCompany struct {
	ID         int64    `json:"id"`
	Company    *Company `json:"company,omitempty"`
	Developer  bool     `json:"developer"`
	Publisher  bool     `json:"publisher"`
	Porting    bool     `json:"porting"`
	Supporting bool     `json:"supporting"`
}

// ReleaseDate is one dated release of a game on one platform and region.
type ReleaseDate struct {
	ID       int64  `json:"id"`
	Date     int64  `json:"date"`
	Human    string `json:"human"`
	Platform int64  `json:"platform"`
	Region   int    `json:"region"`
}

// Website is an official or community site linked to a game.
type Website struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Category int    `json:"category"`
	Trusted  bool   `json:"trusted"`
}
