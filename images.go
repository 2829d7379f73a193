package igdb

import "fmt"

const imageBaseURL = "https://images.igdb.com/igdb/image/upload"

// ImageSize names a CDN-rendered size variant for image URLs.
type ImageSize string

// Size variants recognized by the image CDN.
const (
	SizeCoverSmall     ImageSize = "cover_small"
	SizeCoverBig       ImageSize = "cover_big"
	SizeScreenshotMed  ImageSize = "screenshot_med"
	SizeScreenshotBig  ImageSize = "screenshot_big"
	SizeScreenshotHuge ImageSize = "screenshot_huge"
	SizeLogoMed        ImageSize = "logo_med"
	SizeThumb          ImageSize = "thumb"
	SizeMicro          ImageSize = "micro"
	Size720p           ImageSize = "720p"
	Size1080p          ImageSize = "1080p"
	SizeOriginal       ImageSize = "original"
)

var imageSizeTokens = map[ImageSize]string{
	SizeCoverSmall:     "t_cover_small",
	SizeCoverBig:       "t_cover_big",
	SizeScreenshotMed:  "t_screenshot_med",
	SizeScreenshotBig:  "t_screenshot_big",
	SizeScreenshotHuge: "t_screenshot_huge",
	SizeLogoMed:        "t_logo_med",
	SizeThumb:          "t_thumb",
	SizeMicro:          "t_micro",
	Size720p:           "t_720p",
	Size1080p:          "t_1080p",
	SizeOriginal:       "t_original",
}

// ImageURL builds the CDN URL for an image identifier at the given size.
// Unknown sizes fall back to the original rendition.
func ImageURL(imageID string, size ImageSize) string {
	token, ok := imageSizeTokens[size]
	if !ok {
		token = imageSizeTokens[SizeOriginal]
	}
	return fmt.Sprintf("%s/%s/%s.jpg", imageBaseURL, token, imageID)
}
