// Package youtube extracts video IDs from the URL shapes YouTube hands out
// and derives thumbnail URLs from them.
package youtube

import "regexp"

var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&\s]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^?\s]+)`),
	regexp.MustCompile(`youtu\.be/([^?\s]+)`),
	regexp.MustCompile(`youtube\.com/v/([^?\s]+)`),
}

// ThumbnailQuality selects one of YouTube's static thumbnail renditions.
type ThumbnailQuality string

const (
	QualityDefault ThumbnailQuality = "default"
	QualityMedium  ThumbnailQuality = "mqdefault"
	QualityHigh    ThumbnailQuality = "hqdefault"
	QualityMaxRes  ThumbnailQuality = "maxresdefault"
)

// ExtractVideoID returns the video ID embedded in url, or "" if the URL
// matches none of the known shapes (watch, embed, short link, /v/).
func ExtractVideoID(url string) string {
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// ThumbnailURL builds the static thumbnail URL for a video ID.
func ThumbnailURL(videoID string, quality ThumbnailQuality) string {
	return "https://img.youtube.com/vi/" + videoID + "/" + string(quality) + ".jpg"
}
