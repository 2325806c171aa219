package cms

import (
	"encoding/json"
	"time"
)

// Category partitions posts into the two public sections of the site.
type Category string

const (
	CategoryArticle  Category = "article"
	CategoryStrategy Category = "strategy"
)

// ValidCategory reports whether c names a known post category.
func ValidCategory(c Category) bool {
	return c == CategoryArticle || c == CategoryStrategy
}

// Slug is Sanity's slug object. It marshals to a plain string.
type Slug struct {
	Current string `json:"current"`
}

// MarshalJSON flattens the slug to its current value.
func (s Slug) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Current)
}

// Image is a Sanity image reference.
type Image struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
}

// Post is a CMS-authored document in its listing shape.
type Post struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Slug         Slug      `json:"slug"`
	Excerpt      string    `json:"excerpt,omitempty"`
	Thumbnail    *Image    `json:"thumbnail,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	IsPinned     bool      `json:"isPinned"`
	PublishedAt  time.Time `json:"publishedAt"`
}

// PostRef is the minimal shape used for previous/next navigation links.
type PostRef struct {
	Title string `json:"title"`
	Slug  Slug   `json:"slug"`
}

// PostDetail is a post with its full body and neighbor links resolved.
// PreviousPost and NextPost are nil at the ends of a category; that is a
// valid terminal state, not an error.
type PostDetail struct {
	Post
	Category     Category `json:"category"`
	Body         []Node   `json:"body"`
	PreviousPost *PostRef `json:"previousPost,omitempty"`
	NextPost     *PostRef `json:"nextPost,omitempty"`
}
