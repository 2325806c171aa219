package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    serverURL,
		projectID:  "testproj",
		dataset:    "production",
		token:      "secret",
		log:        zerolog.Nop(),
	}
}

func TestListByCategory(t *testing.T) {
	var gotQuery, gotCategory, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotCategory = r.URL.Query().Get("$category")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": [
			{"_id": "p1", "title": "First", "slug": {"current": "first"},
			 "thumbnail": {"asset": {"_ref": "image-abc123-1200x630-png"}},
			 "isPinned": true, "publishedAt": "2025-03-01T09:00:00Z"},
			{"_id": "p2", "title": "Second", "slug": {"current": "second"},
			 "isPinned": false, "publishedAt": "2025-02-01T09:00:00Z"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	posts, err := client.ListByCategory(context.Background(), CategoryArticle)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, `category == $category`)
	assert.Equal(t, `"article"`, gotCategory)
	assert.Equal(t, "Bearer secret", gotAuth)

	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "first", posts[0].Slug.Current)
	assert.True(t, posts[0].IsPinned)
	assert.Equal(t, "https://cdn.sanity.io/images/testproj/production/abc123-1200x630.png", posts[0].ThumbnailURL)
	assert.Empty(t, posts[1].ThumbnailURL)
}

func TestGetBySlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"my-post"`, r.URL.Query().Get("$slug"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": {
			"_id": "p1", "title": "My Post", "slug": {"current": "my-post"},
			"category": "strategy", "isPinned": false,
			"publishedAt": "2025-03-01T09:00:00Z",
			"body": [
				{"_type": "block", "style": "h2", "children": [{"text": "Intro"}]},
				{"_type": "image", "asset": {"_ref": "image-def456-800x600-jpg"}}
			]
		}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	detail, err := client.GetBySlug(context.Background(), "my-post")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, CategoryStrategy, detail.Category)
	require.Len(t, detail.Body, 2)
	assert.Equal(t, NodeHeading2, detail.Body[0].Kind)
	assert.Equal(t, NodeImage, detail.Body[1].Kind)
}

func TestGetBySlugMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	detail, err := client.GetBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestQueryNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "query parse error"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListByCategory(context.Background(), CategoryArticle)
	assert.Error(t, err)
}

func TestImageURL(t *testing.T) {
	client := newTestClient("http://unused")

	tests := []struct {
		name string
		img  *Image
		want string
	}{
		{"nil image", nil, ""},
		{"empty ref", &Image{}, ""},
		{"malformed ref", refImage("not-an-image-ref-at-all"), ""},
		{"valid ref", refImage("image-abc123-1200x630-png"),
			"https://cdn.sanity.io/images/testproj/production/abc123-1200x630.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.ImageURL(tt.img))
		})
	}
}

func refImage(ref string) *Image {
	img := &Image{}
	img.Asset.Ref = ref
	return img
}
