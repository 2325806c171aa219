package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daheemath/mathtutor-backend/internal/cms"
	"github.com/daheemath/mathtutor-backend/internal/response"
	"github.com/daheemath/mathtutor-backend/internal/service"
)

// PostHandler serves CMS-authored articles and strategy posts.
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func bindCategory(c *gin.Context) (cms.Category, bool) {
	category := cms.Category(c.Param("category"))
	if !cms.ValidCategory(category) {
		response.Fail(c, http.StatusBadRequest, response.ErrUnknownCategory)
		return "", false
	}
	return category, true
}

// ListPosts godoc
// GET /api/v1/posts/:category[?limit=3]
// Lists a category's posts, pinned first then newest first. An optional
// limit trims the listing for front-page teasers.
func (h *PostHandler) ListPosts(c *gin.Context) {
	category, ok := bindCategory(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		limit = parsed
	}

	posts, err := h.postService.Recent(c.Request.Context(), category, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

// ListPostSlugs godoc
// GET /api/v1/posts/:category/slugs
// Returns every slug of a category, for sitemap-style consumers.
func (h *PostHandler) ListPostSlugs(c *gin.Context) {
	category, ok := bindCategory(c)
	if !ok {
		return
	}

	slugs, err := h.postService.AllSlugs(c.Request.Context(), category)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slugs": slugs})
}

// GetPost godoc
// GET /api/v1/posts/:category/:slug
// Returns one post with its body and previous/next links.
func (h *PostHandler) GetPost(c *gin.Context) {
	category, ok := bindCategory(c)
	if !ok {
		return
	}

	detail, err := h.postService.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	// Slugs are unique across categories; a slug reached through the
	// wrong category path is treated as absent.
	if detail.Category != category {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": detail})
}
