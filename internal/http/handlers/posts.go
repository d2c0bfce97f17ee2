package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"blogapi/internal/http/middleware"
	"blogapi/internal/query"
	"blogapi/internal/repositories"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	Posts repositories.PostRepository
}

// List handles GET /api/posts with pagination, search, sort and date range.
func (h PostHandler) List(c *gin.Context) {
	params, err := query.Parse(c.Request.URL.Query(), repositories.PostDescriptor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	page, err := h.Posts.List(c.Request.Context(), params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	message := fmt.Sprintf("posts found: %d (page %d of %d)",
		page.Meta.TotalItems, page.Meta.CurrentPage, page.Meta.TotalPages)
	Respond(c, http.StatusOK, message, gin.H{
		"items":      page.Items,
		"pagination": page.Meta,
	})
}

// Get handles GET /api/posts/:id.
func (h PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Respond(c, http.StatusBadRequest, "invalid post ID format", nil)
		return
	}

	post, err := h.Posts.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, "post found", post)
}

type createPostRequest struct {
	Title  string  `json:"title"`
	Text   string  `json:"text"`
	Banner *string `json:"banner"`
}

// Create handles POST /api/posts. The owner is always the authenticated
// caller; a user_id in the body is ignored.
func (h PostHandler) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		Respond(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req createPostRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Title == "" || req.Text == "" {
		Respond(c, http.StatusBadRequest, "title and text are required", nil)
		return
	}

	post, err := h.Posts.Create(c.Request.Context(), claims.UserID, req.Title, req.Text, req.Banner)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusCreated, "post created", post)
}

// Update handles PUT /api/posts/:id.
func (h PostHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Respond(c, http.StatusBadRequest, "invalid post ID format", nil)
		return
	}

	var req createPostRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Title == "" || req.Text == "" {
		Respond(c, http.StatusBadRequest, "title and text are required", nil)
		return
	}

	post, err := h.Posts.Update(c.Request.Context(), id, req.Title, req.Text, req.Banner)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, "post updated", post)
}

// Delete handles DELETE /api/posts/:id and echoes the removed post.
func (h PostHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Respond(c, http.StatusBadRequest, "invalid post ID format", nil)
		return
	}

	post, err := h.Posts.Delete(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, "post deleted", post)
}

// Mine handles GET /api/posts/mine, listing the caller's own posts.
func (h PostHandler) Mine(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		Respond(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	posts, err := h.Posts.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, fmt.Sprintf("posts found: %d", len(posts)), posts)
}
