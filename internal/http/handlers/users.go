package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"blogapi/internal/query"
	"blogapi/internal/repositories"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users repositories.UserRepository
}

// List handles GET /api/users with pagination, search, sort and date range.
func (h UserHandler) List(c *gin.Context) {
	params, err := query.Parse(c.Request.URL.Query(), repositories.UserDescriptor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	page, err := h.Users.List(c.Request.Context(), params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	message := fmt.Sprintf("users found: %d (page %d of %d)",
		page.Meta.TotalItems, page.Meta.CurrentPage, page.Meta.TotalPages)
	Respond(c, http.StatusOK, message, gin.H{
		"items":      page.Items,
		"pagination": page.Meta,
	})
}

// Get handles GET /api/users/:id.
func (h UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Respond(c, http.StatusBadRequest, "invalid user ID format", nil)
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, "user found", user)
}

type updateUserRequest struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// Update handles PUT /api/users/:id.
func (h UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Respond(c, http.StatusBadRequest, "invalid user ID format", nil)
		return
	}

	var req updateUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Name == "" {
		Respond(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	user, err := h.Users.UpdateProfile(c.Request.Context(), id, req.Name, req.Avatar)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, "user updated", user)
}
