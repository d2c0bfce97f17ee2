package handlers

import (
	"net/http"
	"strings"

	"blogapi/internal/auth"
	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves registration and login. It is the only place tokens are
// issued; everything else just verifies them.
type AuthHandler struct {
	Users repositories.UserRepository
	Codec *auth.Codec
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register handles POST /api/auth/register.
func (h AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		Respond(c, http.StatusBadRequest, "name, email and password are required", nil)
		return
	}

	exists, err := h.Users.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists {
		RespondDomainError(c, domain.ConflictError{Resource: "user", Msg: "email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	user, err := h.Users.Create(c.Request.Context(), req.Name, req.Email, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusCreated, "user created successfully", user)
}

// Login handles POST /api/auth/login.
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, hash, err := h.Users.FindByEmail(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			Respond(c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		Respond(c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}

	token, err := h.Codec.Encode(user.ID, user.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Respond(c, http.StatusOK, "login successful", loginResponse{Token: token, User: user})
}
