package handlers

import (
	"net/http"

	intconfig "blogapi/internal/config"

	"github.com/gin-gonic/gin"
)

// Health handles GET /api/health.
func Health(c *gin.Context) {
	Respond(c, http.StatusOK, "ok", nil)
}

// DBCheck handles GET /api/db-check, pinging the shared connection.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondDomainError(c, err)
		return
	}
	Respond(c, http.StatusOK, "database reachable", nil)
}
