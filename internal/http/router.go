package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"blogapi/internal/auth"
	intconfig "blogapi/internal/config"
	h "blogapi/internal/http/handlers"
	"blogapi/internal/http/middleware"
	"blogapi/internal/repositories"
	"blogapi/internal/storage"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the route table once at startup. All dependencies are
// injected here; handlers hold no package-level state.
func NewRouter(env intconfig.Env, db *sql.DB, codec *auth.Codec, store storage.ObjectStore) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		h.Respond(c, stdhttp.StatusNotFound, "route not found", gin.H{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authHandler := h.AuthHandler{Users: repositories.UserRepository{DB: db}, Codec: codec}
	userHandler := h.UserHandler{Users: repositories.UserRepository{DB: db}}
	postHandler := h.PostHandler{Posts: repositories.PostRepository{DB: db}}
	fileHandler := h.FileHandler{Store: store, BaseURL: env.PublicBaseURL}

	requireAuth := middleware.RequireAuth(codec)

	r.GET("/ws", h.Echo)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/ws/health", h.EchoHealth)

		authGroup := api.Group("/auth")
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		users := api.Group("/users", requireAuth)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)

		posts := api.Group("/posts", requireAuth)
		posts.GET("", postHandler.List)
		posts.GET("/mine", postHandler.Mine)
		posts.GET("/:id", postHandler.Get)
		posts.POST("", postHandler.Create)
		posts.PUT("/:id", postHandler.Update)
		posts.DELETE("/:id", postHandler.Delete)

		files := api.Group("/files", requireAuth)
		files.POST("/upload", fileHandler.Upload)
	}

	return r
}
