package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds process configuration loaded once at startup.
type Env struct {
	AppAddr       string
	GinMode       string
	DatabaseDSN   string
	JWTSecret     string
	UploadDir     string
	PublicBaseURL string
	CORSOrigins   []string
}

// LoadEnv reads configuration from the environment, honoring a local .env file
// when present. A missing JWT_SECRET aborts startup: signing tokens with a
// well-known fallback secret would make every token forgeable.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/blogapi?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	baseURL := strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost" + appAddr
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		DatabaseDSN:   dsn,
		JWTSecret:     secret,
		UploadDir:     uploadDir,
		PublicBaseURL: strings.TrimRight(baseURL, "/"),
		CORSOrigins:   origins,
	}
}
