package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/lpernett/godotenv"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

// Storage backends.
const (
	StorageMemory    = "memory"
	StorageSQLite    = "sqlite"
	StorageRedis     = "redis"
	StorageFirestore = "firestore"
)

// Host AI surfaces that can be switched on through MAWAZO_AI_SURFACES.
const (
	SurfaceLanguageModel   = "language_model"
	SurfaceAILanguageModel = "ai.language_model"
	SurfaceAIPrompt        = "ai.prompt"
	SurfaceAIRewrite       = "ai.rewrite"
	SurfaceAISummarize     = "ai.summarize"
	SurfaceAIWrite         = "ai.write"
	SurfaceAITranslate     = "ai.translate"
	SurfaceAIProofread     = "ai.proofread"

	// SurfaceNone exposes no surface at all; it overrides anything listed with it.
	SurfaceNone = "none"
)

var knownSurfaces = map[string]bool{
	SurfaceLanguageModel:   true,
	SurfaceAILanguageModel: true,
	SurfaceAIPrompt:        true,
	SurfaceAIRewrite:       true,
	SurfaceAISummarize:     true,
	SurfaceAIWrite:         true,
	SurfaceAITranslate:     true,
	SurfaceAIProofread:     true,
}

// Config is read from MAWAZO_* environment variables.
type Config struct {
	Mode Mode `envconfig:"MODE" default:"local"`

	Port string `envconfig:"PORT" default:"8080"`

	GCPProjectID string `envconfig:"GCP_PROJECT"`
	GCPLocation  string `envconfig:"GCP_LOCATION" default:"us-central1"`
	ModelName    string `envconfig:"MODEL_NAME" default:"gemini-2.5-flash-lite"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	UseMockLLM bool `envconfig:"USE_MOCK_LLM"` // true = use mock even on GCP
	// AISurfaces lists the host interfaces the backend exposes. Empty means all.
	AISurfaces []string `envconfig:"AI_SURFACES"`

	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"memory"` // memory, sqlite, redis, firestore
	SQLitePath     string `envconfig:"SQLITE_PATH" default:"data/mawazo.db"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads an optional .env file and then all env vars, and builds the config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("MAWAZO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	_, mockSet := os.LookupEnv("MAWAZO_USE_MOCK_LLM")
	if !mockSet {
		cfg.UseMockLLM = cfg.Mode == ModeLocal
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the config and checks the combinations that cannot work.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeLocal, ModeGCP:
	default:
		return fmt.Errorf("unsupported MAWAZO_MODE: %s", c.Mode)
	}

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case StorageMemory, StorageSQLite, StorageRedis:
	case StorageFirestore:
		if c.GCPProjectID == "" {
			return errors.New("MAWAZO_GCP_PROJECT is required for firestore storage")
		}
	default:
		return fmt.Errorf("unsupported MAWAZO_STORAGE_BACKEND: %s", c.StorageBackend)
	}

	// Minimal validation in GCP mode
	if c.Mode == ModeGCP && !c.UseMockLLM && c.GCPProjectID == "" && c.GeminiAPIKey == "" {
		return errors.New("MAWAZO_GCP_PROJECT or MAWAZO_GEMINI_API_KEY must be set in gcp mode")
	}

	surfaces := make([]string, 0, len(c.AISurfaces))
	for _, s := range c.AISurfaces {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if s == SurfaceNone {
			surfaces = []string{SurfaceNone}
			break
		}
		if !knownSurfaces[s] {
			return fmt.Errorf("unknown AI surface %q", s)
		}
		surfaces = append(surfaces, s)
	}
	c.AISurfaces = surfaces
	return nil
}

// SurfaceEnabled reports whether the named host surface should be exposed.
// Nothing is exposed when AISurfaces is "none".
func (c *Config) SurfaceEnabled(name string) bool {
	if len(c.AISurfaces) == 0 {
		return true
	}
	for _, s := range c.AISurfaces {
		if s == name {
			return true
		}
	}
	return false
}
