package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup and handed to the collaborators that need it.
type Config struct {
	Port  string
	Debug bool

	Provider string // "gemini" or "openai"

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	ModelTimeout time.Duration

	YouTubeAPIKey string

	HFAPIKey     string
	HFImageModel string
	HFBaseURL    string

	LogFile       string
	MongoURI      string
	MongoDatabase string

	StaticDir   string
	CORSOrigins []string
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getList(k string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Load reads the process environment. The .env file, if any, is already
// merged into it by godotenv/autoload in cmd.
func Load() Config {
	debug, _ := strconv.ParseBool(os.Getenv("DEBUG"))
	return Config{
		Port:  getEnv("PORT", "8080"),
		Debug: debug,

		Provider: strings.ToLower(getEnv("MODEL_PROVIDER", "gemini")),

		GeminiAPIKey: getEnv("GOOGLE_API_KEY", os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),

		ModelTimeout: getDuration("MODEL_TIMEOUT", 60*time.Second),

		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),

		HFAPIKey:     getEnv("HF_API_KEY", ""),
		HFImageModel: getEnv("HF_IMAGE_MODEL", "stabilityai/stable-diffusion-xl-base-1.0"),
		HFBaseURL:    getEnv("HF_BASE_URL", ""),

		LogFile:       getEnv("LOG_FILE", "interactions.json"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "mindful"),

		StaticDir:   getEnv("STATIC_DIR", "static"),
		CORSOrigins: getList("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
