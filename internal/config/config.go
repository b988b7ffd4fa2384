package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided. The file is
	// optional; environment variables alone are enough to run.
	DefaultConfigPath = "config.yml"

	defaultPort        = 5000
	defaultEnv         = "development"
	defaultMongoDB     = "portfolio"
	defaultMediaFolder = "portfolio"
	defaultStaticDir   = "uploads"
)

// AppConfig is the runtime startup configuration: YAML file first, then
// environment overrides on top.
type AppConfig struct {
	Port           int          `yaml:"port"`
	Env            string       `yaml:"env"` // "development" | "production"
	MongoURI       string       `yaml:"mongo_uri"`
	MongoDB        string       `yaml:"mongo_db"`
	AllowedOrigins []string     `yaml:"allowed_origins"`
	JWTSecret      string       `yaml:"jwt_secret"`
	MediaFolder    string       `yaml:"media_folder"`
	StaticDir      string       `yaml:"static_dir"`
	Media          MediaOptions `yaml:"media"`
}

// MediaOptions holds the media-host credentials.
type MediaOptions struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
	PublicBaseURL   string `yaml:"public_base_url"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Load reads the optional YAML file at path, applies environment overrides
// and validates. A missing Mongo URI is fatal: the process must not start
// without its store.
func Load(path string) (*AppConfig, error) {
	cfg := defaultAppConfig()

	if path = strings.TrimSpace(path); path == "" {
		path = DefaultConfigPath
	}
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if strings.TrimSpace(cfg.MongoURI) == "" {
		return nil, fmt.Errorf("mongo uri is required (set MONGO_URI or mongo_uri in %s)", path)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:        defaultPort,
		Env:         defaultEnv,
		MongoDB:     defaultMongoDB,
		MediaFolder: defaultMediaFolder,
		StaticDir:   defaultStaticDir,
	}
}

// applyEnv overlays the recognized environment variables.
func applyEnv(cfg *AppConfig) {
	setString(&cfg.Env, "ENV", "NODE_ENV")
	setString(&cfg.MongoURI, "MONGO_URI")
	setString(&cfg.MongoDB, "MONGO_DB")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.MediaFolder, "MEDIA_FOLDER")
	setString(&cfg.StaticDir, "STATIC_DIR")

	if v := lookup("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := lookup("FRONTEND_ORIGIN"); v != "" {
		origins := strings.Split(v, ",")
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, o := range origins {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	setString(&cfg.Media.Bucket, "MEDIA_BUCKET")
	setString(&cfg.Media.Region, "MEDIA_REGION")
	setString(&cfg.Media.AccessKeyID, "MEDIA_ACCESS_KEY_ID")
	setString(&cfg.Media.SecretAccessKey, "MEDIA_SECRET_ACCESS_KEY")
	setString(&cfg.Media.Endpoint, "MEDIA_ENDPOINT")
	setString(&cfg.Media.PublicBaseURL, "MEDIA_PUBLIC_BASE_URL")
	if v := lookup("MEDIA_PATH_STYLE"); v != "" {
		cfg.Media.PathStyleAccess = strings.EqualFold(v, "true")
	}
}

func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := lookup(key); v != "" {
			*dst = v
			return
		}
	}
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
