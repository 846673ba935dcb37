package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa de la herramienta.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Render  RenderConfig  `yaml:"render"`
	Holders HoldersConfig `yaml:"holders"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig contiene los base URLs y cabeceras de las APIs públicas.
type APIConfig struct {
	DataBase        string `yaml:"data_base"`        // data-api: holders, positions
	LeaderboardBase string `yaml:"leaderboard_base"` // lb-api: volume, profit
	Origin          string `yaml:"origin"`           // Origin/Referer que espera la API
	UserAgent       string `yaml:"user_agent"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
}

// RenderConfig controla cómo se carga la página del mercado.
type RenderConfig struct {
	Mode                     string `yaml:"mode"` // chrome | static
	Headless                 bool   `yaml:"headless"`
	NavigationTimeoutSeconds int    `yaml:"navigation_timeout_seconds"`
	ActionTimeoutSeconds     int    `yaml:"action_timeout_seconds"`
	ScriptWaitSeconds        int    `yaml:"script_wait_seconds"`
}

// HoldersConfig controla la extracción de holders.
type HoldersConfig struct {
	DefaultMaxPerSide int `yaml:"default_max_per_side"`
	PacingMillis      int `yaml:"pacing_millis"` // espera entre perfiles
	PositionsLimit    int `yaml:"positions_limit"`
	OverFetchMargin   int `yaml:"over_fetch_margin"`
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Si el YAML no existe se usan los defaults; las variables de entorno
// sobreescriben ambos.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	cfg := Config{Render: RenderConfig{Headless: true}}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// sin archivo: defaults + env
		case err != nil:
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
			}
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// APITimeout devuelve el timeout HTTP como time.Duration.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Pacing devuelve la espera entre perfiles de holders.
func (c *Config) Pacing() time.Duration {
	return time.Duration(c.Holders.PacingMillis) * time.Millisecond
}

// NavigationTimeout devuelve el timeout de navegación del renderer.
func (c *Config) NavigationTimeout() time.Duration {
	return time.Duration(c.Render.NavigationTimeoutSeconds) * time.Second
}

// ActionTimeout devuelve el timeout de cada acción del renderer.
func (c *Config) ActionTimeout() time.Duration {
	return time.Duration(c.Render.ActionTimeoutSeconds) * time.Second
}

// ScriptWait devuelve la espera máxima por el script de estado.
func (c *Config) ScriptWait() time.Duration {
	return time.Duration(c.Render.ScriptWaitSeconds) * time.Second
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("POLYHOLDERS_DATA_API"); v != "" {
		cfg.API.DataBase = v
	}
	if v := os.Getenv("POLYHOLDERS_LB_API"); v != "" {
		cfg.API.LeaderboardBase = v
	}
	if v := os.Getenv("POLYHOLDERS_RENDERER"); v != "" {
		cfg.Render.Mode = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.API.DataBase == "" {
		cfg.API.DataBase = "https://data-api.polymarket.com"
	}
	if cfg.API.LeaderboardBase == "" {
		cfg.API.LeaderboardBase = "https://lb-api.polymarket.com"
	}
	if cfg.API.Origin == "" {
		cfg.API.Origin = "https://polymarket.com"
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 20
	}
	if cfg.Render.Mode == "" {
		cfg.Render.Mode = "chrome"
	}
	if cfg.Render.NavigationTimeoutSeconds <= 0 {
		cfg.Render.NavigationTimeoutSeconds = 60
	}
	if cfg.Render.ActionTimeoutSeconds <= 0 {
		cfg.Render.ActionTimeoutSeconds = 30
	}
	if cfg.Render.ScriptWaitSeconds <= 0 {
		cfg.Render.ScriptWaitSeconds = 15
	}
	if cfg.Holders.DefaultMaxPerSide <= 0 {
		cfg.Holders.DefaultMaxPerSide = 5
	}
	if cfg.Holders.PacingMillis <= 0 {
		cfg.Holders.PacingMillis = 1000 // rate limit de la API de perfiles
	}
	if cfg.Holders.PositionsLimit <= 0 {
		cfg.Holders.PositionsLimit = 1000
	}
	if cfg.Holders.OverFetchMargin <= 0 {
		cfg.Holders.OverFetchMargin = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
