package conf

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/pkg/errors"
)

type LogConfig struct {
	Enable     bool   `env:"LOG_ENABLE" envDefault:"true"`
	Name       string `env:"LOG_NAME"`
	MaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAge     int    `env:"LOG_MAX_AGE" envDefault:"28"`
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
}

type SearchConfig struct {
	APIURL         string `env:"SEARCH_API_URL" envDefault:"https://api.nexray.web.id/search/pinterest"`
	TimeoutSeconds int    `env:"SEARCH_TIMEOUT" envDefault:"15"`
}

// ForwardConfig configures delivery to the upload-scheduling service.
type ForwardConfig struct {
	URL            string `env:"WEB1_URL" envDefault:"https://small-jeana-botalesya-7f9a1b98.koyeb.app"`
	APIKey         string `env:"WEB1_API_KEY"`
	TimeoutSeconds int    `env:"WEB1_TIMEOUT" envDefault:"300"`
}

type Config struct {
	Address     string `env:"FOTOVID_ADDR" envDefault:"0.0.0.0"`
	Port        int    `env:"FOTOVID_PORT" envDefault:"5000"`
	DataDir     string `env:"FOTOVID_DATA" envDefault:"data"`
	MusicDir    string `env:"FOTOVID_MUSIC"`
	MaxUploadMB int64  `env:"FOTOVID_MAX_UPLOAD_MB" envDefault:"100"`

	Log     LogConfig     `envPrefix:"FOTOVID_"`
	Search  SearchConfig  `envPrefix:"FOTOVID_"`
	Forward ForwardConfig `envPrefix:""`
}

// Conf is the process-wide configuration, set once by bootstrap.
var Conf *Config

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed parse config from env")
	}
	abs, err := filepath.Abs(cfg.DataDir)
	if err == nil {
		cfg.DataDir = abs
	}
	return cfg, nil
}

// UploadDir is where uploaded and downloaded source images are kept.
func (c *Config) UploadDir() string {
	return filepath.Join(c.DataDir, "uploads")
}

// VideoDir is where produced video files are kept.
func (c *Config) VideoDir() string {
	return filepath.Join(c.DataDir, "videos")
}

// InfoDir holds per-item info JSON documents.
func (c *Config) InfoDir() string {
	return filepath.Join(c.DataDir, "info")
}

func (c *Config) VideoLogFile() string {
	return filepath.Join(c.DataDir, "video_log.json")
}

func (c *Config) CreationLogFile() string {
	return filepath.Join(c.DataDir, "creations.json")
}

func (c *Config) SeenHistoryFile() string {
	return filepath.Join(c.DataDir, "seen_history.json")
}

func (c *Config) SentLogFile() string {
	return filepath.Join(c.DataDir, "sent_log.json")
}

func (c *Config) LogFile() string {
	if c.Log.Name != "" {
		return c.Log.Name
	}
	return filepath.Join(c.DataDir, "log", "fotovid.log")
}

// ResolveMusicDir returns the first existing music folder from the
// candidate list, creating the default one when none exists.
func (c *Config) ResolveMusicDir() string {
	if c.MusicDir != "" {
		return c.MusicDir
	}
	candidates := []string{filepath.Join(c.DataDir, "music")}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, "Music"),
			filepath.Join(home, "music"),
		)
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	fallback := candidates[0]
	_ = os.MkdirAll(fallback, 0o755)
	return fallback
}
