package shared

import (
	"encoding/json"
	"errors"
	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"log"
	"os"
	"time"
)

const (
	configVarName     = "CONFIG"       // If set, will load config from this path and not from defaultConfigPath
	defaultConfigPath = "config.jsonc" // Config file in working directory
	dotEnvFile        = ".env"
)

const (
	StateBackendFile   = "file"
	StateBackendSqlite = "sqlite"
)

type Config struct {
	Secrets             Secrets       `json:"-"`
	AppName             string        `json:"app_name"`
	AppEnv              string        `json:"app_env"`
	LogFile             string        `json:"log_file"`
	LogLevel            string        `json:"log_level"`
	ServicePort         uint          `json:"service_port"`
	StateBackend        string        `json:"state_backend"`
	StateDir            string        `json:"state_dir"`
	FollowersFile       string        `json:"followers_file"`
	DbFile              string        `json:"db_file"`
	CycleIntervalSec    int           `json:"cycle_interval_sec"`
	GitHubApiUrl        string        `json:"github_api_url"`
	Farming             FarmingConfig `json:"farming"`
	CleanupNonFollowers bool          `json:"cleanup_non_followers"`
	Pacing              Pacing        `json:"pacing"`
}

type FarmingConfig struct {
	Enabled           bool     `json:"enabled"`
	TargetRepos       []string `json:"target_repos"`
	DailyFollowLimit  int      `json:"daily_follow_limit"`
	HourlyFollowLimit int      `json:"hourly_follow_limit"`
	ScanLimit         int      `json:"scan_limit"`
}

// Pacing holds the delays between successive actions of a batch, in milliseconds.
type Pacing struct {
	FollowBackMs int `json:"follow_back_ms"`
	FarmingMs    int `json:"farming_ms"`
	CleanupMs    int `json:"cleanup_ms"`
}

type Secrets struct {
	GitHubToken      string
	TelegramBotToken string
	TelegramChatId   string
	ApiKey           string
	MetricsAuth      string
}

func (p Pacing) FollowBack() time.Duration { return time.Duration(p.FollowBackMs) * time.Millisecond }
func (p Pacing) Farming() time.Duration    { return time.Duration(p.FarmingMs) * time.Millisecond }
func (p Pacing) Cleanup() time.Duration    { return time.Duration(p.CleanupMs) * time.Millisecond }

func (cfg *Config) CycleInterval() time.Duration {
	return time.Duration(cfg.CycleIntervalSec) * time.Second
}

func DefaultConfig() *Config {
	return &Config{
		AppName:          "GitHub-Followers-API",
		AppEnv:           "development",
		LogFile:          "github_autofollow.log",
		LogLevel:         "Info",
		ServicePort:      8000,
		StateBackend:     StateBackendFile,
		StateDir:         ".",
		FollowersFile:    "followers.json",
		DbFile:           "follower_bot.db",
		CycleIntervalSec: 300,
		GitHubApiUrl:     "https://api.github.com",
		Farming: FarmingConfig{
			DailyFollowLimit:  100,
			HourlyFollowLimit: 40,
			ScanLimit:         3000,
		},
		Pacing: Pacing{
			FollowBackMs: 2000,
			FarmingMs:    3000,
			CleanupMs:    2000,
		},
	}
}

// LoadConfig reads the JSONC config file over the defaults, then fills in secrets from the environment.
// A missing or malformed config file is not fatal: absent settings simply leave features disabled.
func LoadConfig() *Config {

	// Secrets may live in a .env file next to the binary
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load %s: %v", dotEnvFile, err)
	}

	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = defaultConfigPath
	}

	cfg := DefaultConfig()
	if err := deserializeFile(cfgPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No config file at %s; using defaults", cfgPath)
		} else {
			log.Printf("Invalid config file %s: %v; using defaults", cfgPath, err)
			cfg = DefaultConfig()
		}
	}
	cfg.Secrets = loadSecrets()
	return cfg
}

func loadSecrets() Secrets {
	return Secrets{
		GitHubToken:      os.Getenv("GITHUB_TOKEN"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatId:   os.Getenv("TELEGRAM_CHAT_ID"),
		ApiKey:           os.Getenv("API_KEY"),
		MetricsAuth:      os.Getenv("METRICS_AUTH"),
	}
}

func deserializeFile[T any](fileName string, obj *T) error {
	var err error
	var cfgJson []byte
	if cfgJson, err = os.ReadFile(fileName); err != nil {
		return err
	}
	// JSONC => JSON
	if cfgJson, err = standardizeJSON(cfgJson); err != nil {
		return err
	}
	return json.Unmarshal(cfgJson, obj)
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
