package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Providers ProvidersConfig `yaml:"providers"`
	Redis     RedisConfig     `yaml:"redis"`
	Rosters   RostersConfig   `yaml:"rosters"`
}

type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"` // usually via TELEGRAM_BOT_TOKEN
	ChatID   int64  `yaml:"chat_id"`   // usually via TELEGRAM_CHAT_ID
}

type ScheduleConfig struct {
	// SendTimes are local Colombia times ("15:04") at which the daily
	// report is generated and delivered.
	SendTimes []string `yaml:"send_times"`
}

type ProvidersConfig struct {
	OddsAPI      OddsAPIConfig      `yaml:"odds_api"`
	FootballData FootballDataConfig `yaml:"football_data"`
	APISports    APISportsConfig    `yaml:"api_sports"`
	APITennis    APITennisConfig    `yaml:"api_tennis"`
	SportsDB     SportsDBConfig     `yaml:"sportsdb"`
}

type OddsAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // usually via ODDS_API_KEY
	Regions string        `yaml:"regions"`
	Timeout time.Duration `yaml:"timeout"`
}

type FootballDataConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // usually via FOOTBALL_DATA_API_KEY
	Timeout time.Duration `yaml:"timeout"`
}

type APISportsConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // usually via API_FOOTBALL_KEY
	Timeout time.Duration `yaml:"timeout"`
}

type APITennisConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // usually via API_TENNIS_KEY
	Timeout time.Duration `yaml:"timeout"`
}

type SportsDBConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // usually via THESPORTSDB_API_KEY
	Timeout time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	// Addr empty disables the odds-response cache entirely.
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	OddsTTL  time.Duration `yaml:"odds_ttl"`
}

type RostersConfig struct {
	// FootballTeams filters football fixtures to ones involving a
	// listed national side. Names should match the results provider's
	// language (football-data.org reports in English).
	FootballTeams []string `yaml:"football_teams"`
	// TennisPlayers filters tennis matches to listed players;
	// last names are enough thanks to substring membership.
	TennisPlayers []string `yaml:"tennis_players"`
}

// Load reads the YAML config, applies defaults and overlays
// credentials from the environment.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.applyEnv()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.ReadHeaderTimeout <= 0 {
		c.HTTP.ReadHeaderTimeout = 5 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if len(c.Schedule.SendTimes) == 0 {
		c.Schedule.SendTimes = []string{"08:00", "14:00", "16:30", "20:00"}
	}

	if c.Providers.OddsAPI.BaseURL == "" {
		c.Providers.OddsAPI.BaseURL = "https://api.the-odds-api.com"
	}
	if c.Providers.OddsAPI.Regions == "" {
		c.Providers.OddsAPI.Regions = "us,eu,uk"
	}
	if c.Providers.OddsAPI.Timeout <= 0 {
		c.Providers.OddsAPI.Timeout = 10 * time.Second
	}
	if c.Providers.FootballData.BaseURL == "" {
		c.Providers.FootballData.BaseURL = "https://api.football-data.org"
	}
	if c.Providers.FootballData.Timeout <= 0 {
		c.Providers.FootballData.Timeout = 12 * time.Second
	}
	if c.Providers.APISports.BaseURL == "" {
		c.Providers.APISports.BaseURL = "https://v3.football.api-sports.io"
	}
	if c.Providers.APISports.Timeout <= 0 {
		c.Providers.APISports.Timeout = 12 * time.Second
	}
	if c.Providers.APITennis.BaseURL == "" {
		c.Providers.APITennis.BaseURL = "https://api-tennis.com"
	}
	if c.Providers.APITennis.Timeout <= 0 {
		c.Providers.APITennis.Timeout = 10 * time.Second
	}
	if c.Providers.SportsDB.BaseURL == "" {
		c.Providers.SportsDB.BaseURL = "https://www.thesportsdb.com"
	}
	if c.Providers.SportsDB.Timeout <= 0 {
		c.Providers.SportsDB.Timeout = 10 * time.Second
	}

	if c.Redis.OddsTTL <= 0 {
		c.Redis.OddsTTL = 5 * time.Minute
	}

	if len(c.Rosters.FootballTeams) == 0 {
		c.Rosters.FootballTeams = defaultFootballTeams()
	}
	if len(c.Rosters.TennisPlayers) == 0 {
		c.Rosters.TennisPlayers = defaultTennisPlayers()
	}
}

// applyEnv overlays credentials from the environment. Env values win
// over the file so secrets stay out of config.yaml.
func (c *Config) applyEnv() {
	overlay(&c.Providers.OddsAPI.APIKey, "ODDS_API_KEY")
	overlay(&c.Providers.FootballData.APIKey, "FOOTBALL_DATA_API_KEY")
	overlay(&c.Providers.APISports.APIKey, "API_FOOTBALL_KEY")
	overlay(&c.Providers.APITennis.APIKey, "API_TENNIS_KEY")
	overlay(&c.Providers.SportsDB.APIKey, "THESPORTSDB_API_KEY")
	overlay(&c.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Telegram.ChatID = id
		}
	}
	overlay(&c.Redis.Addr, "REDIS_ADDR")
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// defaultFootballTeams is the FIFA top-20 national sides, in English
// to match football-data.org team naming.
func defaultFootballTeams() []string {
	return []string{
		"Argentina", "France", "England", "Belgium", "Brazil",
		"Netherlands", "Portugal", "Spain", "Italy", "Croatia",
		"USA", "Colombia", "Mexico", "Morocco", "Germany",
		"Switzerland", "Uruguay", "Denmark", "Japan", "Senegal",
	}
}

// defaultTennisPlayers is the ATP top-10 by last name.
func defaultTennisPlayers() []string {
	return []string{
		"Djokovic", "Alcaraz", "Sinner", "Zverev", "Medvedev",
		"Rune", "Rublev", "Ruud", "Tsitsipas", "Hurkacz",
	}
}
