package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from config.yml. cleanenv applies env-default to zero values only,
// so flags that default to true are set in the file instead.
type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Match    Match   `yaml:"match"`
	Search   Search  `yaml:"search"`
	Redis    Redis   `yaml:"redis"`
	Console  Console `yaml:"console"`
}

type Match struct {
	PlayerX          string  `yaml:"player-x" env:"MATCH_PLAYER_X" env-default:"minimax"`
	PlayerO          string  `yaml:"player-o" env:"MATCH_PLAYER_O" env-default:"random"`
	Games            int     `yaml:"games" env:"MATCH_GAMES" env-default:"1"`
	SecondsPerPlayer float64 `yaml:"seconds-per-player" env:"MATCH_SECONDS_PER_PLAYER" env-default:"50"`
	LoseOnTimeout    bool    `yaml:"lose-on-timeout" env:"MATCH_LOSE_ON_TIMEOUT" env-default:"false"`
	Verbose          bool    `yaml:"verbose" env:"MATCH_VERBOSE"`
	Seed             int64   `yaml:"seed" env:"MATCH_SEED" env-default:"0"`

	// Start is a board in the ParsePosition format, empty for the empty board.
	Start string `yaml:"start" env:"MATCH_START" env-default:""`
}

type Search struct {
	// MaxDepth of -1 searches every line to the end. A zero value is replaced by
	// the default, so the shallowest configurable search is one ply.
	MaxDepth int  `yaml:"max-depth" env:"SEARCH_MAX_DEPTH" env-default:"-1"`
	Workers  int  `yaml:"workers" env:"SEARCH_WORKERS" env-default:"1"`
	Pruning  bool `yaml:"pruning" env:"SEARCH_PRUNING"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB      int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

type Console struct {
	Color bool `yaml:"color" env:"CONSOLE_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Budget is the thinking time of each player for one match.
func (that *Match) Budget() time.Duration {
	return time.Duration(that.SecondsPerPlayer * float64(time.Second))
}
