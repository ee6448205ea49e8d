package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/campus-sathi/campus-sathi/app/core/srv"
	"github.com/campus-sathi/campus-sathi/pkg/cache"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string       `toml:"addr"`
	Log      Log          `toml:"log"`
	Postgres PGConfig     `toml:"postgres"`
	Redis    cache.Config `toml:"redis"`

	AI srv.AIConfig `toml:"ai"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("SATHI_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()

	c.Redis.Addr = os.Getenv("SATHI_REDIS_ADDR")
	c.Redis.Password = os.Getenv("SATHI_REDIS_PASSWORD")
	if dbStr := os.Getenv("SATHI_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			c.Redis.DB = db
		}
	}

	c.AI.Driver = os.Getenv("SATHI_AI_DRIVER")
	c.AI.Token = os.Getenv("SATHI_AI_TOKEN")
	c.AI.Proxy = os.Getenv("SATHI_AI_PROXY")
	c.AI.ChatModel = os.Getenv("SATHI_AI_CHAT_MODEL")
	c.AI.EmbeddingModel = os.Getenv("SATHI_AI_EMBEDDING_MODEL")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("SATHI_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("SATHI_API_LOG_LEVEL")
	l.Path = os.Getenv("SATHI_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
