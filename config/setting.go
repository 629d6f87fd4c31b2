package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type serverConfig struct {
	Port        int    `koanf:"port" validate:"required"`
	Mode        string `koanf:"mode" validate:"required"`
	Concurrency int    `koanf:"concurrency" validate:"required"`
	BodyLimit   int    `koanf:"body_limit" validate:"required"`
	AppName     string `koanf:"app_name" validate:"required"`
}

type logLevel string

const (
	Debug logLevel = "debug"
	Info  logLevel = "info"
	Warn  logLevel = "warn"
	Error logLevel = "error"
	Fatal logLevel = "fatal"
	Panic logLevel = "panic"
)

type Module string

const (
	ModuleChat     Module = "chat"
	ModuleCatalog  Module = "catalog"
	ModuleLLM      Module = "llm"
	ModuleDatabase Module = "database"
	ModuleServer   Module = "server"
	ModuleSetting  Module = "setting"
	ModuleCors     Module = "cors"
)

// Provider names accepted for provider selection.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type openaiConfig struct {
	Key   string `koanf:"key"`
	Model string `koanf:"model" validate:"required"`
}

type geminiConfig struct {
	Key   string `koanf:"key"`
	Model string `koanf:"model" validate:"required"`
}

type chatConfig struct {
	ReplyMaxTokens int `koanf:"reply_max_tokens" validate:"required"`
}

type databaseConfig struct {
	Host         string `koanf:"host" validate:"required"`
	Port         int    `koanf:"port" validate:"required"`
	User         string `koanf:"user" validate:"required"`
	Password     string `koanf:"password"`
	Name         string `koanf:"name" validate:"required"`
	MaxIdleConns int    `koanf:"max_idle_conns" validate:"required"`
	MaxOpenConns int    `koanf:"max_open_conns" validate:"required"`
	MaxLifetime  int    `koanf:"max_lifetime" validate:"required"`
}

type corsConfig struct {
	AllowOrigins []string `koanf:"allow_origins" validate:"required"`
	AllowMethods []string `koanf:"allow_methods" validate:"required"`
	AllowHeaders []string `koanf:"allow_headers" validate:"required"`
}

type config struct {
	Server   serverConfig   `koanf:"server"`
	Provider string         `koanf:"provider" validate:"required,oneof=openai gemini"`
	OpenAI   openaiConfig   `koanf:"openai"`
	Gemini   geminiConfig   `koanf:"gemini"`
	Chat     chatConfig     `koanf:"chat"`
	Database databaseConfig `koanf:"database"`
	Cors     corsConfig     `koanf:"cors"`
	LogLevel logLevel       `koanf:"log_level"`
	Dns      string         `koanf:"dns"`
}

func buildMySQLDSN(cfg databaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)
}

var defaultConfig = config{
	Server: serverConfig{
		Port:        8000,
		Mode:        "release",
		Concurrency: 256,
		BodyLimit:   4 * 1024 * 1024,
		AppName:     "vyria-server",
	},
	Provider: ProviderOpenAI,
	OpenAI: openaiConfig{
		Key:   "",
		Model: "gpt-4o-mini",
	},
	Gemini: geminiConfig{
		Key:   "",
		Model: "gemini-1.5-flash",
	},
	Chat: chatConfig{
		ReplyMaxTokens: 500,
	},
	Database: databaseConfig{
		Host:         "127.0.0.1",
		Port:         3306,
		User:         "root",
		Password:     "",
		Name:         "vyria",
		MaxIdleConns: 4,
		MaxOpenConns: 16,
		MaxLifetime:  30,
	},
	Cors: corsConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	},
	LogLevel: Info,
}

var (
	Cfg  = defaultConfig
	once sync.Once
)

// Init loads configuration from the given yaml file (if present) and from
// APP_-prefixed environment variables, then validates the result.
// Subsequent calls are no-ops.
func Init(path string) error {
	var initErr error

	once.Do(func() {
		k := koanf.New(".")

		validate := validator.New()
		Cfg = defaultConfig

		// file (optional)
		if e := k.Load(file.Provider(path), yaml.Parser()); e != nil && !os.IsNotExist(e) {
			initErr = e
			return
		}

		// env: APP_OPENAI__KEY -> openai.key (double underscore nests,
		// single underscore stays inside a key like body_limit)
		if e := k.Load(env.Provider("APP_", ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "APP_")), "__", ".")
		}), nil); e != nil {
			initErr = e
			return
		}

		if e := k.Unmarshal("", &Cfg); e != nil {
			log.Errorf("failed to unmarshal config: %v", e)
			initErr = e
			return
		}

		if Cfg.Dns == "" {
			Cfg.Dns = buildMySQLDSN(Cfg.Database)
		}

		if err := validate.Struct(Cfg); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				var sb strings.Builder
				sb.WriteString(fmt.Sprintf("%v Config validation failed:\n", ModuleSetting))

				for _, e := range errs {
					sb.WriteString(
						fmt.Sprintf("  - %s: failed '%s' (value: %v)\n", e.Field(), e.Tag(), e.Value()),
					)
				}

				log.Error(sb.String())
			} else {
				log.Errorf("config validation failed: %v", err)
			}
		}
	})

	return initErr
}
