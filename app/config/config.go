package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log        Log        `yaml:"log"`
	Server     Server     `yaml:"server"`
	RocketChat RocketChat `yaml:"rocket_chat"`
	OpenAI     OpenAI     `yaml:"openai"`
	Search     Search     `yaml:"search"`
}

type Server struct {
	// Port the webhook server listens on
	Port int `yaml:"port" example:"8000"`
}

type RocketChat struct {
	// Base URL of the Rocket.Chat deployment
	URL string `yaml:"url" example:"https://chat.genaiconnect.net" validate:"required"`
	// Personal access token of the bot account
	Token string `yaml:"token" example:"LSyyCDMk0-abc123456789defGHI_jklMNO" validate:"required"`
	// User ID of the bot account
	UserID string `yaml:"user_id" example:"JTzYdypXa5E6Qh4uE" validate:"required"`
}

type OpenAI struct {
	// OpenAI base url
	BaseURL string `yaml:"base_url" example:"https://openrouter.ai/api/v1" validate:"required"`
	// OpenAI token
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX" validate:"required"`
	// OpenAI model
	Model string `yaml:"model" example:"gpt-4o-mini" validate:"required"`
}

type Search struct {
	// Search endpoint serving the HTML results page
	BaseURL string `yaml:"base_url" example:"https://html.duckduckgo.com/html/"`
	// Number of results requested per query
	MaxResults int `yaml:"max_results" example:"3"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Port == 0 {
		result.Server.Port = 8000
	}
	if result.Search.BaseURL == "" {
		result.Search.BaseURL = "https://html.duckduckgo.com/html/"
	}
	if result.Search.MaxResults == 0 {
		result.Search.MaxResults = 3
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
