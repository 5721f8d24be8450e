package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port int `yaml:"port"`

	// Provider settings. APIKey is the OpenRouter (or compatible) bearer
	// token; it lives for the process run only and is never persisted.
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Referer string `yaml:"referer"`
	Title   string `yaml:"title"`

	// ServiceKey, when set, gates the API behind an X-API-Key header.
	ServiceKey string `yaml:"service_key"`

	// Optional files overriding the built-in task prompts.
	PromptLeftPath  string `yaml:"prompt_left_path"`
	PromptRightPath string `yaml:"prompt_right_path"`
}

func defaults() Config {
	return Config{
		Port:    8090,
		BaseURL: "https://openrouter.ai/api/v1",
		Model:   "deepseek/deepseek-chat",
		Referer: "https://ai-text-tool.app",
		Title:   "AI-Text-Tool",
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. An empty path returns defaults +
// env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("TEXTFORK_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid TEXTFORK_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("TEXTFORK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TEXTFORK_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("TEXTFORK_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TEXTFORK_SERVICE_KEY"); v != "" {
		cfg.ServiceKey = v
	}
	if v := os.Getenv("TEXTFORK_PROMPT_LEFT_PATH"); v != "" {
		cfg.PromptLeftPath = v
	}
	if v := os.Getenv("TEXTFORK_PROMPT_RIGHT_PATH"); v != "" {
		cfg.PromptRightPath = v
	}

	return cfg, nil
}

// Prompts resolves the two task prompts: file overrides when configured,
// the built-in defaults otherwise.
func (c Config) Prompts() (left, right string, err error) {
	left, right = DefaultPromptLeft, DefaultPromptRight
	if c.PromptLeftPath != "" {
		data, err := os.ReadFile(c.PromptLeftPath)
		if err != nil {
			return "", "", fmt.Errorf("config: read left prompt: %w", err)
		}
		left = string(data)
	}
	if c.PromptRightPath != "" {
		data, err := os.ReadFile(c.PromptRightPath)
		if err != nil {
			return "", "", fmt.Errorf("config: read right prompt: %w", err)
		}
		right = string(data)
	}
	return left, right, nil
}
