package llm

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/kayz/reelcheck/internal/config"
)

// ErrNoAPIKey is returned before any network call when no API key can
// be resolved from the environment or the config file.
var ErrNoAPIKey = errors.New("no API key configured")

// Template describes a known provider: its default endpoint and model,
// and the environment variables its key may live in (first present wins).
type Template struct {
	Name           string
	Type           string
	DefaultBaseURL string
	DefaultModel   string
	EnvKeys        []string
}

var templates = map[string]Template{
	"gemini": {
		Name:           "gemini",
		Type:           "openai-compat",
		DefaultBaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/",
		DefaultModel:   "gemini-2.5-flash",
		EnvKeys:        []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"},
	},
	"openai": {
		Name:           "openai",
		Type:           "openai-compat",
		DefaultBaseURL: "https://api.openai.com/v1",
		DefaultModel:   "gpt-4o-mini",
		EnvKeys:        []string{"OPENAI_API_KEY"},
	},
	"deepseek": {
		Name:           "deepseek",
		Type:           "openai-compat",
		DefaultBaseURL: "https://api.deepseek.com/v1",
		DefaultModel:   "deepseek-chat",
		EnvKeys:        []string{"DEEPSEEK_API_KEY"},
	},
	"claude": {
		Name:           "claude",
		Type:           "anthropic",
		DefaultBaseURL: "",
		DefaultModel:   "claude-3-5-haiku-20241022",
		EnvKeys:        []string{"ANTHROPIC_API_KEY", "CLAUDE_API_KEY"},
	},
}

// GetTemplate returns the template for a provider name.
func GetTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

// ListTemplates returns all known provider templates sorted by name.
func ListTemplates() []Template {
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ResolveAPIKey resolves the key for a template: environment variables
// in declared order first, then the config-file key.
func ResolveAPIKey(tmpl Template, cfgKey string) (string, error) {
	for _, env := range tmpl.EnvKeys {
		if v := os.Getenv(env); v != "" {
			return v, nil
		}
	}
	if cfgKey != "" {
		return cfgKey, nil
	}
	return "", fmt.Errorf("%s (set %s): %w", tmpl.Name, envKeysHint(tmpl), ErrNoAPIKey)
}

func envKeysHint(tmpl Template) string {
	switch len(tmpl.EnvKeys) {
	case 0:
		return "api_key in config"
	case 1:
		return tmpl.EnvKeys[0]
	default:
		return tmpl.EnvKeys[0] + " or " + tmpl.EnvKeys[1]
	}
}

// NewProvider builds the configured provider from the AI config section,
// filling in template defaults for model and base URL.
func NewProvider(cfg config.AIConfig) (Provider, error) {
	name := cfg.Provider
	if name == "" {
		name = "gemini"
	}

	tmpl, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}

	apiKey, err := ResolveAPIKey(tmpl, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = tmpl.DefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = tmpl.DefaultBaseURL
	}

	switch tmpl.Type {
	case "anthropic":
		return NewAnthropicProvider(AnthropicConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   model,
		})
	default:
		return NewOpenAICompatProvider(OpenAICompatConfig{
			ProviderName: tmpl.Name,
			APIKey:       apiKey,
			BaseURL:      baseURL,
			Model:        model,
		})
	}
}
