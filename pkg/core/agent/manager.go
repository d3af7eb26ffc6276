// Package agent wires language-model providers to the tagging pipeline. It
// is orchestration glue: provider selection, the tagging system prompt and
// the loop that turns mapped statement data into a tagged filing.
package agent

import (
	"context"
	"fmt"

	"xbrl_tagging/pkg/core/llm"
)

// Config selects providers, usually loaded from config/models.yaml.
type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

// AgentConfig optionally overrides the provider for one agent type.
type AgentConfig struct {
	Provider    string `yaml:"provider"`
	Description string `yaml:"description"`
}

// Manager resolves which provider serves which agent type.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":   &llm.GeminiProvider{},
			"deepseek": &llm.DeepSeekProvider{},
		},
	}
}

// GetProvider returns the provider for an agent type, honoring per-agent
// overrides, then the global active provider, then gemini.
func (m *Manager) GetProvider(agentType string) llm.Provider {
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p
		}
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}

// GetProviderByName retrieves a provider by its name.
func (m *Manager) GetProviderByName(name string) llm.Provider {
	if p, ok := m.providers[name]; ok {
		return p
	}
	return nil
}

// ExecutePrompt adapts instructions for the selected model and runs it.
func (m *Manager) ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(agentType)
	adapted := provider.AdaptInstructions(rawSystemPrompt)
	return provider.GenerateResponse(ctx, rawPrompt, adapted, options)
}

// SetGlobalProvider switches the active provider.
func (m *Manager) SetGlobalProvider(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("provider %s not found", name)
	}
	m.config.ActiveProvider = name
	return nil
}

// GetActiveProvider returns the name of the active provider.
func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}

// Available lists the registered provider names.
func (m *Manager) Available() []string {
	return []string{"gemini", "deepseek"}
}
