package factory

import (
	"fmt"

	"study-assistant-be/internal/config"
	"study-assistant-be/pkg/llm"
	"study-assistant-be/pkg/llm/huggingface"
	"study-assistant-be/pkg/llm/ollama"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderOllama      = "ollama"
)

// NewLLMProvider builds the live backend named by cfg.Provider.
func NewLLMProvider(cfg config.TutorConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case ProviderOllama:
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	case ProviderHuggingFace:
		if cfg.HuggingFaceAPIKey == "" {
			return nil, fmt.Errorf("HUGGINGFACE_API_KEY is required for the huggingface provider")
		}
		return huggingface.NewHuggingFaceProvider(cfg.HuggingFaceAPIKey, cfg.HuggingFaceURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
