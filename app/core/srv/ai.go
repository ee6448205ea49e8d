package srv

import (
	"fmt"

	"github.com/campus-sathi/campus-sathi/pkg/ai"
	"github.com/campus-sathi/campus-sathi/pkg/ai/gemini"
	"github.com/campus-sathi/campus-sathi/pkg/ai/openai"
	"github.com/campus-sathi/campus-sathi/pkg/translate"
)

type AIConfig struct {
	// Driver selects the provider: "openai", "gemini" or empty for the
	// template fallback mode.
	Driver         string `toml:"driver"`
	Token          string `toml:"token"`
	Proxy          string `toml:"proxy"`
	ChatModel      string `toml:"chat_model"`
	EmbeddingModel string `toml:"embedding_model"`
}

// AI bundles the provider driver with the pipeline components built on it.
// driver stays nil when no provider is configured and every consumer
// degrades on its own terms.
type AI struct {
	driver     ai.Driver
	generator  *ai.Generator
	translator *translate.Translator
}

func SetupAI(cfg AIConfig) (*AI, error) {
	model := ai.ModelName{
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
	}

	var driver ai.Driver
	switch cfg.Driver {
	case openai.NAME:
		driver = openai.New(cfg.Token, cfg.Proxy, model)
	case gemini.NAME:
		driver = gemini.New(cfg.Token, model)
	case "":
	default:
		return nil, fmt.Errorf("unknown ai driver %q", cfg.Driver)
	}

	a := &AI{driver: driver}
	if driver != nil {
		a.generator = ai.NewGenerator(driver)
		a.translator = translate.New(translate.NewLLMProvider(driver))
	} else {
		a.generator = ai.NewGenerator(nil)
		a.translator = translate.New(nil)
	}
	return a, nil
}

func (a *AI) Driver() ai.Driver {
	return a.driver
}

func (a *AI) Generator() *ai.Generator {
	return a.generator
}

func (a *AI) Translator() *translate.Translator {
	return a.translator
}

// Embedder returns the embedding side of the driver, nil when unconfigured.
func (a *AI) Embedder() ai.Embedding {
	if a.driver == nil {
		return nil
	}
	return a.driver
}
