// Package translate provides engine.Translator implementations: the public
// Google web translate endpoint, an OpenAI-compatible LLM through go-kit/llm,
// and the OpenAI API through go-openai.
package translate

import (
	"fmt"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// New builds the translator selected by c.Translator.
func New(c *engine.Config) (engine.Translator, error) {
	switch c.Translator {
	case "", engine.TranslatorGoogle:
		return NewGoogle(c.GoogleTranslateURL), nil
	case engine.TranslatorLLM:
		if c.LLMClient == nil {
			return nil, fmt.Errorf("translator %q: LLM client not configured (set LLM_API_KEY)", c.Translator)
		}
		return NewLLM(c.LLMClient), nil
	case engine.TranslatorOpenAI:
		if c.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("translator %q: OPENAI_API_KEY is empty", c.Translator)
		}
		return NewOpenAI(c.OpenAIAPIKey, c.OpenAIBaseURL, c.OpenAIModel), nil
	}
	return nil, fmt.Errorf("unknown translator %q (valid: google, llm, openai)", c.Translator)
}
