package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Translator backends selectable via TRANSLATOR.
const (
	TranslatorGoogle = "google"
	TranslatorLLM    = "llm"
	TranslatorOpenAI = "openai"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	PrimaryLang        string // language the transcript is shown in
	SecondaryLang      string // fallback caption language, translated into PrimaryLang
	Translator         string // google | llm | openai
	GoogleTranslateURL string
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenAIModel        string
	FetchTimeout       time.Duration
	SaveTranscripts    bool   // write <title>_transcript.txt after each lookup
	SaveDir            string // directory for saved transcripts
	HTTPClient         *http.Client
	BrowserClient      *BrowserClient // nil = watch page fetched with HTTPClient
	LLMClient          *llm.Client    // nil unless Translator == llm
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, translate).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
// Empty fields fall back to gu, hi and the google translator.
func Init(c Config) {
	if c.PrimaryLang == "" {
		c.PrimaryLang = "gu"
	}
	if c.SecondaryLang == "" {
		c.SecondaryLang = "hi"
	}
	if c.Translator == "" {
		c.Translator = TranslatorGoogle
	}
	if c.SaveDir == "" {
		c.SaveDir = "."
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	cfg = c
	Cfg = &cfg
}
