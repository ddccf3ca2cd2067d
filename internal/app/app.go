// Package app wires configuration, engine and form controller for the
// go_transcript binaries.
package app

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/proxypool"
	"github.com/joho/godotenv"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/resolver"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/anatolykoptev/go_transcript/internal/engine/translate"
	"github.com/anatolykoptev/go_transcript/internal/form"
)

// LoadDotEnv loads .env from the working directory if present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env", slog.Any("error", err))
	}
}

// SetupLogging installs a text slog handler on w at LOG_LEVEL.
func SetupLogging(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(env.Str("LOG_LEVEL", "info"))})
	slog.SetDefault(slog.New(h))
}

// ParseLevel maps debug|info|warn|error (any case) to a slog level; unknown is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigFromEnv reads engine configuration from the environment.
func ConfigFromEnv() engine.Config {
	fetchTimeout := env.Duration("FETCH_TIMEOUT", 15*time.Second)
	return engine.Config{
		PrimaryLang:        env.Str("PRIMARY_LANG", "gu"),
		SecondaryLang:      env.Str("SECONDARY_LANG", "hi"),
		Translator:         strings.ToLower(env.Str("TRANSLATOR", engine.TranslatorGoogle)),
		GoogleTranslateURL: env.Str("GOOGLE_TRANSLATE_URL", ""),
		LLMAPIKey:          env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks: env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:           env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:     env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:       env.Int("LLM_MAX_TOKENS", 16384),
		OpenAIAPIKey:       env.Str("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      env.Str("OPENAI_BASE_URL", ""),
		OpenAIModel:        env.Str("OPENAI_MODEL", ""),
		FetchTimeout:       fetchTimeout,
		SaveTranscripts:    envBool("SAVE_TRANSCRIPTS", false),
		SaveDir:            env.Str("SAVE_DIR", "."),
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
}

// envBool reads a boolean env var; unparsable values fall back to def.
func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(env.Str(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}

// Build initialises the engine from c and returns the form controller every
// surface drives. The stealth client and LLM client are attached here.
func Build(c engine.Config) (*form.Controller, error) {
	if envBool("STEALTH_ENABLED", true) {
		c.BrowserClient = newBrowserClient(c.FetchTimeout)
	}
	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	}

	engine.Init(c)

	tr, err := translate.New(engine.Cfg)
	if err != nil {
		return nil, err
	}
	yt := sources.NewYouTube()
	r := resolver.New(yt, tr, engine.Cfg.PrimaryLang, engine.Cfg.SecondaryLang)

	slog.Info("engine ready",
		slog.String("primary", engine.Cfg.PrimaryLang),
		slog.String("secondary", engine.Cfg.SecondaryLang),
		slog.String("translator", engine.Cfg.Translator),
		slog.Bool("save", engine.Cfg.SaveTranscripts))

	return form.New(r, engine.Cfg.PrimaryLang, form.Options{
		Save:    engine.Cfg.SaveTranscripts,
		SaveDir: engine.Cfg.SaveDir,
		Titles:  yt,
	}), nil
}

func newBrowserClient(timeout time.Duration) *engine.BrowserClient {
	secs := int(timeout / time.Second)
	if secs <= 0 {
		secs = 15
	}
	opts := []stealth.ClientOption{stealth.WithTimeout(secs)}

	if apiKey := env.Str("WEBSHARE_API_KEY", ""); apiKey != "" {
		pool, err := proxypool.NewWebshare(apiKey)
		if err != nil {
			slog.Warn("proxy pool init failed, running without proxy", slog.Any("error", err))
		} else {
			opts = append(opts, stealth.WithProxyPool(pool))
			slog.Info("proxy pool initialized", slog.Int("proxies", pool.Len()))
		}
	}

	bc, err := stealth.NewClient(opts...)
	if err != nil {
		slog.Error("stealth client init failed", slog.Any("error", err))
		return nil
	}
	slog.Info("stealth browser client initialized")
	return bc
}
