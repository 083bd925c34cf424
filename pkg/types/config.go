// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds shared settings for stages that call the generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens caps the length of a single model response (default 2000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Timeout is the per-call HTTP timeout for generation requests.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8001").
	Addr string `json:"addr" yaml:"addr"`

	// AllowedOrigin is the CORS Access-Control-Allow-Origin value sent to
	// browser frontends (default "*").
	AllowedOrigin string `json:"allowed_origin" yaml:"allowed_origin"`

	// ShutdownGrace is how long in-flight requests may run after a
	// termination signal before the server is torn down.
	ShutdownGrace time.Duration `json:"shutdown_grace" yaml:"shutdown_grace"`
}

// PageSetup holds the fixed page geometry used when rendering PDFs.
// All values are in PostScript points (1/72 inch). Zero values select the
// Letter defaults with one-inch margins.
type PageSetup struct {
	// PageWidth and PageHeight are the physical page dimensions.
	PageWidth  float64 `json:"page_width" yaml:"page_width"`
	PageHeight float64 `json:"page_height" yaml:"page_height"`

	// MarginInset is the uniform margin on all four sides.
	MarginInset float64 `json:"margin_inset" yaml:"margin_inset"`

	// LineHeight is the vertical advance per body line.
	LineHeight float64 `json:"line_height" yaml:"line_height"`

	// TitleGap is the vertical space between the title baseline and the
	// first body line.
	TitleGap float64 `json:"title_gap" yaml:"title_gap"`
}

// GenerationConfig holds settings for the writing pipeline.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// MaxSnippets is the number of background fact snippets gathered before
	// summarizing (default 5).
	MaxSnippets int `json:"max_snippets" yaml:"max_snippets"`
}

// EngineConfig groups all stage configurations for the writer engine.
type EngineConfig struct {
	Server     ServerConfig     `json:"server" yaml:"server"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Page       PageSetup        `json:"page" yaml:"page"`
}
