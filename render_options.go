package marktext

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	plain  bool
	footer string
}

// WithPlain disables markup interpretation; the source renders as
// literal text.
func WithPlain(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.plain = enabled
	}
}

// WithFooter appends a dim footer line after the content.
func WithFooter(text string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.footer = text
	}
}
