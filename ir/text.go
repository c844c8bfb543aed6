package ir

// TextOption configures ToJSON and ToYAML.
type TextOption func(*textConfig)

type textConfig struct {
	colors *Colors
	indent string
}

func newTextConfig(opts []TextOption) *textConfig {
	cfg := &textConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// EncodeColors colors the output with c.
func EncodeColors(c *Colors) TextOption {
	return func(cfg *textConfig) { cfg.colors = c }
}

// EncodeIndent puts each JSON element on its own line, indented by s per
// level. YAML output is always indented.
func EncodeIndent(s string) TextOption {
	return func(cfg *textConfig) { cfg.indent = s }
}
