package encode

import "github.com/maximizer/indents/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeMode(m format.Mode) EncodeOption {
	return func(es *EncState) { es.mode = m }
}

// EncodeIndent sets the indent unit of the indents format. Only a tab or
// four spaces read back as one level.
func EncodeIndent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f format.Format) string {
	switch f {
	case format.JSONFormat:
		return ".json"
	case format.YAMLFormat:
		return ".yaml"
	default:
		return ".txt"
	}
}
