package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/pagewidget/internal/config"
	"github.com/rshade/pagewidget/internal/widget"
)

// widgetDocument is the JSON and YAML form of a computed widget.
type widgetDocument struct {
	CurrentPage  uint64         `json:"current_page"  yaml:"current_page"`
	TotalPages   uint64         `json:"total_pages"   yaml:"total_pages"`
	BoundarySize uint64         `json:"boundary_size" yaml:"boundary_size"`
	AroundSize   uint64         `json:"around_size"   yaml:"around_size"`
	Tokens       []widget.Token `json:"tokens"        yaml:"tokens"`
	Text         string         `json:"text"          yaml:"text"`
	Collapsed    bool           `json:"collapsed"     yaml:"collapsed"`
}

// newWidgetDocument fails with widget.ErrTooManyTokens for widgets too large
// to hold in memory.
func newWidgetDocument(p *widget.Pagination) (*widgetDocument, error) {
	tokens, err := p.TokenSlice()
	if err != nil {
		return nil, err
	}
	text, err := p.Text()
	if err != nil {
		return nil, err
	}
	cfg := p.Config()
	return &widgetDocument{
		CurrentPage:  cfg.CurrentPage(),
		TotalPages:   cfg.TotalPages(),
		BoundarySize: cfg.BoundarySize(),
		AroundSize:   cfg.AroundSize(),
		Tokens:       tokens,
		Text:         text,
		Collapsed:    p.Collapsed(),
	}, nil
}

// resolveFormat returns flagValue when set, otherwise the configured default.
func resolveFormat(cfg *config.Config, flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if format == "" {
		format = config.FormatText
	}
	if err := config.ValidateOutputFormat(format); err != nil {
		return "", inputError(err)
	}
	return format, nil
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}
