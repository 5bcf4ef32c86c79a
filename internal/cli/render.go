package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/pagewidget/internal/config"
	"github.com/rshade/pagewidget/internal/logging"
	"github.com/rshade/pagewidget/internal/widget"
)

// request is one widget request as received, before validation.
type request struct {
	Current  string
	Total    string
	Boundary string
	Around   string
}

// newRequest builds a request from two to four fields, taking missing
// boundary and around sizes from defaults. A wrong field count is an input
// error like any other rejected request.
func newRequest(fields []string, defaults config.DefaultsConfig) (request, error) {
	if len(fields) < 2 || len(fields) > 4 {
		return request{}, inputError(
			fmt.Errorf("expected 2 to 4 values (current total [boundary [around]]), got %d", len(fields)))
	}
	req := request{
		Current:  fields[0],
		Total:    fields[1],
		Boundary: strconv.Itoa(defaults.Boundary),
		Around:   strconv.Itoa(defaults.Around),
	}
	if len(fields) > 2 {
		req.Boundary = fields[2]
	}
	if len(fields) > 3 {
		req.Around = fields[3]
	}
	return req, nil
}

func (r request) compute() (*widget.Pagination, error) {
	return widget.Parse(r.Current, r.Total, r.Boundary, r.Around)
}

// NewRenderCmd creates the render command that computes a single widget.
func NewRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render CURRENT TOTAL [BOUNDARY [AROUND]]",
		Short: "Compute the navigation widget for one page",
		Long: `Computes the navigation widget for CURRENT out of TOTAL pages.

BOUNDARY pages are always shown at both ends and AROUND pages on each side of
the current page. Omitted BOUNDARY or AROUND values come from the "defaults"
section of the configuration file.

Text output is the widget on a single line. JSON and YAML output include the
inputs and the token list, where gaps are encoded as "...".`,
		Example: `  # Prints "1 2 ... 8 9 10 11 12 ... 19 20"
  pagewidget render 10 20 2 2

  # Prints "... 10 ..."
  pagewidget render 10 9223372036854775808 0 0

  # YAML output
  pagewidget render 4 5 1 0 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml (default from config)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, output string) error {
	log := logging.FromContext(cmd.Context())
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format, err := resolveFormat(cfg, output)
	if err != nil {
		return err
	}

	req, err := newRequest(args, cfg.Defaults)
	if err != nil {
		return err
	}

	p, err := req.compute()
	if err != nil {
		log.Debug().Err(err).Strs("args", args).Msg("request rejected")
		return inputError(err)
	}
	log.Debug().
		Uint64("tokens", p.TokenCount()).
		Int("gaps", p.GapCount()).
		Bool("collapsed", p.Collapsed()).
		Msg("widget computed")

	out := cmd.OutOrStdout()
	if format == config.FormatText {
		if _, err = p.WriteTo(out); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	}

	doc, err := newWidgetDocument(p)
	if err != nil {
		return err
	}
	return writeStructured(out, format, doc)
}
