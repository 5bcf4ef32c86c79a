package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/pagewidget/internal/config"
	"github.com/rshade/pagewidget/internal/logging"
	"github.com/rshade/pagewidget/internal/widget"
)

// batchRequest is one non-comment line of a batch file.
type batchRequest struct {
	line     int
	input    string
	req      request
	parseErr error
}

// batchEntry is the outcome of one batchRequest.
type batchEntry struct {
	Line   int             `json:"line"             yaml:"line"`
	Input  string          `json:"input"            yaml:"input"`
	Widget *widgetDocument `json:"widget,omitempty" yaml:"widget,omitempty"`
	Error  string          `json:"error,omitempty"  yaml:"error,omitempty"`

	err error
}

// NewBatchCmd creates the batch command that computes one widget per input line.
func NewBatchCmd() *cobra.Command {
	var (
		output    string
		jobs      int
		keepGoing bool
	)

	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Compute widgets for every line of a file",
		Long: `Reads one request per line from FILE, or from standard input when FILE is
omitted or "-". Each line holds "current total [boundary [around]]" separated by
whitespace; blank lines and lines starting with "#" are skipped.

Requests are computed concurrently and written in input order. By default the
first invalid line (by line number) aborts the run without output. With
--keep-going every line is reported and the command fails at the end if any
line was invalid. Each widget is built in memory, so a line whose widget holds
more than a million tokens fails as well.`,
		Example: `  # Compute widgets from a file
  pagewidget batch requests.txt

  # Read from stdin, keep going past invalid lines, JSON output
  printf '10 20 2 2\n1 0 0 0\n' | pagewidget batch --keep-going -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return inputError(fmt.Errorf("--jobs must be >= 1, got %d", jobs))
			}
			return runBatch(cmd, args, output, jobs, keepGoing)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of requests computed concurrently")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "report invalid lines instead of stopping at the first")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string, output string, jobs int, keepGoing bool) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format, err := resolveFormat(cfg, output)
	if err != nil {
		return err
	}

	in, closeInput, err := openBatchInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeInput()

	requests, err := readBatchRequests(in, cfg.Defaults)
	if err != nil {
		return err
	}

	entries, err := computeBatch(ctx, requests, jobs)
	if err != nil {
		return err
	}

	failed := 0
	var firstErr *batchEntry
	for i := range entries {
		e := &entries[i]
		if e.err == nil {
			continue
		}
		if !keepGoing {
			return &ExitError{Code: ExitCode(e.err), Err: fmt.Errorf("line %d: %w", e.Line, e.err)}
		}
		if firstErr == nil {
			firstErr = e
		}
		failed++
	}
	log.Debug().Int("requests", len(entries)).Int("failed", failed).Int("jobs", jobs).Msg("batch computed")

	if err = writeBatch(cmd, format, entries); err != nil {
		return err
	}
	if failed > 0 {
		return &ExitError{
			Code: ExitCode(firstErr.err),
			Err:  fmt.Errorf("%d of %d requests failed", failed, len(entries)),
		}
	}
	return nil
}

func openBatchInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening batch file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// readBatchRequests splits the input into requests. Lines with the wrong
// number of fields become requests that fail when computed.
func readBatchRequests(r io.Reader, defaults config.DefaultsConfig) ([]batchRequest, error) {
	var requests []batchRequest
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		req, err := newRequest(strings.Fields(line), defaults)
		requests = append(requests, batchRequest{line: lineNo, input: line, req: req, parseErr: err})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch input: %w", err)
	}
	return requests, nil
}

// computeBatch evaluates every request with at most jobs running at once.
// Result order matches request order. Only cancellation of ctx fails the batch.
func computeBatch(ctx context.Context, requests []batchRequest, jobs int) ([]batchEntry, error) {
	entries := make([]batchEntry, len(requests))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, br := range requests {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			entries[i] = evaluate(br)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func evaluate(br batchRequest) batchEntry {
	entry := batchEntry{Line: br.line, Input: br.input}
	err := br.parseErr
	if err == nil {
		var p *widget.Pagination
		if p, err = br.req.compute(); err == nil {
			if entry.Widget, err = newWidgetDocument(p); err == nil {
				return entry
			}
		}
	}
	entry.err = err
	entry.Error = err.Error()
	return entry
}

// writeBatch prints successful widgets to stdout and, in text mode, failures
// to stderr. Structured formats carry failures inline.
func writeBatch(cmd *cobra.Command, format string, entries []batchEntry) error {
	if format != config.FormatText {
		if entries == nil {
			entries = []batchEntry{}
		}
		return writeStructured(cmd.OutOrStdout(), format, entries)
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		if e.err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", e.Line, e.err)
			continue
		}
		if _, err := fmt.Fprintln(out, e.Widget.Text); err != nil {
			return err
		}
	}
	return nil
}
