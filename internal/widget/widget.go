package widget

import (
	"bufio"
	"cmp"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// MaxTokens is the largest widget TokenSlice and Text will build. Larger
// widgets are only available through Tokens and WriteTo.
const MaxTokens = 1 << 20

// Pagination is the computed widget for one Config. Only the merged runs are
// stored; tokens and text are produced from them on demand.
type Pagination struct {
	cfg    Config
	left   PageRange
	right  PageRange
	around PageRange
	runs   []PageRange
}

// New validates the inputs with NewConfig and computes the widget.
func New(currentPage, totalPages, boundarySize, aroundSize any) (*Pagination, error) {
	cfg, err := NewConfig(currentPage, totalPages, boundarySize, aroundSize)
	if err != nil {
		return nil, err
	}
	return Compute(cfg), nil
}

// Parse validates string inputs with ParseConfig and computes the widget.
func Parse(currentPage, totalPages, boundarySize, aroundSize string) (*Pagination, error) {
	cfg, err := ParseConfig(currentPage, totalPages, boundarySize, aroundSize)
	if err != nil {
		return nil, err
	}
	return Compute(cfg), nil
}

// Compute derives the boundary and around ranges of cfg and merges them.
// The cost is constant: at most three runs are kept whatever the sizes.
func Compute(cfg Config) *Pagination {
	p := &Pagination{
		cfg:    cfg,
		left:   leftBoundary(cfg),
		right:  rightBoundary(cfg),
		around: aroundWindow(cfg),
	}
	p.runs = mergeRanges(p.left, p.around, p.right)
	return p
}

// aroundWindow clips [current-around, current+around] to [1, total] without
// forming either sum, which may leave the uint64 range.
func aroundWindow(cfg Config) PageRange {
	c, a, t := cfg.currentPage, cfg.aroundSize, cfg.totalPages

	first := uint64(1)
	if a < c {
		first = c - a
	}
	last := t
	if a < t-c {
		last = c + a
	}
	return PageRange{First: first, Last: last}
}

func leftBoundary(cfg Config) PageRange {
	if cfg.boundarySize == 0 {
		return PageRange{}
	}
	return PageRange{First: 1, Last: min(cfg.boundarySize, cfg.totalPages)}
}

func rightBoundary(cfg Config) PageRange {
	if cfg.boundarySize == 0 {
		return PageRange{}
	}
	first := uint64(1)
	if cfg.boundarySize < cfg.totalPages {
		first = cfg.totalPages - cfg.boundarySize + 1
	}
	return PageRange{First: first, Last: cfg.totalPages}
}

// mergeRanges sorts the non-empty ranges and joins those that overlap or touch.
// Consecutive results are separated by at least one missing page.
func mergeRanges(ranges ...PageRange) []PageRange {
	kept := make([]PageRange, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			kept = append(kept, r)
		}
	}
	slices.SortFunc(kept, func(a, b PageRange) int {
		return cmp.Compare(a.First, b.First)
	})

	merged := make([]PageRange, 0, len(kept))
	for _, r := range kept {
		if n := len(merged); n > 0 && r.First <= merged[n-1].Last+1 {
			merged[n-1].Last = max(merged[n-1].Last, r.Last)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Config returns the validated inputs.
func (p *Pagination) Config() Config { return p.cfg }

// LeftBoundary returns the first BoundarySize pages, or the empty range when
// BoundarySize is zero.
func (p *Pagination) LeftBoundary() PageRange { return p.left }

// RightBoundary returns the last BoundarySize pages, or the empty range when
// BoundarySize is zero.
func (p *Pagination) RightBoundary() PageRange { return p.right }

// Around returns the window around the current page, clipped to the document.
// With AroundSize zero it holds only the current page.
func (p *Pagination) Around() PageRange { return p.around }

// Runs returns the merged kept ranges in ascending order.
func (p *Pagination) Runs() []PageRange { return slices.Clone(p.runs) }

// Tokens yields the token sequence in order. It works for widgets of any
// size, including ones listing close to 2^63 pages.
func (p *Pagination) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if p.leadingGap() && !yield(GapToken) {
			return
		}
		for i, r := range p.runs {
			if i > 0 && !yield(GapToken) {
				return
			}
			for page := r.First; ; page++ {
				if !yield(PageToken(page)) {
					return
				}
				if page == r.Last {
					break
				}
			}
		}
		if p.trailingGap() {
			yield(GapToken)
		}
	}
}

// TokenCount returns the length of the token sequence. It never exceeds
// MaxTotalPages plus the gap count, so it always fits a uint64.
func (p *Pagination) TokenCount() uint64 {
	n := uint64(p.GapCount())
	for _, r := range p.runs {
		n += r.Len()
	}
	return n
}

// TokenSlice returns the token sequence as a new slice, or ErrTooManyTokens
// when it holds more than MaxTokens tokens.
func (p *Pagination) TokenSlice() ([]Token, error) {
	n := p.TokenCount()
	if n > MaxTokens {
		return nil, tooManyTokens(n)
	}
	return slices.AppendSeq(make([]Token, 0, n), p.Tokens()), nil
}

// Text returns the tokens joined by single spaces, or ErrTooManyTokens when
// the widget holds more than MaxTokens tokens.
func (p *Pagination) Text() (string, error) {
	n := p.TokenCount()
	if n > MaxTokens {
		return "", tooManyTokens(n)
	}
	var sb strings.Builder
	_, _ = p.WriteTo(&sb)
	return sb.String(), nil
}

// WriteTo streams the joined text to w without building it in memory.
func (p *Pagination) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	var buf [20]byte
	first := true
	for t := range p.Tokens() {
		if !first {
			if err := bw.WriteByte(' '); err != nil {
				return written, err
			}
			written++
		}
		first = false

		var n int
		var err error
		if t.gap {
			n, err = bw.WriteString(GapText)
		} else {
			n, err = bw.Write(strconv.AppendUint(buf[:0], t.page, 10))
		}
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// Collapsed reports whether the kept ranges cover every page, in which case
// the widget is the full listing without gaps.
func (p *Pagination) Collapsed() bool {
	return len(p.runs) == 1 && p.runs[0].First == 1 && p.runs[0].Last == p.cfg.totalPages
}

// GapCount returns the number of gap tokens.
func (p *Pagination) GapCount() int {
	if len(p.runs) == 0 {
		return 0
	}
	n := len(p.runs) - 1
	if p.leadingGap() {
		n++
	}
	if p.trailingGap() {
		n++
	}
	return n
}

func (p *Pagination) leadingGap() bool {
	return len(p.runs) > 0 && p.runs[0].First > 1
}

func (p *Pagination) trailingGap() bool {
	return len(p.runs) > 0 && p.runs[len(p.runs)-1].Last < p.cfg.totalPages
}

// String returns Text, or the empty string for a widget over MaxTokens tokens.
func (p *Pagination) String() string {
	s, _ := p.Text()
	return s
}
