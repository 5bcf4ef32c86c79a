package widget_test

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagewidget/internal/widget"
)

// referenceWidget marks every kept page of 1..total and replaces each run of
// unkept pages with a single gap.
func referenceWidget(current, total, boundary, around int) string {
	var out []string
	inGap := false
	for p := 1; p <= total; p++ {
		kept := p <= boundary || p > total-boundary || (p >= current-around && p <= current+around)
		switch {
		case kept:
			out = append(out, strconv.Itoa(p))
			inGap = false
		case !inGap:
			out = append(out, widget.GapText)
			inGap = true
		}
	}
	return strings.Join(out, " ")
}

// forEachConfig runs fn for every valid configuration with up to maxTotal pages.
func forEachConfig(t *testing.T, maxTotal int, fn func(current, total, boundary, around int, p *widget.Pagination)) {
	t.Helper()
	for total := 1; total <= maxTotal; total++ {
		for boundary := 0; boundary <= total; boundary++ {
			for around := 0; around <= total; around++ {
				for current := 1; current <= total; current++ {
					p, err := widget.New(current, total, boundary, around)
					require.NoError(t, err)
					fn(current, total, boundary, around, p)
				}
			}
		}
	}
}

func TestCompute_MatchesReference(t *testing.T) {
	forEachConfig(t, 18, func(current, total, boundary, around int, p *widget.Pagination) {
		want := referenceWidget(current, total, boundary, around)
		if p.String() != want {
			t.Fatalf("New(%d, %d, %d, %d) = %q, want %q", current, total, boundary, around, p.String(), want)
		}
	})
}

func TestCompute_Properties(t *testing.T) {
	forEachConfig(t, 14, func(current, total, boundary, around int, p *widget.Pagination) {
		tokens := slices.Collect(p.Tokens())
		require.Equal(t, uint64(len(tokens)), p.TokenCount())
		require.NotEmpty(t, tokens)

		var pages []uint64
		var seenCurrent bool
		for i, tok := range tokens {
			if tok.IsGap() {
				if i > 0 && tokens[i-1].IsGap() {
					t.Fatalf("adjacent gaps in %q", p.String())
				}
				continue
			}
			if len(pages) > 0 {
				prev := pages[len(pages)-1]
				if tok.Page() <= prev {
					t.Fatalf("pages not strictly ascending in %q", p.String())
				}
				// A gap separates pages exactly when at least one page is missing.
				gapped := i > 0 && tokens[i-1].IsGap()
				if gapped != (tok.Page() > prev+1) {
					t.Fatalf("gap placement wrong between %d and %d in %q", prev, tok.Page(), p.String())
				}
			}
			if tok.Page() == uint64(current) {
				seenCurrent = true
			}
			pages = append(pages, tok.Page())
		}

		require.NotEmpty(t, pages)
		assert.True(t, seenCurrent, "current page %d missing from %q", current, p.String())
		assert.GreaterOrEqual(t, pages[0], uint64(1))
		assert.LessOrEqual(t, pages[len(pages)-1], uint64(total))

		assert.Equal(t, pages[0] > 1, tokens[0].IsGap(), "leading gap in %q", p.String())
		assert.Equal(t, pages[len(pages)-1] < uint64(total), tokens[len(tokens)-1].IsGap(),
			"trailing gap in %q", p.String())

		if boundary*2 >= total {
			assert.True(t, p.Collapsed(), "expected full listing for %q", p.String())
		}
		assert.Equal(t, p.Collapsed(), p.GapCount() == 0)
	})
}
