package widget

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GapText is the rendered form of a gap token.
const GapText = "..."

// Token is a single entry of the widget: a page number or a gap.
//
// The zero value is not a valid token; build tokens with PageToken or use
// GapToken.
type Token struct {
	page uint64
	gap  bool
}

// GapToken marks one or more omitted pages.
//
//nolint:gochecknoglobals // Immutable marker value.
var GapToken = Token{gap: true}

// PageToken returns the token for page n.
func PageToken(n uint64) Token {
	return Token{page: n}
}

// IsGap reports whether t is the gap marker.
func (t Token) IsGap() bool { return t.gap }

// Page returns the page number, or 0 for the gap marker.
func (t Token) Page() uint64 {
	if t.gap {
		return 0
	}
	return t.page
}

// String renders a page in decimal and a gap as "...".
func (t Token) String() string {
	if t.gap {
		return GapText
	}
	return strconv.FormatUint(t.page, 10)
}

// MarshalJSON encodes pages as JSON numbers and gaps as the string "...".
func (t Token) MarshalJSON() ([]byte, error) {
	if t.gap {
		return json.Marshal(GapText)
	}
	return []byte(strconv.FormatUint(t.page, 10)), nil
}

// UnmarshalJSON accepts the encoding produced by MarshalJSON.
func (t *Token) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != GapText {
			return fmt.Errorf("invalid token %q", s)
		}
		*t = GapToken
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid token %s: %w", data, err)
	}
	if n == 0 {
		return fmt.Errorf("invalid page token %d", n)
	}
	*t = PageToken(n)
	return nil
}

// MarshalYAML encodes pages as integers and gaps as the string "...".
func (t Token) MarshalYAML() (interface{}, error) {
	if t.gap {
		return GapText, nil
	}
	return t.page, nil
}

// UnmarshalYAML accepts the encoding produced by MarshalYAML.
func (t *Token) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid token at line %d: expected scalar", node.Line)
	}
	if node.Value == GapText {
		*t = GapToken
		return nil
	}
	n, err := strconv.ParseUint(node.Value, 10, 64)
	if err != nil || n == 0 {
		return fmt.Errorf("invalid token %q at line %d", node.Value, node.Line)
	}
	*t = PageToken(n)
	return nil
}

// PageRange is a contiguous inclusive range of page numbers.
// The zero value is the empty range.
type PageRange struct {
	First uint64 `json:"first" yaml:"first"`
	Last  uint64 `json:"last"  yaml:"last"`
}

// Empty reports whether r holds no pages.
func (r PageRange) Empty() bool {
	return r.First == 0 || r.First > r.Last
}

// Len returns the number of pages in r.
func (r PageRange) Len() uint64 {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

// Contains reports whether page p lies within r.
func (r PageRange) Contains(p uint64) bool {
	return !r.Empty() && p >= r.First && p <= r.Last
}

func (r PageRange) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d, %d]", r.First, r.Last)
}
