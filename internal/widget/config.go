package widget

import (
	"math/big"
	"reflect"
	"strings"
)

// MaxTotalPages is the largest supported page count, 2^63.
const MaxTotalPages uint64 = 1 << 63

//nolint:gochecknoglobals // Read-only bounds used by validation.
var (
	bigOne      = big.NewInt(1)
	bigZero     = big.NewInt(0)
	bigMaxTotal = new(big.Int).SetUint64(MaxTotalPages)
)

// Config is a validated widget configuration. It can only be obtained from
// NewConfig or ParseConfig and never changes afterwards.
type Config struct {
	currentPage  uint64
	totalPages   uint64
	boundarySize uint64
	aroundSize   uint64
}

// CurrentPage returns the 1-based page being displayed.
func (c Config) CurrentPage() uint64 { return c.currentPage }

// TotalPages returns the number of pages in the document.
func (c Config) TotalPages() uint64 { return c.totalPages }

// BoundarySize returns how many pages are always shown at each end.
func (c Config) BoundarySize() uint64 { return c.boundarySize }

// AroundSize returns how many pages are shown on each side of the current page.
func (c Config) AroundSize() uint64 { return c.aroundSize }

// NewConfig validates the four inputs and returns the resulting Config.
//
// Every input must be a Go integer: any value of signed or unsigned integer
// kind, named integer types included, or a *big.Int.
// Booleans, floats, strings and every other kind fail with ErrTypeMismatch
// before any range is checked. Range checks then run in the order total
// pages, boundary size, around size, current page; the first failure is
// returned as a *ValidationError.
func NewConfig(currentPage, totalPages, boundarySize, aroundSize any) (Config, error) {
	raw := [4]any{currentPage, totalPages, boundarySize, aroundSize}
	fields := [4]string{FieldCurrentPage, FieldTotalPages, FieldBoundarySize, FieldAroundSize}

	var ints [4]*big.Int
	for i, v := range raw {
		n, ok := toBigInt(v)
		if !ok {
			return Config{}, newValidationError(ErrTypeMismatch, fields[i], v)
		}
		ints[i] = n
	}
	return validate(ints[0], ints[1], ints[2], ints[3])
}

// ParseConfig is NewConfig for base-10 string inputs. Surrounding whitespace
// is ignored; anything else that is not an integer literal fails with
// ErrTypeMismatch. Magnitudes are compared exactly, so inputs beyond 64 bits
// are reported as range errors rather than overflowing.
func ParseConfig(currentPage, totalPages, boundarySize, aroundSize string) (Config, error) {
	raw := [4]string{currentPage, totalPages, boundarySize, aroundSize}
	fields := [4]string{FieldCurrentPage, FieldTotalPages, FieldBoundarySize, FieldAroundSize}

	var ints [4]*big.Int
	for i, s := range raw {
		n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
		if !ok {
			return Config{}, newValidationError(ErrTypeMismatch, fields[i], s)
		}
		ints[i] = n
	}
	return validate(ints[0], ints[1], ints[2], ints[3])
}

func validate(current, total, boundary, around *big.Int) (Config, error) {
	if total.Cmp(bigOne) < 0 || total.Cmp(bigMaxTotal) > 0 {
		return Config{}, newValidationError(ErrTotalPagesOutOfRange, FieldTotalPages, total)
	}
	if !within(boundary, bigZero, total) {
		return Config{}, newValidationError(ErrBoundarySizeOutOfRange, FieldBoundarySize, boundary)
	}
	if !within(around, bigZero, total) {
		return Config{}, newValidationError(ErrAroundSizeOutOfRange, FieldAroundSize, around)
	}
	if !within(current, bigOne, total) {
		return Config{}, newValidationError(ErrCurrentPageOutOfRange, FieldCurrentPage, current)
	}

	// Every value now lies in [0, 2^63] and fits a uint64.
	return Config{
		currentPage:  current.Uint64(),
		totalPages:   total.Uint64(),
		boundarySize: boundary.Uint64(),
		aroundSize:   around.Uint64(),
	}, nil
}

func within(n, lo, hi *big.Int) bool {
	return n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0
}

// toBigInt accepts every value whose kind is a signed or unsigned integer,
// including named types such as "type PageNum uint64", and *big.Int.
func toBigInt(v any) (*big.Int, bool) {
	if n, ok := v.(*big.Int); ok {
		if n == nil {
			return nil, false
		}
		return new(big.Int).Set(n), true
	}
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), true
	default:
		return nil, false
	}
}
