// Package widget computes the page-number navigation control shown under a
// paginated listing.
//
// Given the current page, the total page count and two visibility radii, the
// package derives three contiguous page ranges:
//   - the left boundary: the first BoundarySize pages
//   - the right boundary: the last BoundarySize pages
//   - the around window: up to AroundSize pages on each side of the current page
//
// The ranges are merged in ascending order and every run of omitted pages is
// collapsed into a single gap token, rendered as "...". When the merged ranges
// cover the whole document the result is the full listing with no gaps.
//
// A Pagination stores only the merged runs. Tokens iterates over the tokens
// and WriteTo streams the text for widgets of any size; TokenSlice and Text
// build them in memory up to MaxTokens.
//
// Computation is pure: a Pagination never changes after Compute returns and
// values can be shared freely between goroutines.
package widget
