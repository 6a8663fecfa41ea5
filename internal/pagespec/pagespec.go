// Package pagespec parses user-supplied page specification strings like
// "1,3,5-7" into concrete 1-based page numbers.
package pagespec

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a page specification failure.
type Kind int

const (
	// EmptySpec means the specification had no usable items after trimming.
	EmptySpec Kind = iota
	// MalformedItem means an item matched neither the single-page nor the
	// range grammar.
	MalformedItem
	// InvertedRange means a range's start was greater than its end.
	InvertedRange
	// OutOfBounds means a page number fell outside [1, pageCount].
	OutOfBounds
)

// String returns the kind name for error messages and logging.
func (k Kind) String() string {
	switch k {
	case EmptySpec:
		return "empty_spec"
	case MalformedItem:
		return "malformed_item"
	case InvertedRange:
		return "inverted_range"
	case OutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Error describes why a specification string was rejected.
// Item holds the raw offending substring for user-facing messages.
type Error struct {
	Kind  Kind
	Item  string // offending item, as written by the user
	Page  int    // offending page number (OutOfBounds only)
	Bound int    // valid upper bound (OutOfBounds only)
}

func (e *Error) Error() string {
	switch e.Kind {
	case EmptySpec:
		return "page specification is empty"
	case MalformedItem:
		return fmt.Sprintf("invalid page specification item %q", e.Item)
	case InvertedRange:
		return fmt.Sprintf("range start cannot be greater than end in %q", e.Item)
	case OutOfBounds:
		return fmt.Sprintf("page %d is out of range (document has %d pages)", e.Page, e.Bound)
	default:
		return fmt.Sprintf("invalid page specification %q", e.Item)
	}
}

// Parse turns a specification string into an ordered sequence of 1-based
// page numbers validated against pageCount.
//
// The spec is a comma-separated list of items; each item is a single page
// number or an inclusive range "N-M". Whitespace around items, numbers and
// the hyphen is tolerated, and empty items from repeated or trailing commas
// are dropped. Anything else fails the whole spec.
//
// The result preserves the order the user wrote, including duplicates and
// reverse references: "5,1-3" yields [5 1 2 3]. Deduplication and ordering
// policy belongs to the caller, which differs per operation.
func Parse(spec string, pageCount int) ([]int, error) {
	var pages []int

	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		if strings.Contains(item, "-") {
			expanded, err := parseRange(item, pageCount)
			if err != nil {
				return nil, err
			}
			pages = append(pages, expanded...)
			continue
		}

		n, err := parseNumber(item, item, pageCount)
		if err != nil {
			return nil, err
		}
		pages = append(pages, n)
	}

	if len(pages) == 0 {
		return nil, &Error{Kind: EmptySpec, Item: spec}
	}
	return pages, nil
}

// parseRange expands an "N-M" item into individual pages in ascending order.
func parseRange(item string, pageCount int) ([]int, error) {
	parts := strings.Split(item, "-")
	if len(parts) != 2 {
		return nil, &Error{Kind: MalformedItem, Item: item}
	}

	start, err := parseNumber(parts[0], item, pageCount)
	if err != nil {
		return nil, err
	}
	end, err := parseNumber(parts[1], item, pageCount)
	if err != nil {
		return nil, err
	}

	if start > end {
		return nil, &Error{Kind: InvertedRange, Item: item}
	}

	expanded := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		expanded = append(expanded, n)
	}
	return expanded, nil
}

// parseNumber parses one page number and checks it against [1, pageCount].
// item is the full item the number appeared in, used for error reporting.
func parseNumber(s, item string, pageCount int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &Error{Kind: MalformedItem, Item: item}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &Error{Kind: MalformedItem, Item: item}
	}
	if n < 1 || n > pageCount {
		return 0, &Error{Kind: OutOfBounds, Item: item, Page: n, Bound: pageCount}
	}
	return n, nil
}
