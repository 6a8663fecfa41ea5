package pagespec

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		pageCount int
		want      []int
	}{
		{"single page", "3", 5, []int{3}},
		{"list of pages", "1,3,5", 5, []int{1, 3, 5}},
		{"simple range", "2-4", 5, []int{2, 3, 4}},
		{"mixed list and range", "1,3,5-7,9", 9, []int{1, 3, 5, 6, 7, 9}},
		{"user order preserved", "5,1-3", 5, []int{5, 1, 2, 3}},
		{"duplicates preserved", "1,1,2", 5, []int{1, 1, 2}},
		{"whitespace everywhere", " 1 , 3 - 5 , 7 ", 10, []int{1, 3, 4, 5, 7}},
		{"trailing comma", "1,2,", 5, []int{1, 2}},
		{"repeated commas", "1,,2", 5, []int{1, 2}},
		{"single page range", "4-4", 5, []int{4}},
		{"full document range", "1-5", 5, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec, tt.pageCount)
			if err != nil {
				t.Fatalf("Parse(%q, %d) error = %v", tt.spec, tt.pageCount, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q, %d) = %v, want %v", tt.spec, tt.pageCount, got, tt.want)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	// Parsing the same string twice yields identical output.
	spec := "5,1-3,5"
	first, err := Parse(spec, 5)
	if err != nil {
		t.Fatalf("first Parse error = %v", err)
	}
	second, err := Parse(spec, 5)
	if err != nil {
		t.Fatalf("second Parse error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse not idempotent: %v vs %v", first, second)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		pageCount int
		wantKind  Kind
	}{
		{"empty string", "", 5, EmptySpec},
		{"only commas", ",,,", 5, EmptySpec},
		{"only whitespace", "   ", 5, EmptySpec},
		{"whitespace and commas", " , , ", 5, EmptySpec},
		{"letters", "abc", 5, MalformedItem},
		{"number with letters", "1a", 5, MalformedItem},
		{"double hyphen range", "1-2-3", 5, MalformedItem},
		{"missing range start", "-3", 5, MalformedItem},
		{"missing range end", "3-", 5, MalformedItem},
		{"bare hyphen", "-", 5, MalformedItem},
		{"decimal number", "1.5", 5, MalformedItem},
		{"inverted range", "3-1", 5, InvertedRange},
		{"zero page", "0", 5, OutOfBounds},
		{"page beyond count", "10", 5, OutOfBounds},
		{"range end beyond count", "3-10", 5, OutOfBounds},
		{"valid then malformed", "1,2,junk", 5, MalformedItem},
		{"valid then out of bounds", "1,2,99", 5, OutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec, tt.pageCount)
			if err == nil {
				t.Fatalf("Parse(%q, %d) expected error", tt.spec, tt.pageCount)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error type = %T, want *Error", tt.spec, err)
			}
			if perr.Kind != tt.wantKind {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.spec, perr.Kind, tt.wantKind)
			}
		})
	}
}

func TestParse_OutOfBoundsDetails(t *testing.T) {
	_, err := Parse("10", 5)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if perr.Page != 10 {
		t.Errorf("Page = %d, want 10", perr.Page)
	}
	if perr.Bound != 5 {
		t.Errorf("Bound = %d, want 5", perr.Bound)
	}
}

func TestParse_ErrorCarriesOffendingItem(t *testing.T) {
	_, err := Parse("1, 3-1 ,5", 5)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if perr.Kind != InvertedRange {
		t.Fatalf("kind = %v, want InvertedRange", perr.Kind)
	}
	if perr.Item != "3-1" {
		t.Errorf("Item = %q, want %q", perr.Item, "3-1")
	}
}
