package docops

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildPlan_Merge(t *testing.T) {
	plan, err := BuildPlan(OpMerge, nil, []int{2, 3})
	if err != nil {
		t.Fatalf("BuildPlan error = %v", err)
	}

	want := Plan{
		{Source: 0, Page: 1}, {Source: 0, Page: 2},
		{Source: 1, Page: 1}, {Source: 1, Page: 2}, {Source: 1, Page: 3},
	}
	if !reflect.DeepEqual(plan, want) {
		t.Errorf("plan = %v, want %v", plan, want)
	}
}

func TestBuildPlan_MergeTotalPages(t *testing.T) {
	counts := []int{4, 1, 7}
	plan, err := BuildPlan(OpMerge, nil, counts)
	if err != nil {
		t.Fatalf("BuildPlan error = %v", err)
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if len(plan) != total {
		t.Errorf("plan length = %d, want %d", len(plan), total)
	}
}

func TestBuildPlan_MergeTooFewSources(t *testing.T) {
	for _, counts := range [][]int{nil, {5}} {
		_, err := BuildPlan(OpMerge, nil, counts)
		if !errors.Is(err, ErrInsufficientInputs) {
			t.Errorf("BuildPlan(merge, %v) error = %v, want ErrInsufficientInputs", counts, err)
		}
	}
}

func TestBuildPlan_Extract(t *testing.T) {
	tests := []struct {
		name  string
		pages []int
		want  Plan
	}{
		{"in order", []int{1, 3}, Plan{{0, 1}, {0, 3}}},
		{"user order preserved", []int{5, 1, 2, 3}, Plan{{0, 5}, {0, 1}, {0, 2}, {0, 3}}},
		{"duplicates preserved", []int{1, 1, 2}, Plan{{0, 1}, {0, 1}, {0, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := BuildPlan(OpExtract, tt.pages, []int{5})
			if err != nil {
				t.Fatalf("BuildPlan error = %v", err)
			}
			if !reflect.DeepEqual(plan, tt.want) {
				t.Errorf("plan = %v, want %v", plan, tt.want)
			}
		})
	}
}

func TestBuildPlan_ExtractEmptySelection(t *testing.T) {
	_, err := BuildPlan(OpExtract, nil, []int{5})
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("error = %v, want ErrEmptyResult", err)
	}
}

func TestBuildPlan_Delete(t *testing.T) {
	tests := []struct {
		name  string
		pages []int
		count int
		want  Plan
	}{
		{"drop middle", []int{2, 3}, 5, Plan{{0, 1}, {0, 4}, {0, 5}}},
		{"drop first", []int{1}, 3, Plan{{0, 2}, {0, 3}}},
		{"duplicates collapse", []int{2, 2, 2}, 3, Plan{{0, 1}, {0, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := BuildPlan(OpDelete, tt.pages, []int{tt.count})
			if err != nil {
				t.Fatalf("BuildPlan error = %v", err)
			}
			if !reflect.DeepEqual(plan, tt.want) {
				t.Errorf("plan = %v, want %v", plan, tt.want)
			}
		})
	}
}

func TestBuildPlan_DeleteComplementSize(t *testing.T) {
	// Output page count is always P - |D| for a selected set D.
	const pageCount = 8
	selected := []int{1, 4, 4, 7}
	distinct := map[int]bool{}
	for _, p := range selected {
		distinct[p] = true
	}

	plan, err := BuildPlan(OpDelete, selected, []int{pageCount})
	if err != nil {
		t.Fatalf("BuildPlan error = %v", err)
	}
	if got, want := len(plan), pageCount-len(distinct); got != want {
		t.Errorf("plan length = %d, want %d", got, want)
	}
}

func TestBuildPlan_DeleteAllPages(t *testing.T) {
	_, err := BuildPlan(OpDelete, []int{1, 2, 3}, []int{3})
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("error = %v, want ErrEmptyResult", err)
	}
}

func TestBuildPlan_SingleSourceOps(t *testing.T) {
	for _, op := range []Operation{OpDelete, OpExtract} {
		_, err := BuildPlan(op, []int{1}, []int{3, 3})
		if !errors.Is(err, ErrInsufficientInputs) {
			t.Errorf("BuildPlan(%s, two sources) error = %v, want ErrInsufficientInputs", op, err)
		}
	}
}

func TestBuildPlan_UnknownOperation(t *testing.T) {
	if _, err := BuildPlan(Operation("rotate"), nil, []int{1}); err == nil {
		t.Error("expected error for unknown operation")
	}
}
