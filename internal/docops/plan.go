package docops

import "fmt"

// BuildPlan computes the page plan for an operation.
//
// counts holds the page count of each source document in input order. pages
// is the parsed page specification for delete/extract (ignored for merge),
// in user order with duplicates preserved.
//
//   - merge: the full page range of every source, sources in input order.
//   - extract: the parsed sequence as-is, so the user controls output order
//     and may repeat pages.
//   - delete: the source's pages in ascending order minus the parsed set.
func BuildPlan(op Operation, pages []int, counts []int) (Plan, error) {
	switch op {
	case OpMerge:
		return buildMergePlan(counts)
	case OpExtract:
		return buildExtractPlan(pages, counts)
	case OpDelete:
		return buildDeletePlan(pages, counts)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

func buildMergePlan(counts []int) (Plan, error) {
	if len(counts) < 2 {
		return nil, fmt.Errorf("%w: merge requires at least 2 documents, got %d",
			ErrInsufficientInputs, len(counts))
	}

	var plan Plan
	for src, count := range counts {
		for page := 1; page <= count; page++ {
			plan = append(plan, PageRef{Source: src, Page: page})
		}
	}
	if len(plan) == 0 {
		return nil, ErrEmptyResult
	}
	return plan, nil
}

func buildExtractPlan(pages []int, counts []int) (Plan, error) {
	if len(counts) != 1 {
		return nil, fmt.Errorf("%w: extract requires exactly 1 document, got %d",
			ErrInsufficientInputs, len(counts))
	}
	if len(pages) == 0 {
		return nil, ErrEmptyResult
	}

	plan := make(Plan, len(pages))
	for i, page := range pages {
		plan[i] = PageRef{Source: 0, Page: page}
	}
	return plan, nil
}

func buildDeletePlan(pages []int, counts []int) (Plan, error) {
	if len(counts) != 1 {
		return nil, fmt.Errorf("%w: delete requires exactly 1 document, got %d",
			ErrInsufficientInputs, len(counts))
	}

	deleted := make(map[int]bool, len(pages))
	for _, page := range pages {
		deleted[page] = true
	}

	var plan Plan
	for page := 1; page <= counts[0]; page++ {
		if !deleted[page] {
			plan = append(plan, PageRef{Source: 0, Page: page})
		}
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("%w: cannot delete every page", ErrEmptyResult)
	}
	return plan, nil
}
