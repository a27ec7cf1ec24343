package resume

import "sort"

// Results is the per-run result mapping. Records are keyed by reference and
// iteration keeps the order resumes were fetched in, which also breaks
// ranking ties.
type Results struct {
	order []string
	byRef map[string]*Record
}

func NewResults() *Results {
	return &Results{byRef: make(map[string]*Record)}
}

// Add inserts a record under its reference. Re-adding a reference replaces
// the record without disturbing the original position.
func (r *Results) Add(ref string, rec *Record) {
	if _, seen := r.byRef[ref]; !seen {
		r.order = append(r.order, ref)
	}
	r.byRef[ref] = rec
}

func (r *Results) Get(ref string) (*Record, bool) {
	rec, ok := r.byRef[ref]
	return rec, ok
}

func (r *Results) Len() int {
	return len(r.order)
}

// Top returns up to max records sorted by points descending. The sort is
// stable over fetch order, so the earliest fetched record wins a tie. When
// max covers the whole set, everything is returned; a non-positive max
// returns nothing.
func (r *Results) Top(max int) []Ranked {
	if max <= 0 {
		return nil
	}
	ranked := make([]Ranked, 0, len(r.order))
	for _, ref := range r.order {
		ranked = append(ranked, Ranked{Ref: ref, Record: r.byRef[ref]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Record.Points > ranked[j].Record.Points
	})
	if max >= len(ranked) {
		return ranked
	}
	return ranked[:max]
}
