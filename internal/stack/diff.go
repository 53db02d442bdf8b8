package stack

import "fmt"

// Insertion places ID at Index of the updated list.
type Insertion struct {
	Index int
	ID    ID
}

// Update turns one rendered identity list into another. Removed IDs are
// taken out first, then insertions are applied in ascending index order.
// Reloaded IDs survive the update but must have their geometry recomputed.
type Update struct {
	Removed  []ID
	Inserted []Insertion
	Reloaded []ID
}

// Empty reports whether applying u changes nothing.
func (u Update) Empty() bool {
	return len(u.Removed) == 0 && len(u.Inserted) == 0 && len(u.Reloaded) == 0
}

// Diff computes the update that turns rendered into current. The longest
// run of surviving identities that keeps its relative order stays in place;
// any other survivor is removed and re-inserted at its new index, so a swap
// of the top two items costs one removal and one insertion.
func Diff(rendered, current []ID) Update {
	pos := make(map[ID]int, len(current))
	for i, id := range current {
		pos[id] = i
	}

	var u Update
	var survivors []ID
	for _, id := range rendered {
		if _, ok := pos[id]; ok {
			survivors = append(survivors, id)
		} else {
			u.Removed = append(u.Removed, id)
		}
	}

	kept := inOrder(survivors, pos)
	for _, id := range survivors {
		if _, ok := kept[id]; !ok {
			u.Removed = append(u.Removed, id)
		}
	}
	for idx, id := range current {
		if _, ok := kept[id]; !ok {
			u.Inserted = append(u.Inserted, Insertion{Index: idx, ID: id})
		}
	}
	return u
}

// inOrder returns the longest subsequence of survivors whose positions in
// current increase.
func inOrder(survivors []ID, pos map[ID]int) map[ID]struct{} {
	// tails[k] is the index in survivors ending the best run of length k+1.
	var tails []int
	prev := make([]int, len(survivors))
	for i, id := range survivors {
		p := pos[id]
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if pos[survivors[tails[mid]]] < p {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		prev[i] = -1
		if lo > 0 {
			prev[i] = tails[lo-1]
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	kept := make(map[ID]struct{}, len(tails))
	if len(tails) == 0 {
		return kept
	}
	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		kept[survivors[i]] = struct{}{}
	}
	return kept
}

// Refresh is Diff plus a reload of every surviving identity, moved ones
// included.
func Refresh(rendered, current []ID) Update {
	u := Diff(rendered, current)
	inCurrent := make(map[ID]struct{}, len(current))
	for _, id := range current {
		inCurrent[id] = struct{}{}
	}
	for _, id := range rendered {
		if _, ok := inCurrent[id]; ok {
			u.Reloaded = append(u.Reloaded, id)
		}
	}
	return u
}

// Apply returns the list produced by applying u to rendered. The input is
// never modified, so a caller can swap the result in as one step. An update
// that does not fit rendered, or that would leave a duplicate identity,
// is rejected.
func (u Update) Apply(rendered []ID) ([]ID, error) {
	removed := make(map[ID]struct{}, len(u.Removed))
	for _, id := range u.Removed {
		removed[id] = struct{}{}
	}

	next := make([]ID, 0, max(0, len(rendered)-len(u.Removed))+len(u.Inserted))
	seen := make(map[ID]struct{}, cap(next))
	for _, id := range rendered {
		if _, ok := removed[id]; ok {
			delete(removed, id)
			continue
		}
		next = append(next, id)
		seen[id] = struct{}{}
	}
	if len(removed) > 0 {
		return nil, fmt.Errorf("apply update: %d removed identities are not rendered", len(removed))
	}

	for _, ins := range u.Inserted {
		if ins.Index < 0 || ins.Index > len(next) {
			return nil, fmt.Errorf("apply update: insertion index %d out of range [0,%d]", ins.Index, len(next))
		}
		if _, dup := seen[ins.ID]; dup {
			return nil, fmt.Errorf("apply update: identity %s already rendered", ins.ID)
		}
		next = append(next, ID{})
		copy(next[ins.Index+1:], next[ins.Index:])
		next[ins.Index] = ins.ID
		seen[ins.ID] = struct{}{}
	}

	for _, id := range u.Reloaded {
		if _, ok := seen[id]; !ok {
			return nil, fmt.Errorf("apply update: reloaded identity %s is not rendered", id)
		}
	}
	return next, nil
}
