package stack

// Store is the ordered sequence of live items. Items are only ever pushed
// on the end, popped from the end, or cleared all at once.
//
// A Store is not safe for concurrent use; it belongs to the UI loop.
type Store struct {
	items []Item
}

// Append pushes a finalized item.
func (s *Store) Append(it Item) {
	s.items = append(s.items, it)
}

// RemoveLast pops the newest item. It reports false on an empty store.
func (s *Store) RemoveLast() (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	last := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = Item{}
	s.items = s.items[:len(s.items)-1]
	return last, true
}

// Clear removes every item.
func (s *Store) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

func (s *Store) Len() int { return len(s.items) }

// Items returns a copy of the items, oldest first.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// IDs returns the item identities in store order.
func (s *Store) IDs() []ID {
	ids := make([]ID, len(s.items))
	for i, it := range s.items {
		ids[i] = it.id
	}
	return ids
}
