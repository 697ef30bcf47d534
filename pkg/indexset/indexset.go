// Package indexset provides an indexed membership set: per-group unordered
// collections with O(1) insert, swap-remove, membership, count, and
// positional access. The ledger instantiates it for user token holdings,
// media completers, and media group members.
package indexset

// memberKey addresses one member within one group in the index map.
type memberKey[G, M comparable] struct {
	group  G
	member M
}

// Set maintains, per group key, a backing sequence of members plus a
// reverse index recording each member's 1-based position. A zero (or
// absent) index entry means "not a member"; the 1-based offset exists so
// that zero can carry that meaning. Removal swaps the last element into the
// vacated slot, so relative order of remaining members is not preserved and
// callers must not depend on it.
type Set[G, M comparable] struct {
	members map[G][]M
	index   map[memberKey[G, M]]int
}

// New returns an empty Set.
func New[G, M comparable]() *Set[G, M] {
	return &Set[G, M]{
		members: make(map[G][]M),
		index:   make(map[memberKey[G, M]]int),
	}
}

// Add inserts member into group. Reports whether the member was inserted;
// adding a present member is a no-op returning false.
func (s *Set[G, M]) Add(group G, member M) bool {
	key := memberKey[G, M]{group, member}
	if s.index[key] != 0 {
		return false
	}
	s.members[group] = append(s.members[group], member)
	s.index[key] = len(s.members[group])
	return true
}

// Remove deletes member from group in O(1) by overwriting its slot with the
// sequence's last element. Reports whether the member was removed; removing
// an absent member is a no-op returning false.
func (s *Set[G, M]) Remove(group G, member M) bool {
	key := memberKey[G, M]{group, member}
	pos := s.index[key]
	if pos == 0 {
		return false
	}

	seq := s.members[group]
	idx := pos - 1
	last := len(seq) - 1
	if idx != last {
		moved := seq[last]
		seq[idx] = moved
		s.index[memberKey[G, M]{group, moved}] = idx + 1
	}
	seq = seq[:last]
	delete(s.index, key)

	if len(seq) == 0 {
		delete(s.members, group)
	} else {
		s.members[group] = seq
	}
	return true
}

// Contains reports whether member is present in group.
func (s *Set[G, M]) Contains(group G, member M) bool {
	return s.index[memberKey[G, M]{group, member}] != 0
}

// Count returns the number of members in group; 0 for an unseen group.
func (s *Set[G, M]) Count(group G) int {
	return len(s.members[group])
}

// At returns the member at 0-based position pos within group. The second
// return is false when pos is out of range. Positions are stable only until
// the next Remove on the same group.
func (s *Set[G, M]) At(group G, pos int) (M, bool) {
	seq := s.members[group]
	if pos < 0 || pos >= len(seq) {
		var zero M
		return zero, false
	}
	return seq[pos], true
}

// Members returns a copy of group's backing sequence. The order is an
// artifact of insertions and swap-removals, not a caller-visible contract.
func (s *Set[G, M]) Members(group G) []M {
	seq := s.members[group]
	if len(seq) == 0 {
		return nil
	}
	out := make([]M, len(seq))
	copy(out, seq)
	return out
}

// Groups returns every group key with at least one member.
func (s *Set[G, M]) Groups() []G {
	out := make([]G, 0, len(s.members))
	for g := range s.members {
		out = append(out, g)
	}
	return out
}

// Load replaces group's contents with the given sequence and rebuilds the
// reverse index from positions. Used to hydrate a set from persisted state;
// the sequence must not contain duplicates.
func (s *Set[G, M]) Load(group G, seq []M) {
	for _, m := range s.members[group] {
		delete(s.index, memberKey[G, M]{group, m})
	}
	delete(s.members, group)

	if len(seq) == 0 {
		return
	}
	copied := make([]M, len(seq))
	copy(copied, seq)
	s.members[group] = copied
	for i, m := range copied {
		s.index[memberKey[G, M]{group, m}] = i + 1
	}
}
