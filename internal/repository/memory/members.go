package memory

// memberList is an ordered sequence of player IDs with a parallel set,
// so membership checks are O(1) and duplicates are rejected explicitly.
type memberList struct {
	ids []int64
	set map[int64]struct{}
}

func newMemberList() *memberList {
	return &memberList{set: make(map[int64]struct{})}
}

func (m *memberList) Len() int { return len(m.ids) }

func (m *memberList) Has(id int64) bool {
	_, ok := m.set[id]
	return ok
}

// Add appends id unless it is already a member.
func (m *memberList) Add(id int64) bool {
	if m.Has(id) {
		return false
	}
	m.ids = append(m.ids, id)
	m.set[id] = struct{}{}
	return true
}

// Remove drops id and keeps the relative order of the rest.
func (m *memberList) Remove(id int64) bool {
	if !m.Has(id) {
		return false
	}
	delete(m.set, id)
	for i, v := range m.ids {
		if v == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return true
}

// Truncate keeps the first n members and forgets the tail.
func (m *memberList) Truncate(n int) int {
	if n < 0 {
		n = 0
	}
	if len(m.ids) <= n {
		return 0
	}
	dropped := m.ids[n:]
	for _, id := range dropped {
		delete(m.set, id)
	}
	m.ids = m.ids[:n:n]
	return len(dropped)
}

// IDs returns a copy of the ordered members.
func (m *memberList) IDs() []int64 {
	out := make([]int64, len(m.ids))
	copy(out, m.ids)
	return out
}
