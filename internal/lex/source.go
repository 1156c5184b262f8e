package lex

// SourceMap interns document keys (usually URLs or paths) into small integer
// ids and back. Ids start at 1 so the zero SourceID stays free for default
// spans.
type SourceMap struct {
	ids  map[string]SourceID
	keys map[SourceID]string
	next SourceID
}

func NewSourceMap() *SourceMap {
	return &SourceMap{
		ids:  map[string]SourceID{},
		keys: map[SourceID]string{},
		next: 1,
	}
}

// Intern returns the id for key, allocating one on first use.
func (m *SourceMap) Intern(key string) SourceID {
	if id, ok := m.ids[key]; ok {
		return id
	}
	id := m.next
	m.next++
	m.ids[key] = id
	m.keys[id] = key
	return id
}

// ID returns the id previously allocated for key, if any.
func (m *SourceMap) ID(key string) (SourceID, bool) {
	id, ok := m.ids[key]
	return id, ok
}

// Key returns the key behind id, if any.
func (m *SourceMap) Key(id SourceID) (string, bool) {
	key, ok := m.keys[id]
	return key, ok
}

// Len returns the number of interned documents.
func (m *SourceMap) Len() int {
	return len(m.ids)
}
