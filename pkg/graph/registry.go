package graph

// registry maps labels to node identities in first-seen order.
// Identities are dense: the i-th distinct label gets NodeID(i).
type registry struct {
	ids    map[string]NodeID
	labels []string
}

func newRegistry(capacity int) *registry {
	return &registry{ids: make(map[string]NodeID, capacity)}
}

// intern returns the identity for label, assigning the next sequential one
// when the label has not been seen. The second result reports whether a new
// identity was assigned.
func (r *registry) intern(label string) (NodeID, bool) {
	if id, ok := r.ids[label]; ok {
		return id, false
	}
	id := NodeID(len(r.labels))
	r.ids[label] = id
	r.labels = append(r.labels, label)
	return id, true
}

func (r *registry) resolve(label string) (NodeID, bool) {
	id, ok := r.ids[label]
	return id, ok
}
