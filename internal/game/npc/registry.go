package npc

// Registry constructs NPC instances by identifier.
type Registry struct {
	outboxCap int
}

// NewRegistry creates a Registry whose instances hold at most outboxCap queued responses.
//
// Precondition: outboxCap must be > 0.
func NewRegistry(outboxCap int) *Registry {
	if outboxCap <= 0 {
		panic("npc.NewRegistry: outboxCap must be > 0")
	}
	return &Registry{outboxCap: outboxCap}
}

// New returns a fresh instance for id.
//
// Postcondition: Returns (nil, false) if id names no NPC.
func (r *Registry) New(id string) (*Instance, bool) {
	kind, ok := KindFromID(id)
	if !ok {
		return nil, false
	}
	return NewInstance(kind, r.outboxCap), true
}

// IDs returns the identifiers of every known NPC.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		ids = append(ids, k.ID())
	}
	return ids
}
