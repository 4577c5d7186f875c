package vocab

// Allocator mints vocabulary identifiers for a single tool run. Callers
// construct one explicitly with the seed they trust (zero for a fresh tree,
// a MaxAssignedID scan otherwise); there is no package-level instance.
// Not safe for concurrent use.
type Allocator struct {
	prefix Prefix
	last   int
	known  map[string]ID
}

// NewAllocator returns an allocator whose first allocation yields seed+1.
func NewAllocator(prefix Prefix, seed int) *Allocator {
	return &Allocator{
		prefix: prefix,
		last:   seed,
		known:  make(map[string]ID),
	}
}

// Next allocates a fresh identifier unconditionally. Identifiers are never
// reused within a run and never skip values.
func (a *Allocator) Next() ID {
	a.last++
	return NewID(a.prefix, a.last)
}

// GetOrCreate returns the identifier already minted for term during this
// run, or allocates a fresh one and remembers it. Terms are compared by
// exact string; the namespace is flat across every level of the tree, so a
// category and a leaf term with the same spelling share one identifier.
func (a *Allocator) GetOrCreate(term string) ID {
	if id, ok := a.known[term]; ok {
		return id
	}
	id := a.Next()
	a.known[term] = id
	return id
}

// Known reports the identifier minted for term during this run, if any.
func (a *Allocator) Known(term string) (ID, bool) {
	id, ok := a.known[term]
	return id, ok
}

// Last reports the numeric value of the most recent allocation, or the
// seed when nothing has been allocated yet.
func (a *Allocator) Last() int { return a.last }

// Prefix reports the namespace this allocator mints under.
func (a *Allocator) Prefix() Prefix { return a.prefix }
