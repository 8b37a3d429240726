package copier

// ProcessedSet tracks resolved absolute destination paths already copied to
// during the current run. It is created empty when the emit hook is installed
// and lives exactly as long as the wrapped emit closure; repeated emit calls
// on the same program reuse it, so re-emitting does not re-copy.
//
// Only the single synchronous copy path touches it, so it needs no locking.
type ProcessedSet struct {
	seen map[string]struct{}
}

// NewProcessedSet creates an empty set
func NewProcessedSet() *ProcessedSet {
	return &ProcessedSet{seen: make(map[string]struct{})}
}

// Has reports whether the resolved destination was already copied to
func (s *ProcessedSet) Has(resolvedDest string) bool {
	_, ok := s.seen[resolvedDest]
	return ok
}

// Add records a resolved destination as copied to
func (s *ProcessedSet) Add(resolvedDest string) {
	s.seen[resolvedDest] = struct{}{}
}

// Len returns the number of recorded destinations
func (s *ProcessedSet) Len() int {
	return len(s.seen)
}
