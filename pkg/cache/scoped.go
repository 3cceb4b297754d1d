package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis or Mongo instance without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LadderKey generates a prefixed key for a solved ladder.
func (k *ScopedKeyer) LadderKey(begin, end, dictHash string, opts LadderKeyOpts) string {
	return k.prefix + k.inner.LadderKey(begin, end, dictHash, opts)
}

// GraphKey generates a prefixed key for a level graph.
func (k *ScopedKeyer) GraphKey(begin, end, dictHash string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(begin, end, dictHash, opts)
}
