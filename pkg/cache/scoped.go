package cache

// ScopedKeyer wraps a Keyer with a prefix, so that several dictionaries or
// users can share one backend without their keys colliding.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "team-a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// If inner is nil, a DefaultKeyer is used.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LadderKey generates a prefixed ladder key.
func (k *ScopedKeyer) LadderKey(dictHash, origin, target string, opts LadderKeyOpts) string {
	return k.prefix + k.inner.LadderKey(dictHash, origin, target, opts)
}
