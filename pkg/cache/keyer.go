package cache

// LadderKeyOpts holds the search options that change a ladder result.
type LadderKeyOpts struct {
	FoldCase           bool   `json:"fold_case,omitempty"`
	MaxDepth           int    `json:"max_depth,omitempty"`
	AllowUnknownTarget bool   `json:"allow_unknown_target,omitempty"`
	Index              string `json:"index,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LadderKey identifies the result of one query against one dictionary.
	LadderKey(dictHash, origin, target string, opts LadderKeyOpts) string
}

// DefaultKeyer produces keys of the form "ladder:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LadderKey hashes the dictionary hash, both endpoints and the options.
// The index strategy does not change the result and is left out.
func (DefaultKeyer) LadderKey(dictHash, origin, target string, opts LadderKeyOpts) string {
	opts.Index = ""
	return hashKey("ladder", dictHash, origin, target, opts)
}
