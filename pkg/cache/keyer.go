package cache

// KeyVersion is bumped whenever rendered output changes for the same
// input, which invalidates every older entry at once.
const KeyVersion = "v1"

// ArtifactKeyOpts lists everything besides the input text that changes a
// rendered artifact.
type ArtifactKeyOpts struct {
	Format     string            `json:"format"`
	CellSize   float64           `json:"cell_size"`
	Padding    float64           `json:"padding"`
	OriginX    float64           `json:"origin_x"`
	OriginY    float64           `json:"origin_y"`
	GridStroke string            `json:"grid_stroke"`
	GridWidth  float64           `json:"grid_width"`
	Background string            `json:"background"`
	Title      *string           `json:"title,omitempty"`
	NoGrid     bool              `json:"no_grid,omitempty"`
	CellIDs    bool              `json:"cell_ids,omitempty"`
	Tokens     map[string]string `json:"tokens,omitempty"`
	Styles     map[string]string `json:"styles,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "gridgen:<version>:artifact:<hash>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey hashes the input hash together with every option.
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("gridgen:"+KeyVersion+":artifact", inputHash, opts)
}

// PrefixKeyer namespaces another keyer's keys, e.g. to keep the server's
// entries apart from the CLI's in a shared Redis.
type PrefixKeyer struct {
	inner  Keyer
	prefix string
}

// NewPrefixKeyer wraps inner (DefaultKeyer when nil) with prefix.
func NewPrefixKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &PrefixKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey returns the prefixed inner key.
func (k *PrefixKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, opts)
}
