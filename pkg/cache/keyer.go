package cache

import "time"

// Keyer derives cache keys. Implementations must return the same key for
// queries that produce the same result.
type Keyer interface {
	// LadderKey keys a solved ladder by its endpoints, the dictionary
	// fingerprint and the search limits.
	LadderKey(begin, end, dictHash string, opts LadderKeyOpts) string
	// GraphKey keys a rendered level graph.
	GraphKey(begin, end, dictHash string, opts GraphKeyOpts) string
}

// LadderKeyOpts holds the search limits that affect a result.
type LadderKeyOpts struct {
	MaxSteps int `json:"max_steps"`
	MaxPaths int `json:"max_paths"`
}

// GraphKeyOpts holds the export options that affect a level graph.
type GraphKeyOpts struct {
	MaxSteps     int    `json:"max_steps"`
	ShortestOnly bool   `json:"shortest_only"`
	Format       string `json:"format"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LadderKey returns "ladder:<hash>".
func (DefaultKeyer) LadderKey(begin, end, dictHash string, opts LadderKeyOpts) string {
	return hashKey("ladder", begin, end, dictHash, opts)
}

// GraphKey returns "graph:<hash>".
func (DefaultKeyer) GraphKey(begin, end, dictHash string, opts GraphKeyOpts) string {
	return hashKey("graph", begin, end, dictHash, opts)
}

// Default time-to-live per entry type.
const (
	TTLLadder = 7 * 24 * time.Hour
	TTLGraph  = 7 * 24 * time.Hour
)
