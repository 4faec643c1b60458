package policy

import (
	"fmt"
	"time"

	"github.com/hupe1980/attune/internal/jsonfile"
)

// SnapshotVersion is bumped whenever the serialized layout changes.
const SnapshotVersion = 1

// Snapshot is the serialized policy plus the index↔action mapping it was
// trained against. Trainer and predictor share this single file, so their
// vocabularies can never drift apart.
type Snapshot struct {
	Version   int         `json:"version"`
	Dim       int         `json:"dim"`
	Actions   []string    `json:"actions"`
	Weights   [][]float64 `json:"weights"`
	Bias      []float64   `json:"bias"`
	Records   int         `json:"records"`
	TrainedAt string      `json:"trained_at"`
}

// Validate checks internal consistency: every action needs a weight row of
// the declared dimensionality and a bias term. A snapshot that fails
// validation is treated as unavailable, never partially used.
func (s *Snapshot) Validate() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("snapshot version %d: want %d", s.Version, SnapshotVersion)
	}
	if len(s.Weights) != len(s.Actions) {
		return fmt.Errorf("snapshot has %d weight rows for %d actions", len(s.Weights), len(s.Actions))
	}
	if len(s.Bias) != len(s.Actions) {
		return fmt.Errorf("snapshot has %d bias terms for %d actions", len(s.Bias), len(s.Actions))
	}
	for i, row := range s.Weights {
		if len(row) != s.Dim {
			return fmt.Errorf("snapshot weight row %d has dim %d: want %d", i, len(row), s.Dim)
		}
	}
	return nil
}

// newSnapshot captures the trained policy and its vocabulary.
func newSnapshot(p *linearPolicy, vocab *Vocabulary, records int) *Snapshot {
	return &Snapshot{
		Version:   SnapshotVersion,
		Dim:       p.dim,
		Actions:   vocab.Actions(),
		Weights:   p.weights,
		Bias:      p.bias,
		Records:   records,
		TrainedAt: time.Now().Format(time.RFC3339),
	}
}

// policyFromSnapshot rebuilds the in-memory policy from a validated snapshot.
func policyFromSnapshot(s *Snapshot) *linearPolicy {
	return &linearPolicy{weights: s.Weights, bias: s.Bias, dim: s.Dim}
}

// SaveSnapshot atomically writes the snapshot to path (write temp + rename),
// so a crash mid-save leaves the previous snapshot untouched.
func SaveSnapshot(path string, s *Snapshot) error {
	return jsonfile.New(path).Save(s)
}

// LoadSnapshot reads and validates the snapshot at path. found=false means
// no snapshot exists yet; an invalid or unreadable snapshot returns an
// error.
func LoadSnapshot(path string) (*Snapshot, bool, error) {
	var s Snapshot
	found, err := jsonfile.New(path).Load(&s)
	if err != nil {
		return nil, found, err
	}
	if !found {
		return nil, false, nil
	}
	if err := s.Validate(); err != nil {
		return nil, true, err
	}
	return &s, true, nil
}
