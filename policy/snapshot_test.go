package policy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSnapshot() *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		Dim:     2,
		Actions: []string{"a", "b"},
		Weights: [][]float64{{0.1, 0.2}, {0.3, 0.4}},
		Bias:    []float64{0, 0},
		Records: 4,
	}
}

func TestSnapshot_Validate(t *testing.T) {
	assert.NoError(t, validSnapshot().Validate())
}

func TestSnapshot_Validate_Rejects(t *testing.T) {
	s := validSnapshot()
	s.Version = SnapshotVersion + 1
	assert.Error(t, s.Validate())

	s = validSnapshot()
	s.Weights = s.Weights[:1]
	assert.Error(t, s.Validate())

	s = validSnapshot()
	s.Bias = nil
	assert.Error(t, s.Validate())

	s = validSnapshot()
	s.Weights[1] = []float64{0.3}
	assert.Error(t, s.Validate())
}

func TestSnapshot_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	in := validSnapshot()

	require.NoError(t, SaveSnapshot(path, in))

	out, found, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in.Actions, out.Actions)
	assert.Equal(t, in.Weights, out.Weights)
	assert.Equal(t, in.Dim, out.Dim)
}

func TestLoadSnapshot_Missing(t *testing.T) {
	_, found, err := LoadSnapshot(filepath.Join(t.TempDir(), "none.json"))

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestLoadSnapshot_InvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	bad := validSnapshot()
	bad.Bias = bad.Bias[:1]
	require.NoError(t, SaveSnapshot(path, bad))

	_, found, err := LoadSnapshot(path)

	assert.True(t, found)
	assert.Error(t, err)
}
