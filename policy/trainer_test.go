package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/embedding"
	"github.com/hupe1980/attune/interaction"
	"github.com/hupe1980/attune/internal/testutil"
)

func seededLog(t *testing.T, dir string) *interaction.FileLog {
	t.Helper()
	log := interaction.NewFileLog(filepath.Join(dir, "log.json"))
	for i := 0; i < 5; i++ {
		require.NoError(t, log.Append("good morning", "Good morning! Ready when you are.", core.RewardPositive))
		require.NoError(t, log.Append("good night", "Sleep well.", core.RewardPositive))
	}
	return log
}

func TestTrainer_EmptyLogSkips(t *testing.T) {
	dir := t.TempDir()
	log := interaction.NewFileLog(filepath.Join(dir, "log.json"))
	snapshotPath := filepath.Join(dir, "policy.json")

	trainer := NewTrainer(log, embedding.NewHashingEmbedder(), snapshotPath)

	require.NoError(t, trainer.Train(context.Background()))

	_, err := os.Stat(snapshotPath)
	assert.True(t, os.IsNotExist(err))
}

func TestTrainer_ProducesValidSnapshot(t *testing.T) {
	dir := t.TempDir()
	log := seededLog(t, dir)
	snapshotPath := filepath.Join(dir, "policy.json")
	embedder := embedding.NewHashingEmbedder(func(o *embedding.HashingOptions) { o.Dim = 64 })

	trainer := NewTrainer(log, embedder, snapshotPath, func(o *TrainerOptions) {
		o.Steps = 500
		o.Seed = 1
	})
	require.NoError(t, trainer.Train(context.Background()))

	snap, found, err := LoadSnapshot(snapshotPath)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 64, snap.Dim)
	assert.Equal(t, 10, snap.Records)
	assert.Equal(t, []string{"Good morning! Ready when you are.", "Sleep well."}, snap.Actions)
	assert.NotEmpty(t, snap.TrainedAt)
}

func TestTrainer_PredictorLearnsLoggedPairs(t *testing.T) {
	dir := t.TempDir()
	log := seededLog(t, dir)
	snapshotPath := filepath.Join(dir, "policy.json")
	embedder := embedding.NewHashingEmbedder(func(o *embedding.HashingOptions) { o.Dim = 64 })

	trainer := NewTrainer(log, embedder, snapshotPath, func(o *TrainerOptions) {
		o.Steps = 2000
		o.LearningRate = 0.5
		o.Seed = 1
	})
	require.NoError(t, trainer.Train(context.Background()))

	p := NewPredictor(snapshotPath, embedder)

	answer, err := p.Predict(context.Background(), "good morning")
	require.NoError(t, err)
	assert.Equal(t, "Good morning! Ready when you are.", answer)

	answer, err = p.Predict(context.Background(), "good night")
	require.NoError(t, err)
	assert.Equal(t, "Sleep well.", answer)
}

func TestTrainer_EmbedderFailureAborts(t *testing.T) {
	dir := t.TempDir()
	log := seededLog(t, dir)
	snapshotPath := filepath.Join(dir, "policy.json")

	trainer := NewTrainer(log, &testutil.FailingEmbedder{N: 8}, snapshotPath)

	assert.Error(t, trainer.Train(context.Background()))

	// A failed run must not leave a snapshot behind.
	_, err := os.Stat(snapshotPath)
	assert.True(t, os.IsNotExist(err))
}

func TestTrainer_KickCollapsesBursts(t *testing.T) {
	trainer := NewTrainer(nil, nil, "")

	// A burst of kicks while nothing consumes them must never block.
	for i := 0; i < 10; i++ {
		trainer.Kick(20 * (i + 1))
	}
	assert.Len(t, trainer.kick, 1)
}

func TestPredictor_NoSnapshot(t *testing.T) {
	p := NewPredictor(filepath.Join(t.TempDir(), "none.json"), embedding.NewHashingEmbedder())

	_, err := p.Predict(context.Background(), "anything")

	assert.ErrorIs(t, err, core.ErrModelUnavailable)
}

func TestPredictor_DimMismatch(t *testing.T) {
	dir := t.TempDir()
	log := seededLog(t, dir)
	snapshotPath := filepath.Join(dir, "policy.json")

	trainEmbedder := embedding.NewHashingEmbedder(func(o *embedding.HashingOptions) { o.Dim = 64 })
	trainer := NewTrainer(log, trainEmbedder, snapshotPath, func(o *TrainerOptions) {
		o.Steps = 100
		o.Seed = 1
	})
	require.NoError(t, trainer.Train(context.Background()))

	// Predicting with a differently sized embedder is version skew, not a
	// crash.
	skewed := embedding.NewHashingEmbedder(func(o *embedding.HashingOptions) { o.Dim = 32 })
	p := NewPredictor(snapshotPath, skewed)

	_, err := p.Predict(context.Background(), "good morning")
	assert.ErrorIs(t, err, core.ErrModelUnavailable)
}

func TestTrainer_WarmStartKeepsLearning(t *testing.T) {
	dir := t.TempDir()
	log := seededLog(t, dir)
	snapshotPath := filepath.Join(dir, "policy.json")
	embedder := embedding.NewHashingEmbedder(func(o *embedding.HashingOptions) { o.Dim = 64 })

	trainer := NewTrainer(log, embedder, snapshotPath, func(o *TrainerOptions) {
		o.Steps = 500
		o.Seed = 1
	})
	require.NoError(t, trainer.Train(context.Background()))
	require.NoError(t, trainer.Train(context.Background()))

	snap, found, err := LoadSnapshot(snapshotPath)
	require.NoError(t, err)
	require.True(t, found)
	assert.NoError(t, snap.Validate())
}
