package interaction

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/attune/core"
)

func TestFileLog_AppendAndRecords(t *testing.T) {
	l := NewFileLog(filepath.Join(t.TempDir(), "log.json"))

	require.NoError(t, l.Append("hello", "hi there", core.RewardNeutral))
	require.NoError(t, l.Append("bye", "see you", core.RewardPositive))

	records, err := l.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "hello", records[0].State)
	assert.Equal(t, "hi there", records[0].Action)
	assert.Equal(t, core.RewardNeutral, records[0].Reward)
	assert.NotEmpty(t, records[0].Timestamp)
	assert.NotEmpty(t, records[0].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)

	assert.Equal(t, "bye", records[1].State)
	assert.Equal(t, core.RewardPositive, records[1].Reward)

	total, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestFileLog_Append_InvalidReward(t *testing.T) {
	l := NewFileLog(filepath.Join(t.TempDir(), "log.json"))

	assert.Error(t, l.Append("state", "action", core.Reward(2)))
	assert.Error(t, l.Append("state", "action", core.Reward(-7)))

	total, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestFileLog_TriggerFiresAtBatchBoundary(t *testing.T) {
	fires := make(chan int, 4)
	l := NewFileLog(filepath.Join(t.TempDir(), "log.json"), func(o *Options) {
		o.BatchSize = 3
		o.Trigger = func(total int) { fires <- total }
	})

	for i := 0; i < 7; i++ {
		require.NoError(t, l.Append("state", "action", core.RewardNeutral))
	}

	assert.Equal(t, 3, waitFire(t, fires))
	assert.Equal(t, 6, waitFire(t, fires))

	select {
	case total := <-fires:
		t.Fatalf("unexpected trigger at total %d", total)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFileLog_TriggerOnTwentieth(t *testing.T) {
	fires := make(chan int, 1)
	path := filepath.Join(t.TempDir(), "log.json")

	seed := NewFileLog(path)
	for i := 0; i < 19; i++ {
		require.NoError(t, seed.Append("state", "action", core.RewardNeutral))
	}

	l := NewFileLog(path, func(o *Options) {
		o.Trigger = func(total int) { fires <- total }
	})
	require.NoError(t, l.Append("state", "action", core.RewardNeutral))

	assert.Equal(t, 20, waitFire(t, fires))
}

func TestFileLog_ConcurrentAppends(t *testing.T) {
	l := NewFileLog(filepath.Join(t.TempDir(), "log.json"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Append("state", "action", core.RewardNeutral))
		}()
	}
	wg.Wait()

	total, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}

func TestFileLog_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	l := NewFileLog(path)
	require.NoError(t, l.Append("hello", "hi", core.RewardNeutral))

	reloaded := NewFileLog(path)
	records, err := reloaded.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].State)
}

func TestFileLog_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, os.WriteFile(path, []byte("]["), 0o644))

	l := NewFileLog(path)

	total, err := l.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func waitFire(t *testing.T, fires <-chan int) int {
	t.Helper()
	select {
	case total := <-fires:
		return total
	case <-time.After(2 * time.Second):
		t.Fatal("trigger did not fire")
		return 0
	}
}
