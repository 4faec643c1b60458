package interaction

import (
	"fmt"
	"sync"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/internal/jsonfile"
	"github.com/hupe1980/attune/logging"
)

// DefaultBatchSize is the number of appended records between training
// triggers.
const DefaultBatchSize = 20

// Options configures construction of a FileLog.
type Options struct {
	// BatchSize controls how often the trigger fires: on every append whose
	// resulting record count is a positive multiple of this value. Zero or
	// negative disables triggering. Defaults to DefaultBatchSize.
	BatchSize int
	// Trigger is invoked asynchronously with the new total record count
	// whenever a batch boundary is crossed. Typically wired to the policy
	// trainer's Kick. Nil disables triggering.
	Trigger func(total int)
	// Logger receives warnings about unreadable backing files. Defaults to NoOp.
	Logger logging.Logger
}

// FileLog is a file-backed core.InteractionLog.
//
// Concurrency: a single mutex serializes appends so concurrent callers
// cannot interleave the load-modify-store cycle and lose records.
// Recovery: missing backing file starts empty; a corrupt one is logged and
// treated as empty.
type FileLog struct {
	mu        sync.Mutex
	file      *jsonfile.File
	records   []core.InteractionRecord
	batchSize int
	trigger   func(total int)
	logger    logging.Logger
}

// Interface compliance (compile-time assertion)
var _ core.InteractionLog = (*FileLog)(nil)

// NewFileLog creates a FileLog persisted at path, loading any existing
// records.
func NewFileLog(path string, optFns ...func(o *Options)) *FileLog {
	opts := Options{BatchSize: DefaultBatchSize, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	l := &FileLog{
		file:      jsonfile.New(path),
		batchSize: opts.BatchSize,
		trigger:   opts.Trigger,
		logger:    opts.Logger,
	}
	if _, err := l.file.Load(&l.records); err != nil {
		l.logger.Warn("interaction log unreadable, starting empty", "path", path, "error", err)
		l.records = nil
	}
	return l
}

// Append creates a timestamped record, persists the log, and fires the
// training trigger when the new total is a positive multiple of the batch
// size. The trigger runs on its own goroutine; Append returns promptly
// regardless of how long training takes.
func (l *FileLog) Append(state, action string, reward core.Reward) error {
	if !reward.Valid() {
		return fmt.Errorf("invalid reward %d: must be -1, 0 or 1", reward)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, core.NewInteractionRecord(state, action, reward))
	if err := l.file.Save(l.records); err != nil {
		l.records = l.records[:len(l.records)-1]
		return &core.StoreError{Op: "save", Path: l.file.Path(), Err: err}
	}

	total := len(l.records)
	if l.trigger != nil && l.batchSize > 0 && total%l.batchSize == 0 {
		l.logger.Debug("interaction log reached batch boundary", "total", total, "batch_size", l.batchSize)
		go l.trigger(total)
	}
	return nil
}

// Records returns a defensive copy of all records in insertion order.
func (l *FileLog) Records() ([]core.InteractionRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.InteractionRecord, len(l.records))
	copy(out, l.records)
	return out, nil
}

// Len reports the current record count.
func (l *FileLog) Len() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records), nil
}
