package memory

import (
	"sync"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/internal/jsonfile"
	"github.com/hupe1980/attune/internal/util"
	"github.com/hupe1980/attune/logging"
)

// Entry is one taught key/answer pair as persisted on disk. Entries are
// stored as an ordered list rather than a map so recall iterates in a fixed,
// reproducible order.
type Entry struct {
	Key    string `json:"key"`
	Answer string `json:"answer"`
}

// Options configures construction of a FileStore.
type Options struct {
	// Logger receives warnings about unreadable backing files. Defaults to NoOp.
	Logger logging.Logger
	// Aliases, when set, also records every taught query as an alias of its
	// own answer (when the two differ). This mirrors how teaching doubles as
	// mishearing-correction in practice.
	Aliases core.AliasStore
}

// FileStore is a file-backed core.MemoryStore.
//
// Concurrency: protected by RWMutex; Teach persists the whole entry list
// before returning.
// Recovery: missing backing file starts empty; a corrupt one is logged and
// treated as empty.
type FileStore struct {
	mu      sync.RWMutex
	file    *jsonfile.File
	entries []Entry
	index   map[string]int // key -> position in entries
	aliases core.AliasStore
	logger  logging.Logger
}

// Interface compliance (compile-time assertion)
var _ core.MemoryStore = (*FileStore)(nil)

// NewFileStore creates a FileStore persisted at path, loading any existing
// entries.
func NewFileStore(path string, optFns ...func(o *Options)) *FileStore {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &FileStore{
		file:    jsonfile.New(path),
		index:   map[string]int{},
		aliases: opts.Aliases,
		logger:  opts.Logger,
	}
	if _, err := s.file.Load(&s.entries); err != nil {
		s.logger.Warn("memory store unreadable, starting empty", "path", path, "error", err)
		s.entries = nil
	}
	for i, e := range s.entries {
		s.index[e.Key] = i
	}
	return s
}

// Recall scores the normalized query against every stored key and returns
// the answer whose key scored strictly highest while meeting the threshold.
// Equal scores keep the first-encountered key in stored order.
func (s *FileStore) Recall(query string, threshold int) (string, bool, error) {
	q := util.NormalizePhrase(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	best := -1
	bestScore := 0
	for i, e := range s.entries {
		score := ratio(q, e.Key)
		if score >= threshold && score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 {
		return "", false, nil
	}
	return s.entries[best].Answer, true, nil
}

// Teach stores query→answer, overwriting any prior answer for the same
// normalized key, and persists before returning. Persistence failures
// surface to the caller: teaching is a direct user-initiated write the user
// expects to succeed.
func (s *FileStore) Teach(query, answer string) error {
	key := util.NormalizePhrase(query)

	s.mu.Lock()
	if i, ok := s.index[key]; ok {
		prev := s.entries[i].Answer
		s.entries[i].Answer = answer
		if err := s.file.Save(s.entries); err != nil {
			s.entries[i].Answer = prev
			s.mu.Unlock()
			return &core.StoreError{Op: "save", Path: s.file.Path(), Err: err}
		}
	} else {
		s.entries = append(s.entries, Entry{Key: key, Answer: answer})
		if err := s.file.Save(s.entries); err != nil {
			s.entries = s.entries[:len(s.entries)-1]
			s.mu.Unlock()
			return &core.StoreError{Op: "save", Path: s.file.Path(), Err: err}
		}
		s.index[key] = len(s.entries) - 1
	}
	s.mu.Unlock()

	// Remember the taught phrase as an alias of its answer. Failures here
	// only cost a future normalization shortcut, so they are logged rather
	// than surfaced.
	if s.aliases != nil {
		if err := s.aliases.Learn(query, answer); err != nil {
			s.logger.Warn("failed to record alias for taught answer", "query", query, "error", err)
		}
	}
	return nil
}

// Len returns the number of taught entries.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Entries returns a defensive copy of the stored entries in recall order.
func (s *FileStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
