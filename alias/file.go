package alias

import (
	"sync"

	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/internal/jsonfile"
	"github.com/hupe1980/attune/internal/util"
	"github.com/hupe1980/attune/logging"
)

// Options configures construction of a FileStore.
type Options struct {
	// Logger receives warnings about unreadable backing files. Defaults to NoOp.
	Logger logging.Logger
}

// FileStore is a file-backed core.AliasStore holding a flat mapping of
// normalized heard phrases to canonical phrases.
//
// Concurrency: protected by RWMutex; every mutation persists the whole
// mapping before returning.
// Recovery: a missing backing file starts the store empty; a corrupt one is
// logged as a warning and likewise treated as empty (the next Learn
// overwrites it).
type FileStore struct {
	mu      sync.RWMutex
	file    *jsonfile.File
	aliases map[string]string
	logger  logging.Logger
}

// Interface compliance (compile-time assertion)
var _ core.AliasStore = (*FileStore)(nil)

// NewFileStore creates a FileStore persisted at path, loading any existing
// mapping.
func NewFileStore(path string, optFns ...func(o *Options)) *FileStore {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &FileStore{
		file:    jsonfile.New(path),
		aliases: map[string]string{},
		logger:  opts.Logger,
	}
	if _, err := s.file.Load(&s.aliases); err != nil {
		s.logger.Warn("alias store unreadable, starting empty", "path", path, "error", err)
		s.aliases = map[string]string{}
	}
	return s
}

// Normalize returns the canonical phrase for the lowercased, trimmed input
// when an alias exists, otherwise the input unchanged. Side effect free.
func (s *FileStore) Normalize(text string) string {
	key := util.NormalizePhrase(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if canonical, ok := s.aliases[key]; ok {
		return canonical
	}
	return text
}

// Learn inserts or overwrites heard→canonical and persists the mapping.
// It is a no-op when the two phrases compare equal case-insensitively.
func (s *FileStore) Learn(heard, canonical string) error {
	h := util.NormalizePhrase(heard)
	c := util.NormalizePhrase(canonical)
	if h == c {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.aliases[h]
	s.aliases[h] = c

	if err := s.file.Save(s.aliases); err != nil {
		// Keep the in-memory view consistent with disk.
		if existed {
			s.aliases[h] = prev
		} else {
			delete(s.aliases, h)
		}
		return &core.StoreError{Op: "save", Path: s.file.Path(), Err: err}
	}
	return nil
}

// Len returns the number of stored aliases.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.aliases)
}
