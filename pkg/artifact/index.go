package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// indexLockTimeout bounds how long an index writer waits for the OS file
// lock before giving up.
const indexLockTimeout = 10 * time.Second

// localLocks serializes index access within this process, keyed by absolute
// index path. flock excludes other processes; this mutex excludes goroutines
// sharing the same process (flock is per-process on most platforms).
var (
	localLocks   = map[string]*sync.Mutex{}
	localLocksMu sync.Mutex
)

func localLockFor(path string) *sync.Mutex {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	localLocksMu.Lock()
	defer localLocksMu.Unlock()
	mu, ok := localLocks[abs]
	if !ok {
		mu = &sync.Mutex{}
		localLocks[abs] = mu
	}
	return mu
}

// withIndexLock runs fn while holding both the process-local mutex and the
// OS file lock on the index.
func (s *Store) withIndexLock(fn func() error) error {
	mu := localLockFor(s.indexPath)
	mu.Lock()
	defer mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), indexLockTimeout)
	defer cancel()

	fl := flock.New(s.indexPath + ".lock")
	locked, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire index lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire index lock within %s", indexLockTimeout)
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}

// readIndex loads index entries. A missing or corrupt index yields an empty
// slice; the canonical data lives in per-commis metadata.json files.
func (s *Store) readIndex() []*Metadata {
	data, err := os.ReadFile(s.indexPath)
	if err != nil {
		return nil
	}
	var entries []*Metadata
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("Corrupt artifact index, treating as empty", "path", s.indexPath, "error", err)
		return nil
	}
	return entries
}

// writeIndexLocked writes the index. Caller must hold the index lock (or be
// in single-threaded initialization).
func (s *Store) writeIndexLocked(entries []*Metadata) error {
	if entries == nil {
		entries = []*Metadata{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := os.WriteFile(s.indexPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}

// updateIndex inserts or replaces the index entry for a commis under the
// index lock.
func (s *Store) updateIndex(commisID string, meta *Metadata) error {
	return s.withIndexLock(func() error {
		entries := s.readIndex()
		replaced := false
		for i, entry := range entries {
			if entry.CommisID == commisID {
				entries[i] = meta
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, meta)
		}
		return s.writeIndexLocked(entries)
	})
}

// updateIndexEntry applies a mutation to an existing index entry.
func (s *Store) updateIndexEntry(commisID string, mutate func(entry *Metadata)) error {
	return s.withIndexLock(func() error {
		entries := s.readIndex()
		for _, entry := range entries {
			if entry.CommisID == commisID {
				mutate(entry)
				return s.writeIndexLocked(entries)
			}
		}
		return nil
	})
}

// ListOptions filters List results. Zero values mean "no filter".
type ListOptions struct {
	Limit   int
	Status  string
	Since   *time.Time
	OwnerID int
}

// List returns index entries newest first, filtered by the options.
func (s *Store) List(opts ListOptions) []*Metadata {
	entries := s.readIndex()

	filtered := make([]*Metadata, 0, len(entries))
	for _, entry := range entries {
		if opts.Status != "" && entry.Status != opts.Status {
			continue
		}
		if opts.Since != nil && !entry.CreatedAt.After(*opts.Since) {
			continue
		}
		if opts.OwnerID != 0 && entry.OwnerID() != opts.OwnerID {
			continue
		}
		filtered = append(filtered, entry)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}
	return filtered
}
