// Package manifest keeps a record of generated data files so that any of
// them can be regenerated byte-for-byte from its seed.
package manifest

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pkg.jsn.cam/sesolver/pkg/storage"
)

var ErrRunNotFound = errors.New("run not found")

var runsBucket = []byte("runs")

// Run describes one generated file
type Run struct {
	ID        uuid.UUID `json:"id"`
	Generator string    `json:"generator"`
	Seed      uint64    `json:"seed"`
	Lines     int64     `json:"lines"`
	Output    string    `json:"output"`
	Bytes     int64     `json:"bytes"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
}

type Manifest struct {
	store *storage.Store
	now   func() time.Time
}

// Open opens the bbolt-backed manifest at path.
func Open(path string) (*Manifest, error) {
	backend, err := storage.NewBboltBackend(path)
	if err != nil {
		return nil, err
	}
	m, err := New(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return m, nil
}

// New wraps an existing backend, creating the runs bucket if needed.
func New(backend storage.Backend) (*Manifest, error) {
	store := storage.NewStore(backend)
	if err := store.CreateBucket(runsBucket); err != nil {
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}
	return &Manifest{store: store, now: time.Now}, nil
}

// Record assigns run an ID and timestamp and stores it.
func (m *Manifest) Record(run Run) (Run, error) {
	run.ID = uuid.New()
	run.CreatedAt = m.now().UTC()

	if err := m.store.PutJSON(runsBucket, []byte(run.ID.String()), run); err != nil {
		return Run{}, fmt.Errorf("failed to record run: %w", err)
	}

	log.Debug().
		Str("run_id", run.ID.String()).
		Str("generator", run.Generator).
		Uint64("seed", run.Seed).
		Msg("recorded run")
	return run, nil
}

// Get looks a run up by its ID string.
func (m *Manifest) Get(id string) (Run, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	var run Run
	found, err := m.store.GetJSON(runsBucket, []byte(parsed.String()), &run)
	if err != nil {
		return Run{}, err
	}
	if !found {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, nil
}

// Delete forgets a run. The generated file itself is left alone.
func (m *Manifest) Delete(id string) (Run, error) {
	run, err := m.Get(id)
	if err != nil {
		return Run{}, err
	}
	if err := m.store.Delete(runsBucket, []byte(run.ID.String())); err != nil {
		return Run{}, fmt.Errorf("failed to delete run: %w", err)
	}

	log.Debug().Str("run_id", run.ID.String()).Msg("deleted run")
	return run, nil
}

// List returns every run, newest first.
func (m *Manifest) List() ([]Run, error) {
	var runs []Run
	err := m.store.EachJSON(runsBucket, func(_ []byte, decode func(any) error) error {
		var run Run
		if err := decode(&run); err != nil {
			return err
		}
		runs = append(runs, run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(runs, func(a, b Run) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return runs, nil
}

func (m *Manifest) Close() error {
	return m.store.Close()
}
