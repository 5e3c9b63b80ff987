// SPDX-License-Identifier: MIT

// Package store persists fitted embedding models in a badger key-value
// database.
//
// Each model lives under a random UUID with two records:
//
//	0x01 | id  → Meta          (msgpack)
//	0x02 | id  → embed.Snapshot (msgpack)
//
// Meta is small so List never decodes latent matrices. Models can be
// looked up by ID or by name; names are not required to be unique, and an
// ambiguous name lookup fails with ErrAmbiguousName.
//
// A Store is safe for concurrent use from multiple goroutines.
package store

import (
	"bytes"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/PerifanosPrometheus/graspologic/embed"
)

const (
	prefixMeta     byte = 0x01
	prefixSnapshot byte = 0x02
)

var (
	// ErrNotFound indicates no model matches the given ID or name.
	ErrNotFound = errors.New("store: model not found")

	// ErrAmbiguousName indicates a name lookup matched more than one model.
	ErrAmbiguousName = errors.New("store: name matches several models")

	// ErrInvalidOptions indicates Open was given neither a directory nor InMemory.
	ErrInvalidOptions = errors.New("store: a directory or in-memory mode is required")
)

// Options configures Open.
type Options struct {
	// Dir is the badger data directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps everything in RAM; data is lost on Close.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool
}

// Meta describes a stored model.
type Meta struct {
	ID             string    `msgpack:"id" yaml:"id"`
	Name           string    `msgpack:"name" yaml:"name"`
	CreatedAt      time.Time `msgpack:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time `msgpack:"updated_at" yaml:"updated_at"`
	Vertices       int       `msgpack:"vertices" yaml:"vertices"`
	InSample       int       `msgpack:"in_sample" yaml:"in_sample"`
	Components     int       `msgpack:"components" yaml:"components"`
	ReferenceSize  int       `msgpack:"reference_size" yaml:"reference_size"`
	SemiSupervised bool      `msgpack:"semi_supervised" yaml:"semi_supervised"`
	Warnings       int       `msgpack:"warnings" yaml:"warnings"`
}

// Store is a badger-backed model catalog.
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens (or creates) a store.
func Open(opts Options) (*Store, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, ErrInvalidOptions
	}

	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	dbOpts = dbOpts.
		WithSyncWrites(opts.SyncWrites).
		WithLogger(nil).
		WithMetricsEnabled(false)

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %q", opts.Dir)
	}
	klog.V(2).Infof("store: opened dir=%q in_memory=%t", opts.Dir, opts.InMemory)

	return &Store{db: db, now: time.Now}, nil
}

// OpenInMemory opens a throwaway in-memory store.
func OpenInMemory() (*Store, error) {
	return Open(Options{InMemory: true})
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "store: close")
}

func metaKey(id string) []byte {
	return append([]byte{prefixMeta}, id...)
}

func snapshotKey(id string) []byte {
	return append([]byte{prefixSnapshot}, id...)
}

// describe fills the model-derived Meta fields.
func describe(meta *Meta, m *embed.OOSE) {
	meta.Vertices = len(m.Vertices())
	meta.InSample = len(m.InSampleIndices())
	meta.Components = m.Components()
	meta.ReferenceSize = m.ReferenceSize()
	meta.SemiSupervised = m.Settings().SemiSupervised
	meta.Warnings = len(m.Warnings())
}

// Save stores a fitted model under a fresh ID.
func (s *Store) Save(name string, m *embed.OOSE) (Meta, error) {
	snap, err := m.Snapshot()
	if err != nil {
		return Meta{}, errors.Wrap(err, "store: save")
	}
	now := s.now().UTC()
	meta := Meta{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	describe(&meta, m)

	if err = s.db.Update(func(txn *badger.Txn) error {
		return put(txn, meta, snap)
	}); err != nil {
		return Meta{}, errors.Wrapf(err, "store: save %q", name)
	}
	klog.V(2).Infof("store: saved model %s name=%q", meta.ID, name)

	return meta, nil
}

// Update replaces the snapshot of an existing model, keeping its ID, name
// and creation time. Used after semi-supervised Predict grows a reference.
func (s *Store) Update(id string, m *embed.OOSE) (Meta, error) {
	snap, err := m.Snapshot()
	if err != nil {
		return Meta{}, errors.Wrap(err, "store: update")
	}
	var meta Meta
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := get(txn, metaKey(id), &meta); err != nil {
			return err
		}
		meta.UpdatedAt = s.now().UTC()
		describe(&meta, m)
		return put(txn, meta, snap)
	})
	if err != nil {
		return Meta{}, errors.Wrapf(err, "store: update %s", id)
	}

	return meta, nil
}

// Load restores the model with the given ID. opts are applied on top of
// the stored settings (see embed.Restore).
func (s *Store) Load(id string, opts ...embed.Option) (*embed.OOSE, Meta, error) {
	var (
		meta Meta
		snap embed.Snapshot
	)
	err := s.db.View(func(txn *badger.Txn) error {
		if err := get(txn, metaKey(id), &meta); err != nil {
			return err
		}
		return get(txn, snapshotKey(id), &snap)
	})
	if err != nil {
		return nil, Meta{}, errors.Wrapf(err, "store: load %s", id)
	}
	m, err := embed.Restore(&snap, opts...)
	if err != nil {
		return nil, Meta{}, errors.Wrapf(err, "store: load %s", id)
	}

	return m, meta, nil
}

// Meta returns the metadata of one model.
func (s *Store) Meta(id string) (Meta, error) {
	var meta Meta
	err := s.db.View(func(txn *badger.Txn) error {
		return get(txn, metaKey(id), &meta)
	})
	if err != nil {
		return Meta{}, errors.Wrapf(err, "store: meta %s", id)
	}

	return meta, nil
}

// List returns all models ordered by creation time, then ID.
func (s *Store) List() ([]Meta, error) {
	var out []Meta
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte{prefixMeta}
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var meta Meta
			if err := it.Item().Value(func(val []byte) error {
				return msgpack.Unmarshal(val, &meta)
			}); err != nil {
				return errors.Wrapf(err, "decode %q", bytes.TrimPrefix(it.Item().Key(), prefix))
			}
			out = append(out, meta)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "store: list")
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// Resolve maps a model reference (an ID or a name) to its metadata.
func (s *Store) Resolve(ref string) (Meta, error) {
	if _, err := uuid.Parse(ref); err == nil {
		return s.Meta(ref)
	}
	all, err := s.List()
	if err != nil {
		return Meta{}, err
	}
	var hits []Meta
	for _, m := range all {
		if m.Name == ref {
			hits = append(hits, m)
		}
	}
	switch len(hits) {
	case 0:
		return Meta{}, errors.Wrapf(ErrNotFound, "store: resolve %q", ref)
	case 1:
		return hits[0], nil
	default:
		return Meta{}, errors.Wrapf(ErrAmbiguousName, "store: resolve %q (%d models)", ref, len(hits))
	}
}

// Delete removes a model.
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(metaKey(id)); err != nil {
			return notFound(err)
		}
		if err := txn.Delete(metaKey(id)); err != nil {
			return err
		}
		return txn.Delete(snapshotKey(id))
	})

	return errors.Wrapf(err, "store: delete %s", id)
}

func put(txn *badger.Txn, meta Meta, snap *embed.Snapshot) error {
	mb, err := msgpack.Marshal(&meta)
	if err != nil {
		return errors.Wrap(err, "encode meta")
	}
	sb, err := msgpack.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	if err = txn.Set(metaKey(meta.ID), mb); err != nil {
		return err
	}

	return txn.Set(snapshotKey(meta.ID), sb)
}

func get(txn *badger.Txn, key []byte, dst any) error {
	item, err := txn.Get(key)
	if err != nil {
		return notFound(err)
	}

	return item.Value(func(val []byte) error {
		return msgpack.Unmarshal(val, dst)
	})
}

func notFound(err error) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}

	return err
}
