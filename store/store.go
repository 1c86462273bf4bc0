package store

import (
	"errors"
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/btsp/btsp"
	"github.com/katalvlaran/btsp/graph"
)

// ErrNotFound is returned by Get for an unknown key.
var ErrNotFound = errors.New("store: record not found")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is a cached solve.
type Record struct {
	ID         uint64     `json:"id" boltholdKey:"ID"`
	Key        string     `json:"key" boltholdIndex:"Key"`
	Solver     string     `json:"solver"`
	Tour       []int      `json:"tour"`
	Objective  float64    `json:"objective"`
	Bottleneck graph.Edge `json:"bottleneck"`
	LowerBound float64    `json:"lowerBound"`
	UsedAt     int64      `json:"usedAt" boltholdIndex:"UsedAt"`
	CreatedAt  int64      `json:"createdAt"`
}

// NewRecord copies the reportable part of res.
func NewRecord(solver string, res btsp.Result) Record {
	return Record{
		Solver:     solver,
		Tour:       append([]int(nil), res.Tour...),
		Objective:  res.Objective,
		Bottleneck: res.BottleneckEdge,
		LowerBound: res.LowerBound,
	}
}

// Result rebuilds a btsp.Result without graph or decomposition.
func (r Record) Result() btsp.Result {
	return btsp.Result{
		Tour:           append([]int(nil), r.Tour...),
		Objective:      r.Objective,
		BottleneckEdge: r.Bottleneck,
		LowerBound:     r.LowerBound,
	}
}

// Key joins the parts that identify a solve.
func Key(fingerprint, variant, solver string) string {
	return fingerprint + "/" + variant + "/" + solver
}

// Store is an open cache file.
type Store struct {
	db     *bolthold.Store
	logger logrus.FieldLogger
	now    func() time.Time
}

// Open opens or creates the cache file at path. A nil logger discards
// output.
func Open(path string, logger logrus.FieldLogger) (*Store, error) {
	if logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		logger = l
	}
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db, logger: logger.WithField("cache", path), now: time.Now}, nil
}

// Put stores rec under key, replacing an earlier record with that key.
// A replaced record keeps its ID and creation time.
func (s *Store) Put(key string, rec Record) error {
	now := s.now().Unix()
	rec.Key = key
	rec.UsedAt = now
	rec.CreatedAt = now

	old := &Record{}
	err := s.db.FindOne(old, bolthold.Where("Key").Eq(key))
	switch {
	case err == nil:
		rec.ID = old.ID
		rec.CreatedAt = old.CreatedAt
		if err = s.db.Update(rec.ID, &rec); err != nil {
			return fmt.Errorf("store: update %s: %w", key, err)
		}
		s.logger.WithField("key", key).Debug("replaced record")
	case errors.Is(err, bolthold.ErrNotFound):
		if err = s.db.Insert(bolthold.NextSequence(), &rec); err != nil {
			return fmt.Errorf("store: insert %s: %w", key, err)
		}
		s.logger.WithField("key", key).Debug("inserted record")
	default:
		return fmt.Errorf("store: find %s: %w", key, err)
	}
	return nil
}

// Get returns the record stored under key and marks it used.
func (s *Store) Get(key string) (Record, error) {
	rec := &Record{}
	if err := s.db.FindOne(rec, bolthold.Where("Key").Eq(key)); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return Record{}, fmt.Errorf("store: find %s: %w", key, err)
	}

	rec.UsedAt = s.now().Unix()
	if err := s.db.Update(rec.ID, rec); err != nil {
		s.logger.WithError(err).Warn("touch record")
	}
	return *rec, nil
}

// Prune deletes records not used since before and returns how many went.
func (s *Store) Prune(before time.Time) (int, error) {
	var stale []*Record
	if err := s.db.Find(&stale, bolthold.Where("UsedAt").Lt(before.Unix())); err != nil {
		return 0, fmt.Errorf("store: find stale: %w", err)
	}

	var deleted int
	for _, rec := range stale {
		if err := s.db.Delete(rec.ID, rec); err != nil {
			s.logger.WithError(err).WithField("key", rec.Key).Warn("delete record")
			continue
		}
		deleted++
	}
	s.logger.WithField("deleted", deleted).Debug("pruned")
	return deleted, nil
}

// Close releases the file lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
