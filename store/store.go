// Package store persists part/package build runs to a bbolt database,
// entirely outside the partpkg core — partpkg never imports it.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/sys/unix"
)

const (
	bucketRuns     = "runs"
	bucketPackages = "packages"
)

// RunRecord captures metadata for one getPackages invocation.
type RunRecord struct {
	RunID        string    `json:"run_id"`
	BootPart     string    `json:"boot_part"`
	Timestamp    time.Time `json:"timestamp"`
	PartCount    int       `json:"part_count"`
	PackageCount int       `json:"package_count"`
}

// Store wraps a bbolt database plus the advisory lock taken while it is
// open for writing.
type Store struct {
	db       *bolt.DB
	path     string
	lockFile *os.File
}

// Open opens (creating if absent) the bbolt database at path, after
// taking an advisory flock on a sibling "<path>.lock" file so two CLI
// invocations against the same cache don't interleave writes.
func Open(path string) (*Store, error) {
	lockFile, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX); err != nil {
		lockFile.Close()
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)
		lockFile.Close()
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketRuns)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPackages))
		return err
	})
	if err != nil {
		db.Close()
		unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)
		lockFile.Close()
		return nil, fmt.Errorf("initializing buckets in %s: %w", path, err)
	}

	return &Store{db: db, path: path, lockFile: lockFile}, nil
}

// Close releases the database and the advisory lock.
func (s *Store) Close() error {
	err := s.db.Close()
	unix.Flock(int(s.lockFile.Fd()), unix.LOCK_UN)
	s.lockFile.Close()
	return err
}

// SaveRun records rec under bucketRuns and each of classLists under
// bucketPackages, keyed "<runID>/<index>".
func (s *Store) SaveRun(rec RunRecord, classLists [][]string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		runs := tx.Bucket([]byte(bucketRuns))
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling run record: %w", err)
		}
		if err := runs.Put([]byte(rec.RunID), data); err != nil {
			return fmt.Errorf("saving run record: %w", err)
		}

		packages := tx.Bucket([]byte(bucketPackages))
		for i, classes := range classLists {
			key := fmt.Sprintf("%s/%d", rec.RunID, i)
			data, err := json.Marshal(classes)
			if err != nil {
				return fmt.Errorf("marshaling package %d: %w", i, err)
			}
			if err := packages.Put([]byte(key), data); err != nil {
				return fmt.Errorf("saving package %d: %w", i, err)
			}
		}
		return nil
	})
}

// RecentRuns returns up to limit run records (all of them when limit
// <= 0), newest Timestamp first. bbolt iterates keys in byte order and
// run ids are UUIDv4, so every record is read and then sorted.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	var out []RunRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketRuns)).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var rec RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshaling run %s: %w", k, err)
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PackageClasses returns the stored class list for runID's packageIndex.
func (s *Store) PackageClasses(runID string, packageIndex int) ([]string, error) {
	var out []string
	key := []byte(fmt.Sprintf("%s/%d", runID, packageIndex))
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketPackages)).Get(key)
		if data == nil {
			return fmt.Errorf("no package recorded for %s", key)
		}
		return json.Unmarshal(data, &out)
	})
	return out, err
}
