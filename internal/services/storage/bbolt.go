package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabrielcapilla/triplay/internal/domain"
	"github.com/gabrielcapilla/triplay/internal/ports"

	"go.etcd.io/bbolt"
)

var historyBucket = []byte("history")

// Keys are "<RFC3339Nano>|<file>" so a cursor walks plays in time order.
var keySeparator = []byte("|")

type BboltStore struct {
	db *bbolt.DB
}

func NewBboltStore(dbPath string) (ports.StorageService, error) {
	options := &bbolt.Options{Timeout: 1 * time.Second}
	db, err := bbolt.Open(dbPath, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("could not open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create history bucket: %w", err)
	}

	return &BboltStore{db: db}, nil
}

func (s *BboltStore) createHistoryKey(t time.Time, file string) []byte {
	return []byte(t.UTC().Format(time.RFC3339Nano) + string(keySeparator) + file)
}

func (s *BboltStore) findAndDeleteOldEntry(b *bbolt.Bucket, file string) error {
	c := b.Cursor()
	fileBytes := []byte(file)

	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		parts := bytes.SplitN(k, keySeparator, 2)
		if len(parts) == 2 && bytes.Equal(parts[1], fileBytes) {
			return c.Delete()
		}
	}
	return nil
}

// AddToHistory keeps a single entry per track file, moved to the front on replay.
func (s *BboltStore) AddToHistory(entry domain.HistoryEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(historyBucket)

		if err := s.findAndDeleteOldEntry(b, entry.Track.File); err != nil {
			return err
		}

		if entry.PlayedAt.IsZero() {
			entry.PlayedAt = time.Now()
		}
		key := s.createHistoryKey(entry.PlayedAt, entry.Track.File)

		value, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("error serializing history entry: %w", err)
		}

		return b.Put(key, value)
	})
}

func (s *BboltStore) GetHistory(limit int) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(historyBucket)
		c := b.Cursor()

		for k, v := c.Last(); k != nil && len(entries) < limit; k, v = c.Prev() {
			var entry domain.HistoryEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("error deserializing history entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *BboltStore) Close() error {
	return s.db.Close()
}
