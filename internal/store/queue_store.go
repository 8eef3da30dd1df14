package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/maheshrc27/dronepost/internal/models"
)

// QueueStore persists the posting queue as a single JSON file. The file holds
// the pending queue, the posted archive and a last-updated timestamp. The
// scheduling engine is the only writer.
type QueueStore struct {
	path string
}

func NewQueueStore(path string) *QueueStore {
	return &QueueStore{path: path}
}

type scheduleFile struct {
	Queue       []*models.ContentItem `json:"queue"`
	Posted      []*models.ContentItem `json:"posted"`
	LastUpdated string                `json:"last_updated"`
}

// Load reads the persisted schedule. A missing or unreadable file is not an
// error: the store degrades to an empty state and the engine starts fresh.
func (s *QueueStore) Load() (queue, posted []*models.ContentItem) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Info(err.Error())
		}
		return nil, nil
	}

	var file scheduleFile
	if err := json.Unmarshal(data, &file); err != nil {
		slog.Info(err.Error())
		log.Printf("Error loading schedule %s, starting with empty queue", s.path)
		return nil, nil
	}

	log.Printf("Loaded schedule: %d items in queue", len(file.Queue))
	return file.Queue, file.Posted
}

// Save writes both collections atomically by writing to a temp file in the
// same directory and renaming it over the target, so a reader never observes
// a half-written schedule.
func (s *QueueStore) Save(queue, posted []*models.ContentItem) error {
	if queue == nil {
		queue = []*models.ContentItem{}
	}
	if posted == nil {
		posted = []*models.ContentItem{}
	}

	file := scheduleFile{
		Queue:       queue,
		Posted:      posted,
		LastUpdated: time.Now().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		slog.Info(err.Error())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		slog.Info(err.Error())
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		slog.Info(err.Error())
		return err
	}

	return nil
}
