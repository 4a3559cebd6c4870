package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const BackupFileName = "goalnote-backup.json"

// Backup is the document written by Export and read by Import.
type Backup struct {
	Entries AppData   `json:"entries"`
	Tasks   TasksData `json:"tasks"`
}

// Export serializes both stored blobs into one indented document. A blob
// that cannot be read exports as an empty object.
func (s *Store) Export() ([]byte, error) {
	backup := Backup{Entries: AppData{}, Tasks: TasksData{}}

	if err := readBlob(s.storage, EntriesKey, &backup.Entries); err != nil || backup.Entries == nil {
		backup.Entries = AppData{}
	}
	if err := readBlob(s.storage, TasksKey, &backup.Tasks); err != nil || backup.Tasks == nil {
		backup.Tasks = TasksData{}
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding backup: %w", err)
	}
	return data, nil
}

// Import overwrites both blobs with the contents of a backup document.
func (s *Store) Import(data []byte) error {
	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("error decoding backup: %w", err)
	}
	if backup.Entries == nil {
		backup.Entries = AppData{}
	}
	if backup.Tasks == nil {
		backup.Tasks = TasksData{}
	}

	if err := s.validateBackup(backup); err != nil {
		return err
	}

	s.entries = backup.Entries
	s.tasks = backup.Tasks
	s.persist(EntriesKey, s.entries)
	s.persist(TasksKey, s.tasks)

	s.log.Infow("imported backup", "years", len(backup.Entries), "task_days", len(backup.Tasks))
	return nil
}

// validateBackup checks every record and every key, so nothing is imported
// that a year, month and day (or a date key) could not reach.
func (s *Store) validateBackup(backup Backup) error {
	for yk, months := range backup.Entries {
		year, err := strconv.Atoi(yk)
		if err != nil || yearKey(year) != yk {
			return fmt.Errorf("%w: year key %q", ErrValidation, yk)
		}
		for month, days := range months {
			for day, entry := range days {
				if err := ValidateDate(month, year, day); err != nil {
					return fmt.Errorf("%w: entry %s %s %d: %v", ErrValidation, yk, month, day, err)
				}
				if err := s.validate.Struct(entry); err != nil {
					return fmt.Errorf("%w: entry %s %s %d: %v", ErrValidation, yk, month, day, err)
				}
			}
		}
	}

	for key, tasks := range backup.Tasks {
		date, err := time.Parse("2006-01-02", key)
		if err != nil || DateKey(date.Year(), MonthFromTime(date.Month()), date.Day()) != key {
			return fmt.Errorf("%w: task date key %q", ErrValidation, key)
		}
		for _, task := range tasks {
			if err := s.validate.Struct(task); err != nil {
				return fmt.Errorf("%w: task %q: %v", ErrValidation, task.ID, err)
			}
		}
	}
	return nil
}

// WriteBackup writes the export to goalnote-backup.json inside dir.
func WriteBackup(store EntryStore, dir string) (string, error) {
	data, err := store.Export()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, BackupFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return path, nil
}
