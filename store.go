package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	EntriesKey = "goalnote-entries"
	TasksKey   = "goalnote-tasks"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrTaskNotFound = errors.New("task not found")
)

// EntryStore is what the command layer needs from the store.
type EntryStore interface {
	SaveDayEntry(year int, month MonthName, date int, entry DayEntry) error
	GetDayEntry(year int, month MonthName, date int) (DayEntry, bool)
	DeleteDayEntry(year int, month MonthName, date int) bool
	HasMonthData(year int, month MonthName) bool
	MonthEntries(year int, month MonthName) map[int]DayEntry

	TodayTasks() []Task
	NewTask(text, at string) Task
	AddTask(task Task) error
	UpdateTask(id string, patch TaskPatch) (bool, error)
	ToggleTask(id string) (Task, bool)
	DeleteTask(id string) bool

	Export() ([]byte, error)
	Import(data []byte) error

	Now() time.Time
}

var _ EntryStore = (*Store)(nil)

// Store keeps both blobs in memory and writes the whole blob back after
// every mutation. Persistence is best effort: unreadable blobs load as empty
// and failed writes are only logged.
type Store struct {
	storage  Storage
	log      *Logger
	validate *validator.Validate
	now      func() time.Time

	entries AppData
	tasks   TasksData
}

type StoreOption func(*Store)

// WithClock overrides the clock used to decide what "today" is.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(storage Storage, log *Logger, opts ...StoreOption) *Store {
	s := &Store{
		storage:  storage,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Reload()
	return s
}

// Reload replaces the in-memory state with what storage holds.
func (s *Store) Reload() {
	entries := AppData{}
	if err := readBlob(s.storage, EntriesKey, &entries); err != nil {
		s.log.WithError(err).Warnw("failed to load entries, starting empty", "key", EntriesKey)
		entries = AppData{}
	}

	tasks := TasksData{}
	if err := readBlob(s.storage, TasksKey, &tasks); err != nil {
		s.log.WithError(err).Warnw("failed to load tasks, starting empty", "key", TasksKey)
		tasks = TasksData{}
	}

	// a stored "null" decodes to a nil map
	if entries == nil {
		entries = AppData{}
	}
	if tasks == nil {
		tasks = TasksData{}
	}

	s.entries = entries
	s.tasks = tasks
}

func (s *Store) Now() time.Time {
	return s.now()
}

// +---------------------+
// |                     |
// |     Day entries     |
// |                     |
// +---------------------+

// SaveDayEntry replaces the entry for the day and persists all entries.
func (s *Store) SaveDayEntry(year int, month MonthName, date int, entry DayEntry) error {
	if err := ValidateDate(month, year, date); err != nil {
		return err
	}
	if err := s.validate.Struct(entry); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	yk := yearKey(year)
	if s.entries[yk] == nil {
		s.entries[yk] = YearData{}
	}
	if s.entries[yk][month] == nil {
		s.entries[yk][month] = MonthData{}
	}
	s.entries[yk][month][date] = entry

	s.persist(EntriesKey, s.entries)
	s.log.Debugw("saved day entry", "year", year, "month", month, "date", date)
	return nil
}

func (s *Store) GetDayEntry(year int, month MonthName, date int) (DayEntry, bool) {
	entry, ok := s.entries[yearKey(year)][month][date]
	return entry, ok
}

// DeleteDayEntry removes the day and drops containers left empty.
func (s *Store) DeleteDayEntry(year int, month MonthName, date int) bool {
	yk := yearKey(year)
	days := s.entries[yk][month]
	if _, ok := days[date]; !ok {
		return false
	}

	delete(days, date)
	if len(days) == 0 {
		delete(s.entries[yk], month)
	}
	if len(s.entries[yk]) == 0 {
		delete(s.entries, yk)
	}

	s.persist(EntriesKey, s.entries)
	return true
}

func (s *Store) HasMonthData(year int, month MonthName) bool {
	return len(s.entries[yearKey(year)][month]) > 0
}

// MonthEntries returns a copy of the month's entries keyed by day.
func (s *Store) MonthEntries(year int, month MonthName) map[int]DayEntry {
	days := s.entries[yearKey(year)][month]
	out := make(map[int]DayEntry, len(days))
	for day, entry := range days {
		out[day] = entry
	}
	return out
}

// +---------------------+
// |                     |
// |        Tasks        |
// |                     |
// +---------------------+

func (s *Store) todayKey() string {
	now := s.now()
	return DateKey(now.Year(), MonthFromTime(now.Month()), now.Day())
}

// TodayTasks returns a copy of today's list in creation order.
func (s *Store) TodayTasks() []Task {
	tasks := s.tasks[s.todayKey()]
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// NewTask builds an incomplete task with a fresh id. It is not stored.
func (s *Store) NewTask(text, at string) Task {
	return Task{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(text),
		Time:      strings.TrimSpace(at),
		CreatedAt: s.now().UnixMilli(),
	}
}

func (s *Store) AddTask(task Task) error {
	if err := s.validate.Struct(task); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	key := s.todayKey()
	s.tasks[key] = append(s.tasks[key], task)

	s.persist(TasksKey, s.tasks)
	return nil
}

// UpdateTask patches every task in today's list with the given id. A patch
// that would leave a task invalid changes nothing.
func (s *Store) UpdateTask(id string, patch TaskPatch) (bool, error) {
	key := s.todayKey()
	tasks := s.tasks[key]
	patched := make([]Task, len(tasks))
	copy(patched, tasks)

	found := false
	for i := range patched {
		if patched[i].ID != id {
			continue
		}
		patch.apply(&patched[i])
		if err := s.validate.Struct(patched[i]); err != nil {
			return true, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		found = true
	}
	if !found {
		return false, nil
	}

	s.tasks[key] = patched
	s.persist(TasksKey, s.tasks)
	return true, nil
}

func (s *Store) ToggleTask(id string) (Task, bool) {
	for _, task := range s.tasks[s.todayKey()] {
		if task.ID == id {
			completed := !task.Completed
			if _, err := s.UpdateTask(id, TaskPatch{Completed: &completed}); err != nil {
				s.log.WithError(err).Warnw("failed to toggle task", "id", id)
				return task, true
			}
			task.Completed = completed
			return task, true
		}
	}
	return Task{}, false
}

func (s *Store) DeleteTask(id string) bool {
	key := s.todayKey()
	tasks := s.tasks[key]
	kept := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(tasks) {
		return false
	}

	s.tasks[key] = kept
	s.persist(TasksKey, s.tasks)
	return true
}

// +---------------------+
// |                     |
// |     Persistence     |
// |                     |
// +---------------------+

// readBlob decodes the JSON stored under key into v. A missing key leaves v
// untouched.
func readBlob(storage Storage, key string, v any) error {
	raw, ok, err := storage.GetItem(key)
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).Errorw("failed to serialize", "key", key)
		return
	}
	if err := s.storage.SetItem(key, string(raw)); err != nil {
		s.log.WithError(err).Errorw("failed to save", "key", key)
	}
}
