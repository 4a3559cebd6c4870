package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type App struct {
	store  EntryStore
	prompt Prompter
	out    io.Writer
	year   int
}

func NewApp(store EntryStore, prompt Prompter, out io.Writer, year int) *App {
	return &App{
		store:  store,
		prompt: prompt,
		out:    out,
		year:   year,
	}
}

// +---------------------+
// |                     |
// |        Views        |
// |                     |
// +---------------------+

func (a *App) ShowYear(year int) error {
	fmt.Fprintf(a.out, "Goal %d\n\n", year)

	headers := []string{"Month", "Entries", "Moods"}
	var rows [][]string
	for _, month := range Months {
		entries := a.store.MonthEntries(year, month)

		count := ""
		if a.store.HasMonthData(year, month) {
			count = strconv.Itoa(len(entries))
		}

		var moods strings.Builder
		for _, week := range CalendarGrid(month, year) {
			for _, day := range week {
				if entry, ok := entries[day]; ok && entry.Mood.Valid() {
					moods.WriteString(entry.Mood.Emoji())
				}
			}
		}

		rows = append(rows, []string{month.Title(), count, moods.String()})
	}

	PrintTable(a.out, headers, rows, nil)
	return nil
}

func (a *App) ShowMonth(month MonthName, year int) error {
	entries := a.store.MonthEntries(year, month)
	marks := make(map[int]string, len(entries))
	for day, entry := range entries {
		marks[day] = dayMark(entry)
	}

	today := EmptyCell
	if now := a.store.Now(); now.Year() == year && MonthFromTime(now.Month()) == month {
		today = now.Day()
	}

	PrintCalendar(a.out, fmt.Sprintf("%s %d", month.Title(), year), CalendarGrid(month, year), marks, today)
	return nil
}

func (a *App) ShowDay(month MonthName, day, year int) error {
	if err := ValidateDate(month, year, day); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %d, %d\n", month.Title(), day, year)

	entry, ok := a.store.GetDayEntry(year, month, day)
	if !ok || !entry.HasData() {
		fmt.Fprintln(a.out, "Nothing written for this day yet.")
		return nil
	}

	if entry.Mood != "" {
		fmt.Fprintf(a.out, "Mood: %s %s\n", entry.Mood.Emoji(), entry.Mood.Label())
	}
	if entry.Text != "" {
		fmt.Fprintf(a.out, "\n%s\n", entry.Text)
	}
	if entry.Content != "" {
		fmt.Fprintf(a.out, "\n%s\n", entry.Content)
	}
	return nil
}

// +---------------------+
// |                     |
// |      Day edits      |
// |                     |
// +---------------------+

type WriteOptions struct {
	Text string
	Mood string
	HTML bool
}

// WriteDay loads the current entry, applies the given changes and saves the
// whole entry back. Missing mood and text are asked for when interactive.
func (a *App) WriteDay(month MonthName, day, year int, opts WriteOptions) error {
	if err := ValidateDate(month, year, day); err != nil {
		return err
	}

	entry, _ := a.store.GetDayEntry(year, month, day)

	switch {
	case opts.Mood == "none":
		entry.Mood = ""
	case opts.Mood != "":
		mood := Mood(strings.ToLower(opts.Mood))
		if !mood.Valid() {
			return fmt.Errorf("%w: unknown mood %q", ErrValidation, opts.Mood)
		}
		entry.Mood = mood
	case a.prompt.Interactive():
		entry.Mood = a.prompt.ChooseMood(entry.Mood)
	}

	text := strings.TrimSpace(opts.Text)
	if text == "" && a.prompt.Interactive() {
		text = a.prompt.ReadLine("Write your thoughts here (press Enter to keep): ")
	}
	if text != "" {
		if opts.HTML {
			entry.Content = text
		} else {
			entry.Text = text
		}
	}

	if !entry.HasData() {
		return fmt.Errorf("%w: nothing to write, use 'day delete' to remove an entry", ErrValidation)
	}

	if err := a.store.SaveDayEntry(year, month, day, entry); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %s %d, %d\n", month.Title(), day, year)
	return nil
}

func (a *App) DeleteDay(month MonthName, day, year int, force bool) error {
	if err := ValidateDate(month, year, day); err != nil {
		return err
	}

	if _, ok := a.store.GetDayEntry(year, month, day); !ok {
		fmt.Fprintln(a.out, "Nothing to delete.")
		return nil
	}

	if !force && !a.prompt.Confirm("Delete this entry?") {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	a.store.DeleteDayEntry(year, month, day)
	fmt.Fprintf(a.out, "Deleted %s %d, %d\n", month.Title(), day, year)
	return nil
}

// +---------------------+
// |                     |
// |        Tasks        |
// |                     |
// +---------------------+

func (a *App) ListTasks() error {
	tasks := a.store.TodayTasks()

	fmt.Fprintln(a.out, "Today's Tasks")
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks for today. Add one with 'goalnote task add'.")
		return nil
	}

	headers := []string{"#", "Done", "Task", "Time", "Added", "ID"}
	var rows [][]string
	done := 0
	for i, task := range tasks {
		if task.Completed {
			done++
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			checkbox(task.Completed),
			task.Text,
			task.Time,
			FormatCreatedAt(task.CreatedAt),
			shortID(task.ID),
		})
	}

	footers := []string{"", fmt.Sprintf("%d/%d", done, len(tasks)), "", "", "", ""}
	PrintTable(a.out, headers, rows, footers)
	return nil
}

func (a *App) AddTask(text, at string) error {
	task := a.store.NewTask(text, at)
	if err := a.store.AddTask(task); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added task %s\n", shortID(task.ID))
	return nil
}

func (a *App) ToggleTask(ref string) error {
	id, err := a.resolveTask(ref)
	if err != nil {
		return err
	}

	task, _ := a.store.ToggleTask(id)
	fmt.Fprintf(a.out, "%s %s\n", checkbox(task.Completed), task.Text)
	return nil
}

func (a *App) EditTask(ref string, patch TaskPatch) error {
	id, err := a.resolveTask(ref)
	if err != nil {
		return err
	}
	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		patch.Text = &text
	}
	if patch.Time != nil {
		at := strings.TrimSpace(*patch.Time)
		patch.Time = &at
	}

	if _, err := a.store.UpdateTask(id, patch); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated task %s\n", shortID(id))
	return nil
}

func (a *App) RemoveTask(ref string) error {
	id, err := a.resolveTask(ref)
	if err != nil {
		return err
	}

	a.store.DeleteTask(id)
	fmt.Fprintf(a.out, "Deleted task %s\n", shortID(id))
	return nil
}

// resolveTask accepts a 1-based position in today's list or an id prefix.
func (a *App) resolveTask(ref string) (string, error) {
	tasks := a.store.TodayTasks()
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrTaskNotFound)
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(tasks) {
		return tasks[n-1].ID, nil
	}

	var match string
	for _, task := range tasks {
		if strings.HasPrefix(task.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("task reference %q is ambiguous", ref)
			}
			match = task.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %q", ErrTaskNotFound, ref)
	}
	return match, nil
}

// +---------------------+
// |                     |
// |   Export / Import   |
// |                     |
// +---------------------+

func (a *App) Export(dir string) error {
	path, err := WriteBackup(a.store, dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Exported to %s\n", path)
	return nil
}

func (a *App) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	if err := a.store.Import(data); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Imported %s\n", path)
	return nil
}
