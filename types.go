package main

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodVerySad Mood = "very-sad"
	MoodAngry   Mood = "angry"
)

// Moods in picker order.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodVerySad, MoodAngry}

func (m Mood) Valid() bool {
	for _, mood := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

func (m Mood) Label() string {
	switch m {
	case MoodHappy:
		return "Happy"
	case MoodNeutral:
		return "Neutral"
	case MoodSad:
		return "Sad"
	case MoodVerySad:
		return "Very Sad"
	case MoodAngry:
		return "Angry"
	}
	return ""
}

func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodNeutral:
		return "😐"
	case MoodSad:
		return "😢"
	case MoodVerySad:
		return "😔"
	case MoodAngry:
		return "😠"
	}
	return ""
}

type (
	// DayEntry is replaced as a whole on every save.
	DayEntry struct {
		Mood    Mood   `json:"mood,omitempty" validate:"omitempty,oneof=happy neutral sad very-sad angry"`
		Text    string `json:"text,omitempty"`
		Content string `json:"content,omitempty"` // html
	}

	Task struct {
		ID        string `json:"id" validate:"required"`
		Text      string `json:"text" validate:"required,max=500"`
		Completed bool   `json:"completed"`
		Time      string `json:"time,omitempty" validate:"max=32"`
		CreatedAt int64  `json:"createdAt"` // unix millis
	}

	// TaskPatch holds the fields UpdateTask changes; nil fields are left alone.
	TaskPatch struct {
		Text      *string
		Completed *bool
		Time      *string
	}

	// day number -> entry
	MonthData map[int]DayEntry

	// month name -> days
	YearData map[MonthName]MonthData

	// year ("2026") -> months
	AppData map[string]YearData

	// date key ("2026-10-18") -> tasks in creation order
	TasksData map[string][]Task
)

func (e DayEntry) HasData() bool {
	return e.Mood != "" || e.Text != "" || e.Content != ""
}

func (p TaskPatch) apply(t *Task) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Time != nil {
		t.Time = *p.Time
	}
}
