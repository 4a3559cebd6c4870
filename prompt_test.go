package main

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScriptedPrompter(input string, picked any, err error) (*terminalPrompter, *[]menuItem) {
	var shown []menuItem
	return &terminalPrompter{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: &bytes.Buffer{},
		menu: func(title string, items []menuItem) (any, error) {
			shown = items
			return picked, err
		},
	}, &shown
}

func TestTerminalPrompter_ChooseMood(t *testing.T) {
	tests := []struct {
		name    string
		current Mood
		picked  any
		err     error
		want    Mood
	}{
		{name: "pick a mood", current: "", picked: "sad", want: MoodSad},
		{name: "replace a mood", current: MoodHappy, picked: "very-sad", want: MoodVerySad},
		{name: "keep", current: MoodAngry, picked: "keep", want: MoodAngry},
		{name: "escape", current: MoodNeutral, picked: "", want: MoodNeutral},
		{name: "clear", current: MoodHappy, picked: "none", want: ""},
		{name: "menu error", current: MoodSad, picked: nil, err: errors.New("no items"), want: MoodSad},
		{name: "unexpected id type", current: MoodSad, picked: 7, want: MoodSad},
		{name: "unknown id", current: MoodSad, picked: "GOLD", want: MoodSad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newScriptedPrompter("", tt.picked, tt.err)
			assert.Equal(t, tt.want, p.ChooseMood(tt.current))
		})
	}
}

func TestTerminalPrompter_MoodMenuItems(t *testing.T) {
	p, shown := newScriptedPrompter("", "keep", nil)
	p.ChooseMood("")

	items := *shown
	require.Len(t, items, len(Moods)+2)
	assert.Equal(t, "keep", items[0].id)
	assert.Equal(t, "none", items[len(items)-1].id)
	for i, mood := range Moods {
		assert.Equal(t, string(mood), items[i+1].id)
		assert.Contains(t, items[i+1].label, mood.Emoji())
	}
}

func TestTerminalPrompter_ConfirmAndReadLine(t *testing.T) {
	p, _ := newScriptedPrompter("Yes\nn\n  some text  \n", nil, nil)

	assert.True(t, p.Confirm("Delete?"))
	assert.False(t, p.Confirm("Delete?"))
	assert.Equal(t, "some text", p.ReadLine("> "))
	assert.Equal(t, "", p.ReadLine("> "))
}
