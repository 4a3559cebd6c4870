package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nexidian/gocliselect"
)

// Prompter is every interactive side effect the commands need. The store
// never talks to it.
type Prompter interface {
	Interactive() bool
	Confirm(question string) bool
	ReadLine(prompt string) string
	ChooseMood(current Mood) Mood
}

// menuItem is one selectable line of an arrow-key menu.
type menuItem struct {
	label string
	id    string
}

// showMenu renders a menu and returns the id of the picked item.
type showMenu func(title string, items []menuItem) (any, error)

func displayMenu(title string, items []menuItem) (any, error) {
	menu := gocliselect.NewMenu(title)
	for _, item := range items {
		menu.AddItem(item.label, item.id)
	}
	return menu.Display()
}

type terminalPrompter struct {
	in    *bufio.Reader
	out   io.Writer
	isTTY bool
	menu  showMenu
}

func NewTerminalPrompter(in *os.File, out io.Writer) Prompter {
	isTTY := false
	if info, err := in.Stat(); err == nil {
		isTTY = info.Mode()&os.ModeCharDevice != 0
	}

	return &terminalPrompter{
		in:    bufio.NewReader(in),
		out:   out,
		isTTY: isTTY,
		menu:  displayMenu,
	}
}

func (p *terminalPrompter) Interactive() bool {
	return p.isTTY
}

func (p *terminalPrompter) Confirm(question string) bool {
	answer := strings.ToLower(p.ReadLine(question + " [y/N]: "))
	return answer == "y" || answer == "yes"
}

func (p *terminalPrompter) ReadLine(prompt string) string {
	fmt.Fprint(p.out, prompt)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// ChooseMood shows an arrow-key menu. Picking "keep", pressing escape or a
// menu failure returns current.
func (p *terminalPrompter) ChooseMood(current Mood) Mood {
	title := "How was the day?"
	if current != "" {
		title = fmt.Sprintf("How was the day? (now %s %s)", current.Emoji(), current.Label())
	}

	items := []menuItem{{label: "Keep", id: "keep"}}
	for _, mood := range Moods {
		items = append(items, menuItem{label: fmt.Sprintf("%s %s", mood.Emoji(), mood.Label()), id: string(mood)})
	}
	items = append(items, menuItem{label: "No mood", id: "none"})

	picked, err := p.menu(title, items)
	if err != nil {
		return current
	}
	choice, _ := picked.(string)

	switch choice {
	case "none":
		return ""
	case "keep", "":
		return current
	}
	if mood := Mood(choice); mood.Valid() {
		return mood
	}
	return current
}
