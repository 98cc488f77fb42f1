package multiselect

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"golang.org/x/term"
)

// Model is the UI state for a checkbox multi-select menu.
type Model struct {
	Title    string
	Items    []string
	Cursor   int
	Selected map[int]bool
	Ctx      context.Context
}

// InitialModel creates a new Model with the given title and items.
func InitialModel(ctx context.Context, title string, items []string) Model {
	return Model{
		Title:    title,
		Items:    items,
		Selected: make(map[int]bool),
		Ctx:      ctx,
	}
}

// Init initializes the bubbletea model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles user input and updates the model state accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "up", "k":
				if m.Cursor > 0 {
					m.Cursor--
				}
			case "down", "j":
				if m.Cursor < len(m.Items)-1 {
					m.Cursor++
				}
			case " ":
				m.Selected[m.Cursor] = !m.Selected[m.Cursor]
			case "enter":
				return m, tea.Quit
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}
}

// View renders the current state of the menu
func (m Model) View() string {
	s := m.Title + " (space to select/unselect, enter when done):\n\n"

	for i, item := range m.Items {
		cursor := " "
		if m.Cursor == i {
			cursor = ">"
		}

		checked := " "
		if m.Selected[i] {
			checked = "x"
		}

		s += fmt.Sprintf("%s [%s] %s\n", cursor, checked, item)
	}

	s += "\n(press q to quit)\n"

	return s
}

// Run shows the menu and returns the selected item indexes. It needs a real
// terminal; piped sessions should pass selections via flags instead.
func Run(ctx context.Context, title string, items []string) ([]int, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, eris.New("interactive selection needs a terminal, pass the values as flags instead")
	}

	final, err := tea.NewProgram(InitialModel(ctx, title, items)).Run()
	if err != nil {
		return nil, eris.Wrap(err, "Failed to run selection menu")
	}

	model, ok := final.(Model)
	if !ok {
		return nil, eris.New("unexpected selection model")
	}
	var picked []int
	for i := range model.Items {
		if model.Selected[i] {
			picked = append(picked, i)
		}
	}
	return picked, nil
}
