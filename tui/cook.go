// Package tui provides a Bubble Tea cooking view for one recipe. Wide
// terminals show a single step at a time that arrow keys, buttons or a mouse
// drag move through; narrow terminals show every step.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"recipebox/models"
	"recipebox/stepnav"
	"recipebox/view"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D")).
			Bold(true)

	activeStepStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// SwipeCells is the horizontal drag, in terminal cells, that counts as a
// swipe.
const SwipeCells = 8

type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Prev, k.Next, k.Quit} }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Prev: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "previous step")),
	Next: key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next step")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the Bubble Tea model for the cooking view.
type Model struct {
	recipe *models.Recipe
	nav    *stepnav.Navigator
	help   help.Model

	// notes is the pre-rendered markdown for description and notes.
	notes string

	width  int
	height int
}

// New builds the model. A nil renderer shows description and notes as plain
// text.
func New(recipe *models.Recipe, renderer *glamour.TermRenderer) Model {
	nav := stepnav.New(SwipeCells)
	nav.SetSteps(len(recipe.Steps))

	return Model{
		recipe: recipe,
		nav:    nav,
		help:   help.New(),
		notes:  renderNotes(recipe, renderer),
	}
}

// NewRenderer returns the markdown renderer the cook command uses.
func NewRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
}

func renderNotes(recipe *models.Recipe, renderer *glamour.TermRenderer) string {
	var md []string
	if recipe.Description != "" {
		md = append(md, recipe.Description)
	}
	if recipe.Notes != "" {
		md = append(md, "**Notes:** "+recipe.Notes)
	}
	if len(md) == 0 {
		return ""
	}

	text := strings.Join(md, "\n\n")
	if renderer == nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// terminal cells are about twice as tall as they are wide
		m.nav.Resize(msg.Width, msg.Height*2)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Prev):
			m.nav.Key("left")
		case key.Matches(msg, keys.Next):
			m.nav.Key("right")
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			m.nav.TouchStart(float64(msg.X))
		case tea.MouseActionRelease:
			m.nav.TouchEnd(float64(msg.X))
		}
	}
	return m, nil
}

// Step reports the focused step index.
func (m Model) Step() int { return m.nav.Current() }

// Landscape reports whether steps are shown one at a time.
func (m Model) Landscape() bool { return m.nav.Landscape() }

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.recipe.Title))
	b.WriteString("\n")
	if m.recipe.Source != "" {
		b.WriteString(sourceStyle.Render("source: " + m.recipe.Source))
		b.WriteString("\n")
	}
	if m.recipe.Yield != "" {
		b.WriteString(dimStyle.Render("yield: " + m.recipe.Yield))
		b.WriteString("\n")
	}
	if m.notes != "" {
		b.WriteString("\n" + m.notes + "\n")
	}

	b.WriteString("\nIngredients\n")
	for _, ing := range m.recipe.Ingredients {
		b.WriteString("  • " + view.IngredientLine(ing) + "\n")
	}

	b.WriteString("\nSteps\n")
	switch {
	case m.nav.Total() == 0:
		b.WriteString(dimStyle.Render("  (no steps)") + "\n")
	case m.nav.Landscape():
		b.WriteString(counterStyle.Render(m.nav.Counter()) + "\n")
		step := m.recipe.Steps[m.nav.Current()]
		if m.width > 8 {
			step = lipgloss.NewStyle().Width(m.width - 8).Render(step)
		}
		b.WriteString(activeStepStyle.Render(step) + "\n")
		b.WriteString(dimStyle.Render(m.buttons()) + "\n")
	default:
		for i, step := range m.recipe.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	b.WriteString("\n" + m.help.View(keys))
	return b.String()
}

func (m Model) buttons() string {
	prev, next := "← Previous", "Next →"
	if !m.nav.HasPrev() {
		prev = strings.Repeat(" ", len([]rune(prev)))
	}
	if !m.nav.HasNext() {
		next = ""
	}
	return prev + "    " + next
}

// Run starts the program in the alternate screen with mouse support.
func Run(recipe *models.Recipe, renderer *glamour.TermRenderer) error {
	p := tea.NewProgram(New(recipe, renderer), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
