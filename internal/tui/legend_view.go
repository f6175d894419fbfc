package tui

import (
	"fmt"
	"strings"

	"github.com/LocoDelAssembly/taxonpages/internal/dataset"
	"github.com/LocoDelAssembly/taxonpages/internal/legend"
	"github.com/LocoDelAssembly/taxonpages/internal/tui/components"
	"github.com/LocoDelAssembly/taxonpages/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type legendKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultLegendKeyMap() legendKeyMap {
	return legendKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// --- Legend model ---

type legendViewModel struct {
	items   []legend.Item
	summary *dataset.Summary
	keys    legendKeyMap

	cursor int

	width  int
	height int
}

// newLegendViewModel lists the categories present in summary, or every
// category when summary is nil.
func newLegendViewModel(summary *dataset.Summary) (legendViewModel, error) {
	categories := legend.Categories()
	if summary != nil {
		categories = summary.Present()
	}

	items := make([]legend.Item, 0, len(categories))
	for _, c := range categories {
		e, err := legend.Get(c)
		if err != nil {
			return legendViewModel{}, err
		}
		items = append(items, legend.Item{Category: c, Entry: e})
	}

	return legendViewModel{
		items:   items,
		summary: summary,
		keys:    defaultLegendKeyMap(),
	}, nil
}

// RunLegendView starts the interactive legend browser. A nil summary
// browses the full legend.
func RunLegendView(summary *dataset.Summary) error {
	m, err := newLegendViewModel(summary)
	if err != nil {
		return fmt.Errorf("failed to build legend: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m legendViewModel) Init() tea.Cmd {
	return nil
}

func (m legendViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

// selected returns the item under the cursor.
func (m legendViewModel) selected() (legend.Item, bool) {
	if len(m.items) == 0 {
		return legend.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m legendViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	detail := ""
	if m.summary != nil {
		detail = fmt.Sprintf("%d features", m.summary.Total())
	}
	header := components.Header(m.width, "legend", detail)
	footer := components.Footer(m.width, m.keys.Up, m.keys.Down, m.keys.Quit)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderContent(contentH), footer)
}

func (m legendViewModel) renderContent(height int) string {
	title := styles.Title.Render("Map legend")

	if len(m.items) == 0 {
		combined := lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			styles.MutedText.Render("No mapped records in this dataset."),
		)
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined)
	}

	cardWidth := 60
	labelWidth := 14

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		style := styles.LegendRow
		prefix := "  "
		if i == m.cursor {
			style = styles.LegendRowSelected
			prefix = styles.AccentText.Render("> ")
		}

		line := styles.SwatchBlock(item.Background) + " " + item.Label
		if m.summary != nil {
			line += styles.LegendCount.Render(fmt.Sprintf(" (%d)", m.summary.Count(item.Category)))
		}
		rows = append(rows, prefix+style.Render(line))
	}

	list := strings.Join(rows, "\n")

	var details []string
	if item, ok := m.selected(); ok {
		field := func(name, value string) string {
			return styles.Label.Width(labelWidth).Render(name) + styles.Value.Render(value)
		}
		details = append(details,
			field("Key", string(item.Category)),
			field("Label", item.Label),
			field("Background", item.Background),
			field("Swatch", styles.SwatchBlock(item.Background)),
		)
	}

	card := styles.Card.Width(cardWidth).Render(list + "\n\n" + strings.Join(details, "\n"))
	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined)
}
