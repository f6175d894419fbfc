package tui

import (
	"fmt"
	"strings"

	"github.com/LocoDelAssembly/taxonpages/internal/config"
	"github.com/LocoDelAssembly/taxonpages/internal/tui/components"
	"github.com/LocoDelAssembly/taxonpages/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Config messages ---

type configSavedMsg struct{}

type configSaveErrorMsg struct {
	err error
}

type configKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Quit   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func defaultConfigKeyMap() configKeyMap {
	return configKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
		Edit:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e", "edit")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// --- Config model ---

type configViewModel struct {
	cfg  *config.Config
	keys []config.KeySpec
	km   configKeyMap

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status     string
	statusKind components.StatusKind
}

func newConfigViewModel(cfg *config.Config) configViewModel {
	return configViewModel{
		cfg:  cfg,
		keys: config.Keys,
		km:   defaultConfigKeyMap(),
	}
}

// RunConfigView starts the interactive config viewer/editor TUI.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newConfigViewModel(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case configSavedMsg:
		m.editing = false
		m.status = "Configuration saved"
		m.statusKind = components.StatusSuccess
		return m, nil

	case configSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.statusKind = components.StatusError
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.km.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.km.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.km.Down):
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.km.Edit):
		spec := m.keys[m.cursor]
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Focus()
		ti.Width = 24
		ti.Placeholder = "empty to unset"
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m configViewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.km.Cancel):
		m.editing = false
		return m, nil
	case key.Matches(msg, m.km.Save):
		spec := m.keys[m.cursor]
		if err := spec.Set(m.cfg, m.editor.Value()); err != nil {
			m.status = "Error: " + err.Error()
			m.statusKind = components.StatusError
			return m, nil
		}
		return m, m.saveConfig()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m configViewModel) saveConfig() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "config", "")

	var footer string
	if m.editing {
		footer = components.Footer(m.width, m.km.Save, m.km.Cancel)
	} else {
		footer = components.Footer(m.width, m.km.Up, m.km.Down, m.km.Edit, m.km.Quit)
	}

	statusBar := components.StatusBar(m.width, m.status, m.statusKind)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(statusBar), 1)

	sections := []string{header, m.renderContent(contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m configViewModel) renderContent(height int) string {
	title := styles.Title.Render("Configuration")

	cardWidth := 56
	labelWidth := 12

	rows := make([]string, 0, len(m.keys)*2)
	for i, spec := range m.keys {
		value := spec.Get(m.cfg)
		if value == "" {
			value = "(not set)"
		}

		if i != m.cursor {
			rows = append(rows, "  "+
				styles.MutedText.Width(labelWidth).Render(spec.Name)+
				styles.MutedText.Render(value))
			continue
		}

		name := styles.Label.Width(labelWidth).Render(spec.Name)
		if m.editing {
			rows = append(rows, styles.AccentText.Render("> ")+name+m.editor.View())
			continue
		}
		rows = append(rows,
			styles.AccentText.Render("> ")+name+styles.Value.Bold(true).Render(value),
			strings.Repeat(" ", 4)+styles.MutedText.Italic(true).Render(spec.Description),
		)
	}

	card := styles.Card.Width(cardWidth).Render(strings.Join(rows, "\n"))
	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined)
}
