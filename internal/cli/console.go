package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/conmx/conmx/pkg/controller"
	"github.com/conmx/conmx/pkg/dmx"
	cerrors "github.com/conmx/conmx/pkg/errors"
)

const (
	consolePage   = 16
	consoleFull   = 255
	consoleBar    = 24
	consoleCoarse = 16
)

// Console styles
var (
	consoleSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	consoleNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	consoleOverrideStyle = lipgloss.NewStyle().Foreground(colorYellow)
	consoleDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// consoleCommand creates the interactive fader console command.
func (c *CLI) consoleCommand() *cobra.Command {
	var universe int

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Interactive fader console for one universe",
		Long: `Open an interactive console showing one universe, sixteen channels per page.

Keys:
  ←/→        select channel
  ↑/↓        value ±1
  pgup/pgdn  value ±16
  o          override at full
  r          revert override
  0          zero the channel
  q          quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := c.newController()
			if _, err := ctl.Universe(universe); err != nil {
				return err
			}
			_, err := tea.NewProgram(NewConsoleModel(ctl, universe), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&universe, "universe", "u", 0, "universe id")
	return cmd
}

// =============================================================================
// ConsoleModel - Interactive fader console
// =============================================================================

// ConsoleModel is the bubbletea model for the fader console. Channel values
// are kept within 0..255.
type ConsoleModel struct {
	ctl      *controller.Controller
	Universe int
	Cursor   int
	Err      string
}

// NewConsoleModel creates a console over one universe of ctl.
func NewConsoleModel(ctl *controller.Controller, universe int) ConsoleModel {
	return ConsoleModel{ctl: ctl, Universe: universe}
}

func (m ConsoleModel) Init() tea.Cmd {
	return nil
}

func (m ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var err error
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "right", "l":
		if m.Cursor < dmx.UniverseSize-1 {
			m.Cursor++
		}
	case "up", "k":
		err = m.nudge(1)
	case "down", "j":
		err = m.nudge(-1)
	case "pgup":
		err = m.nudge(consoleCoarse)
	case "pgdown":
		err = m.nudge(-consoleCoarse)
	case "o":
		err = m.ctl.OverrideChannel(m.Universe, m.Cursor, consoleFull)
	case "r":
		err = m.ctl.RevertChannel(m.Universe, m.Cursor)
	case "0":
		err = m.ctl.SetChannel(m.Universe, m.Cursor, 0)
	}

	m.Err = ""
	if err != nil {
		m.Err = cerrors.UserMessage(err)
	}
	return m, nil
}

// nudge moves the base value of the selected channel by delta.
func (m ConsoleModel) nudge(delta int) error {
	st, _, err := m.ctl.Channel(m.Universe, m.Cursor)
	if err != nil {
		return err
	}
	v := min(max(int(st.Base)+delta, 0), consoleFull)
	return m.ctl.SetChannel(m.Universe, m.Cursor, uint32(v))
}

func (m ConsoleModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Universe %d", m.Universe)))
	b.WriteString("\n")
	b.WriteString(consoleDimStyle.Render("←/→ channel  ↑/↓ ±1  pgup/pgdn ±16  o override  r revert  0 zero  q quit"))
	b.WriteString("\n\n")

	first := m.Cursor / consolePage * consolePage
	states, err := m.ctl.Channels(m.Universe, first, first+consolePage-1)
	if err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + cerrors.UserMessage(err) + "\n")
		return b.String()
	}

	for _, st := range states {
		cursor := "  "
		style := consoleNormalStyle
		if st.Index == m.Cursor {
			cursor = "▸ "
			style = consoleSelectedStyle
		}
		filled := int(min(st.Value, consoleFull)) * consoleBar / consoleFull
		bar := strings.Repeat("█", filled) + consoleDimStyle.Render(strings.Repeat("·", consoleBar-filled))
		line := fmt.Sprintf("%s%3d %s %3d", cursor, st.Index, bar, st.Value)
		if st.Override {
			line += " " + consoleOverrideStyle.Render("override")
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.Err != "" {
		b.WriteString("\n" + styleIconError.Render(iconError) + " " + m.Err + "\n")
	}
	b.WriteString("\n")
	b.WriteString(consoleDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, dmx.UniverseSize)))
	return b.String()
}
