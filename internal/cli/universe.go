package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/conmx/conmx/pkg/controller"
	cerrors "github.com/conmx/conmx/pkg/errors"
)

// universeFlags holds the flags for the universe show command.
type universeFlags struct {
	universe  int
	sets      []string
	overrides []string
	reverts   []string
	from, to  int
}

// universeCommand creates the universe command group.
func (c *CLI) universeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "universe",
		Short: "Inspect and edit DMX universes",
	}
	cmd.AddCommand(c.universeShowCommand())
	return cmd
}

func (c *CLI) universeShowCommand() *cobra.Command {
	var flags universeFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Apply channel writes and print a channel table",
		Long: `Build the configured universes, apply the given writes and print the
channels in the selected range.

Writes are applied as all --set values, then all --override values, then
all --revert channels, each in the order given.`,
		Example: `  conmx universe show --set 1=255 --set 2=128 --to 7
  conmx universe show --universe 1 --set 0=10 --override 0=255 --revert 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUniverseShow(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().IntVarP(&flags.universe, "universe", "u", 0, "universe id")
	cmd.Flags().StringArrayVar(&flags.sets, "set", nil, "set a base value (channel=value, repeatable)")
	cmd.Flags().StringArrayVar(&flags.overrides, "override", nil, "override a channel (channel=value, repeatable)")
	cmd.Flags().StringArrayVar(&flags.reverts, "revert", nil, "revert an override (channel, repeatable)")
	cmd.Flags().IntVar(&flags.from, "from", 0, "first channel to print")
	cmd.Flags().IntVar(&flags.to, "to", 15, "last channel to print")

	return cmd
}

func (c *CLI) runUniverseShow(w io.Writer, flags universeFlags) error {
	if err := cerrors.ValidateUniverseID(flags.universe); err != nil {
		return err
	}
	if flags.from > flags.to {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "--from %d is after --to %d", flags.from, flags.to)
	}

	ctl := c.newController()
	if err := applyWrites(ctl, flags); err != nil {
		return err
	}

	states, err := ctl.Channels(flags.universe, flags.from, flags.to)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Universe %d", flags.universe)
	if label := c.settings().Label(flags.universe); label != "" {
		title += " · " + label
	}
	fmt.Fprintln(w, StyleTitle.Render(title))
	fmt.Fprintln(w, channelTable(states))
	return nil
}

func applyWrites(ctl *controller.Controller, flags universeFlags) error {
	for _, s := range flags.sets {
		ch, v, err := cerrors.ParseAssignment(s)
		if err != nil {
			return err
		}
		if err := ctl.SetChannel(flags.universe, ch, v); err != nil {
			return err
		}
	}
	for _, s := range flags.overrides {
		ch, v, err := cerrors.ParseAssignment(s)
		if err != nil {
			return err
		}
		if err := ctl.OverrideChannel(flags.universe, ch, v); err != nil {
			return err
		}
	}
	for _, s := range flags.reverts {
		ch, err := cerrors.ParseChannelIndex(s)
		if err != nil {
			return err
		}
		if err := ctl.RevertChannel(flags.universe, ch); err != nil {
			return err
		}
	}
	return nil
}

// channelTable renders channel states as a bordered table.
func channelTable(states []controller.ChannelState) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(states))
	for i, st := range states {
		override := ""
		if st.Override {
			override = "override"
		}
		rows[i] = []string{
			strconv.Itoa(st.Index),
			strconv.FormatUint(uint64(st.Base), 10),
			strconv.FormatUint(uint64(st.Value), 10),
			override,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Ch", "Base", "Value", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(states) && states[row].Override {
				return base.Foreground(colorYellow)
			}
			if col == 2 {
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})
	return t.Render()
}
