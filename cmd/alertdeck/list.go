package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alertdeck/internal/config"
	"alertdeck/internal/deck"
)

var (
	listStackHeading = color.New(color.Bold).SprintFunc()
	listSevCritical  = color.New(color.FgRed, color.Bold).SprintFunc()
	listSevWarning   = color.New(color.FgYellow).SprintFunc()
	listSevInfo      = color.New(color.FgCyan).SprintFunc()
)

func newListCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the stacks and cards of a deck",
		Example: `  # The built-in sample deck
  alertdeck list

  # A deck file
  alertdeck list --deck ./oncall.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			d, err := loadDeck(cfg.Deck)
			if err != nil {
				return err
			}
			colorize := isTerminal(cmd.OutOrStdout()) && !color.NoColor
			return writeDeck(cmd.OutOrStdout(), d, colorize)
		},
	}
}

// writeDeck prints one heading per stack followed by its cards in slot order.
func writeDeck(w io.Writer, d *deck.Deck, colorize bool) error {
	for _, s := range d.Stacks {
		heading := fmt.Sprintf("[%s] %s (%d/%d)", s.Icon, s.Name, s.Len(), deck.MaxCards)
		if colorize {
			heading = listStackHeading(heading)
		}
		if _, err := fmt.Fprintln(w, heading); err != nil {
			return err
		}
		if s.Empty() {
			if _, err := fmt.Fprintln(w, "  (empty)"); err != nil {
				return err
			}
			continue
		}
		for _, c := range s.Cards() {
			sev := fmt.Sprintf("%-8s", c.Severity)
			if colorize {
				sev = colorizeSeverity(c.Severity, sev)
			}
			if _, err := fmt.Fprintf(w, "  %-5s  %s  %-14s  %s\n", c.Slot, sev, c.ID, c.Title); err != nil {
				return err
			}
		}
	}
	return nil
}

func colorizeSeverity(s deck.Severity, text string) string {
	switch s {
	case deck.SeverityCritical:
		return listSevCritical(text)
	case deck.SeverityWarning:
		return listSevWarning(text)
	case deck.SeverityInfo:
		return listSevInfo(text)
	default:
		return text
	}
}
