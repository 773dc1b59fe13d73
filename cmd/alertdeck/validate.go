package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alertdeck/internal/deck"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a deck file",
		Long: `Validate parses a deck file and checks that every stack holds at most three
cards, every card has an id and a title, and no id is used twice.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := deck.ReadFile(path)
			out := cmd.OutOrStdout()
			var verr *deck.ValidationError
			switch {
			case errors.As(err, &verr):
				fmt.Fprintf(out, "%s has %d problem(s):\n", path, len(verr.Problems))
				for i, p := range verr.Problems {
					fmt.Fprintf(out, "%d. %s\n", i+1, p)
				}
				return fmt.Errorf("validation failed")
			case err != nil:
				return err
			}

			cards := 0
			for _, s := range f.Stacks {
				cards += len(s.Cards)
			}
			fmt.Fprintf(out, "%s is valid: %d stacks, %d cards\n", path, len(f.Stacks), cards)
			return nil
		},
	}
}
