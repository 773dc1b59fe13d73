package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"alertdeck/internal/config"
	"alertdeck/internal/deck"
	"alertdeck/internal/logging"
	"alertdeck/internal/telemetry"
	"alertdeck/internal/ui"
)

func newRootCommand() *cobra.Command {
	v := config.New()
	var noMouse bool

	cmd := &cobra.Command{
		Use:   "alertdeck",
		Short: "Browse stacks of alert cards in the terminal",
		Long: `alertdeck shows alert cards grouped into stacks. Zoom a stack to rotate its
cards, hide cards you have dealt with, and switch on manager mode to delete
them for good.

Without --deck a built-in sample deck is shown.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if noMouse {
				cfg.Mouse = false
			}
			return runBoard(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	pf := cmd.PersistentFlags()
	pf.String(config.KeyDeck, "", "Deck file (.toml, .yaml or .yml)")
	pf.String(config.KeyLogLevel, "", "Log level: debug, info, warn or error (empty disables logging)")
	pf.String(config.KeyLogFile, config.DefaultLogFile(), "Log file path")

	f := cmd.Flags()
	f.Bool(config.KeyManager, false, "Start in manager mode (card icons delete)")
	f.String(config.KeyMarkdownStyle, "dark", "Card body style: dark, light or notty")
	f.Bool(config.KeyMouse, true, "Enable mouse input")
	f.BoolVar(&noMouse, "no-mouse", false, "Disable mouse input")

	cmd.AddCommand(newListCommand(v), newValidateCommand())
	return cmd
}

// loadDeck reads path, or returns the sample deck when path is empty.
func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Sample(), nil
	}
	return deck.LoadFile(path)
}

func runBoard(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	if !isTerminal(in) || !isTerminal(out) {
		return errors.New("alertdeck needs an interactive terminal (use `alertdeck list` to print the deck)")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := loadDeck(cfg.Deck)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.NewFile(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	tp, err := telemetry.NewProvider(ctx)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		tp = telemetry.Disabled()
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("flush traces", zap.Error(err))
		}
	}()

	logger.Info("starting",
		zap.String("deck", cfg.Deck),
		zap.Int("stacks", d.Len()),
		zap.Bool("manager", cfg.Manager),
		zap.Bool("mouse", cfg.Mouse),
		zap.Bool("tracing", tp.Enabled()),
	)

	app := ui.NewAppModel(d, ui.AppConfig{
		Manager:       cfg.Manager,
		MarkdownStyle: cfg.MarkdownStyle,
		Logger:        logger,
		Tracer:        tp.Tracer(),
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(app.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func isTerminal(v any) bool {
	type fdProvider interface {
		Fd() uintptr
	}
	if f, ok := v.(fdProvider); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
