// Command whiteboard is a demo embedder: a terminal UI whose Elm-style
// update loop acts as the host render/commit cycle for a toy grid-canvas
// engine. It exists to show the host lifecycle end to end: async store
// loading, mount sequencing, live camera options, identity churn (store
// swap) and crash isolation.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/inkboard/canvashost/lifecycle"
)

func main() {
	var (
		configPath string
		dark       bool
		autoFocus  bool
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "whiteboard",
		Short: "Interactive canvas demo for the canvashost lifecycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("whiteboard needs an interactive terminal")
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dark") {
				cfg.Dark = dark
			}
			if cmd.Flags().Changed("autofocus") {
				cfg.AutoFocus = autoFocus
			}

			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync()
				lifecycle.SetLogger(logger)
			}

			p := tea.NewProgram(newAppModel(cfg), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "Path to TOML config file")
	root.Flags().BoolVar(&dark, "dark", false, "Force dark theme")
	root.Flags().BoolVar(&autoFocus, "autofocus", false, "Focus the canvas on mount")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log lifecycle events")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
