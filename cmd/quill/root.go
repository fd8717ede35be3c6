package main

import (
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/internal/logging"
	"github.com/iw2rmb/quill/internal/storage"
	"github.com/iw2rmb/quill/internal/watcher"
)

type options struct {
	configPath string
	logFile    string
	noWatch    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "quill [file]",
		Short:        "A grapheme-aware terminal text editor",
		Version:      quill.Describe(commit, date),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(opts, path)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: ~/.config/quill/config.toml)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "",
		"write diagnostics to this file")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false,
		"do not reload the file when it changes on disk")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false,
		"render without colors")

	return cmd
}

func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.noWatch {
		cfg.Watch = false
	}
	return cfg, nil
}

func editorConfig(cfg *config.Config) editor.Config {
	ecfg := editor.DefaultConfig()
	ecfg.TabSize = cfg.TabSize
	ecfg.PageOverlap = cfg.PageOverlap
	ecfg.EmptyRowMarker = cfg.UI.EmptyRowMarker
	ecfg.ShowStatus = cfg.UI.ShowStatus
	return ecfg
}

// openView loads path into a new View. A missing file starts an empty buffer
// bound to path; any other failure is returned as a status message and the
// buffer stays unnamed.
func openView(ecfg editor.Config, store editor.Store, path string) (*editor.View, string) {
	view := editor.NewView(ecfg, store)
	if path == "" {
		return view, ""
	}

	err := view.Load(path)
	switch {
	case err == nil:
		return view, ""
	case errors.Is(err, fs.ErrNotExist):
		view.SetPath(path)
		return view, "new file"
	default:
		log.Error().Err(err).Str("path", path).Msg("open failed")
		return view, err.Error()
	}
}

func run(opts options, path string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	if opts.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ecfg := editorConfig(cfg)
	view, message := openView(ecfg, storage.NewFileStore(nil), path)

	if cfg.Watch && view.Path() != "" {
		w, err := watcher.New(watcher.DefaultConfig(view.Path()))
		if err != nil {
			log.Warn().Err(err).Msg("file watching disabled")
		} else if changes, err := w.Start(); err != nil {
			log.Warn().Err(err).Msg("file watching disabled")
			_ = w.Stop()
		} else {
			defer func() { _ = w.Stop() }()
			ecfg.Watch = editor.WatchFile(changes, view.Path())
		}
	}

	model := editor.New(ecfg, view).SetMessage(message)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
