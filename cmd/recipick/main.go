package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"recipick/internal/clipboard"
	"recipick/internal/config"
	"recipick/internal/eventbus"
	"recipick/internal/notify"
	"recipick/internal/roster"
	"recipick/internal/ui"
)

var (
	configPath    string
	clipboardMode string
	encoding      string
	noWatch       bool
	logFilePath   string
	debugMode     bool
)

var rootCmd = &cobra.Command{
	Use:   "recipick [csv-file]",
	Short: "Pick To and CC mail recipients from a ranked contact list",
	Long: `recipick reads a CSV ranking of past recipients and shows two panes,
To and CC. Search each pane with keywords, uncheck the names you do not
want and copy the rest to the clipboard joined with ";".`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	rootCmd.Flags().StringVar(&clipboardMode, "clipboard", "", "Clipboard backend: auto, system or osc52")
	rootCmd.Flags().StringVar(&encoding, "encoding", "", "CSV encoding: utf-8 or shift_jis")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the CSV when it changes")
	rootCmd.Flags().StringVar(&logFilePath, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configService() config.ConfigService {
	if configPath != "" {
		return config.NewConfigServiceWithPath(configPath)
	}
	return config.NewConfigService()
}

func runInit(cmd *cobra.Command, args []string) error {
	svc := configService()
	if _, err := os.Stat(svc.Path()); err == nil {
		return fmt.Errorf("config already exists at %s", svc.Path())
	}
	if err := svc.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
	return nil
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := configService().Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if len(args) > 0 {
		cfg.CSVPath = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("clipboard") {
		cfg.Clipboard = clipboardMode
	}
	if flags.Changed("encoding") {
		cfg.Encoding = encoding
	}
	if noWatch {
		cfg.Watch = false
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFilePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if abs, err := filepath.Abs(cfg.CSVPath); err == nil {
		cfg.CSVPath = abs
	}
	return cfg, nil
}

func setupLogging(path string) func() {
	if path == "" {
		path = config.DefaultLogFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { logFile.Close() }
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()
	log.Printf("recipick starting: source=%s encoding=%s clipboard=%s watch=%t", cfg.CSVPath, cfg.Encoding, cfg.Clipboard, cfg.Watch)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// OSC 52 goes to stderr so it never interleaves with the renderer's frames
	sink, err := clipboard.New(cfg.Clipboard, os.Stderr)
	if err != nil {
		return err
	}

	bus := eventbus.New()
	defer bus.Close()

	notifier := notify.New(bus, cfg.DesktopNotify)
	defer notifier.Close()

	var watcher *roster.Watcher
	if cfg.Watch {
		watcher, err = roster.NewWatcher(cfg.CSVPath, cfg.Encoding, bus)
		if err != nil {
			log.Printf("File watching disabled: %v", err)
		} else if err := watcher.Start(ctx); err != nil {
			log.Printf("File watching disabled: %v", err)
			watcher.Stop()
			watcher = nil
		}
	}

	uiModel := ui.NewModel(ui.Options{
		Config: cfg,
		Bus:    bus,
		Sink:   sink,
		Debug:  debugMode,
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	unsubscribe := []func(){
		bus.Subscribe(eventbus.EventCandidatesReloaded, forward),
		bus.Subscribe(eventbus.EventSourceError, forward),
	}

	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	_, runErr := p.Run()

	// Cleanup
	if watcher != nil {
		watcher.Stop()
	}
	for _, unsub := range unsubscribe {
		unsub()
	}
	cancel()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}
