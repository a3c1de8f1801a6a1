// Command toggle-demo renders the Toggle compound components and clicks the switch.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AnatoleLucet/compound/internal/demo"
	"github.com/AnatoleLucet/compound/toggle"
	"github.com/AnatoleLucet/compound/view"
)

var (
	logger *zap.Logger

	configPath    string
	toggles       int
	notifyOnMount bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "toggle-demo",
	Short: "Render the " + demo.Title + " demo",
	Long: `Mounts a Toggle provider with its On, Off and Button components,
prints the page after every render and clicks the switch --toggles times.
Each change of the flag is reported through onToggle, which logs it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		// flags set on the command line win over the file
		if !cmd.Flags().Changed("toggles") {
			toggles = cfg.Toggles
		}
		if !cmd.Flags().Changed("notify-on-mount") {
			notifyOnMount = cfg.NotifyOnMount
		}
		if !cmd.Flags().Changed("verbose") {
			verbose = cfg.Verbose
		}
		if toggles < 0 {
			return fmt.Errorf("--toggles must not be negative")
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), toggles, toggle.Options{
			NotifyOnMount: notifyOnMount,
			Logger:        logger,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.Flags().IntVarP(&toggles, "toggles", "n", 2, "number of clicks on the switch")
	rootCmd.Flags().BoolVar(&notifyOnMount, "notify-on-mount", false, "report the initial flag to onToggle")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
}

// run mounts the demo, prints every render to w and clicks the switch n times.
func run(w io.Writer, n int, opts toggle.Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	root, err := view.Mount(demo.Usage(opts), view.WithLogger(opts.Logger))
	if err != nil {
		return fmt.Errorf("failed to mount demo: %w", err)
	}
	defer root.Unmount()

	stop := root.Watch(func(html string) {
		fmt.Fprintln(w, html)
	})
	defer stop()

	for i := 0; i < n; i++ {
		btn := root.FindByID(demo.SwitchID)
		if btn == nil {
			return fmt.Errorf("switch %q not rendered", demo.SwitchID)
		}

		opts.Logger.Debug("clicking switch", zap.Int("click", i+1))
		if err := root.Dispatch(btn, "onclick"); err != nil {
			return fmt.Errorf("click %d: %w", i+1, err)
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
