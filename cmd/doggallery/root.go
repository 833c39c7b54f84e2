package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/doggallery/internal/app"
)

var rootFlags struct {
	configPath string
	prefsPath  string
	theme      string
	logLevel   string
}

var rootCmd = &cobra.Command{
	Use:   "doggallery",
	Short: "Browse random dog pictures in your terminal",
	Long: `doggallery fetches ten random dog pictures from the dog.ceo API and shows
them as a grid of tiles. Press r to load a new batch.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), optionsFromFlags())
	},
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "doggallery: %v\n", err)
		return 1
	}
	return 0
}

func optionsFromFlags() app.Options {
	return app.Options{
		ConfigPath: rootFlags.configPath,
		PrefsPath:  rootFlags.prefsPath,
		ThemeName:  rootFlags.theme,
		LogLevel:   rootFlags.logLevel,
		Version:    version,
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&rootFlags.configPath, "config", "", "config file path (default ~/.config/doggallery/config.toml)")
	flags.StringVar(&rootFlags.prefsPath, "prefs", "", "preferences file path (default ~/.config/doggallery/prefs.toml)")
	flags.StringVar(&rootFlags.theme, "theme", "", "theme for this run: Nightfox, Kanagawa or Slate")
	flags.StringVar(&rootFlags.logLevel, "log-level", "", "log level override: debug, info, warn, error")
}
