package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"subfuse/internal/config"
	"subfuse/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "subfuse",
	Short: "Extract, align, and merge subtitle tracks from video files",
	Long: `Subfuse works with the subtitle streams inside video containers.

It lists the subtitle tracks of a video, extracts a selected track as an
ASS document, and merges an original track with an independently timed
translation track by aligning cues on their temporal midpoints.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)
		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}

// resolveMediaPath makes a relative video path absolute against the
// configured media directory when the file is not reachable as given.
func resolveMediaPath(path string) string {
	if cfg.MediaDir == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(cfg.MediaDir, path)
}
