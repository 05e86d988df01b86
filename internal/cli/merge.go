package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subfuse/internal/subtitle"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [original_file] [translation_file]",
	Short: "Merge a translation track into an original subtitle track",
	Long: `Align two independently timed subtitle tracks and produce an ASS
document that keeps the original's styles and timing but carries the
translation's text wherever a cue could be matched.

Cues are matched on their temporal midpoints: a translation cue is used
when its midpoint lies within the tolerance window of an original cue's
midpoint. Unmatched cues keep their original text.

Examples:
  subfuse merge original.ass translation.srt
  subfuse merge original.ass translation.ass --tolerance 500 -o merged.ass`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().
		Int64("tolerance", 0, "Matching window in milliseconds (default from config)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	originalPath := args[0]
	translationPath := args[1]

	tolerance, _ := cmd.Flags().GetInt64("tolerance")
	outputPath, _ := cmd.Flags().GetString("output")

	if tolerance <= 0 {
		tolerance = cfg.ToleranceMS
	}
	if outputPath == "" {
		base := strings.TrimSuffix(
			filepath.Base(originalPath),
			filepath.Ext(originalPath),
		)
		outputPath = base + "_merged.ass"
	}

	originalData, err := os.ReadFile(originalPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", originalPath, err)
	}
	translationData, err := os.ReadFile(translationPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", translationPath, err)
	}

	processor := subtitle.NewProcessor(logger)

	original := processor.ParseDocument(
		string(originalData),
		filepath.Ext(originalPath),
	)
	translation := processor.Parse(
		string(translationData),
		filepath.Ext(translationPath),
	)

	if len(original.Lines) == 0 {
		return fmt.Errorf("no subtitle lines found in %s", originalPath)
	}

	matched := processor.Match(original.Lines, translation, tolerance)

	matchedCount := 0
	for _, line := range matched {
		if line.Translation != "" {
			matchedCount++
		}
	}

	out := processor.Render(original.Content, matched)
	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Matched %d/%d lines (tolerance %dms): %s\n",
		matchedCount, len(matched), tolerance, absOutput)
	return nil
}
