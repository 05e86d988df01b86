package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subfuse/internal/subtitle"
	"subfuse/internal/video"
)

// Number of lines shown inline after an extraction, enough to judge
// whether the right track was picked.
const inlinePreviewLines = 10

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract a subtitle track from a video file as ASS",
	Long: `Extract one subtitle stream from a video container and save it as an
ASS document. Streams that cannot be stream-copied to ASS are extracted
as SRT and converted.

Examples:
  subfuse extract movie.mkv --track 2
  subfuse extract movie.mkv -t 3 -o subs.ass`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("track", "t", -1, "Stream index of the subtitle track (see the tracks command)")
	_ = extractCmd.MarkFlagRequired("track")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := resolveMediaPath(args[0])
	trackIndex, _ := cmd.Flags().GetInt("track")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		base := strings.TrimSuffix(
			filepath.Base(videoPath),
			filepath.Ext(videoPath),
		)
		outputPath = base + "_extracted.ass"
	}

	logger.Infow("extracting subtitle track",
		"video", videoPath, "stream", trackIndex, "output", outputPath)

	extractor := video.NewExtractor(logger)
	content, err := extractor.ExtractTrack(
		context.Background(),
		videoPath,
		trackIndex,
	)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	processor := subtitle.NewProcessor(logger)
	lines := processor.Parse(content, "ass")

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Extracted %d lines to %s\n", len(lines), absOutput)

	if len(lines) > 0 {
		fmt.Println(previewTable(subtitle.PreviewOf(lines, inlinePreviewLines)))
	}
	return nil
}
