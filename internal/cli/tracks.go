package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subfuse/internal/video"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks [video_file]",
	Short: "List the subtitle tracks of a video file",
	Long: `List every subtitle stream in a video container, with its stream
index, codec, language, and dispositions. The stream index is what the
extract command expects for --track.

Examples:
  subfuse tracks movie.mkv
  subfuse tracks show/episode01.mkv --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runTracks,
}

func init() {
	rootCmd.AddCommand(tracksCmd)
}

func runTracks(cmd *cobra.Command, args []string) error {
	videoPath := resolveMediaPath(args[0])

	extractor := video.NewExtractor(logger)
	tracks, err := extractor.Tracks(context.Background(), videoPath)
	if err != nil {
		return fmt.Errorf("probing failed: %w", err)
	}

	if len(tracks) == 0 {
		fmt.Println("No subtitle tracks found.")
		return nil
	}

	rows := make([][]string, 0, len(tracks))
	for _, t := range tracks {
		rows = append(rows, []string{
			strconv.Itoa(t.Index),
			t.Codec,
			t.Language,
			t.Title,
			yesNo(t.Default),
			yesNo(t.Forced),
		})
	}

	fmt.Println(renderTable(
		[]string{"Stream", "Codec", "Language", "Title", "Default", "Forced"},
		rows,
	))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
