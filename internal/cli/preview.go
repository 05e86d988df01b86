package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"subfuse/internal/subtitle"
	"subfuse/internal/timecode"
)

var previewCmd = &cobra.Command{
	Use:   "preview [subtitle_file]",
	Short: "Show the leading lines of a subtitle file",
	Long: `Parse a subtitle file (.ass, .ssa, or .srt) and show its leading
lines with timing, speaker, and plain text.

Examples:
  subfuse preview subs.ass
  subfuse preview subs.srt -n 20
  subfuse preview subs.ass --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().
		IntP("lines", "n", 0, "Number of lines to show (default from config)")
	previewCmd.Flags().
		Bool("json", false, "Emit the preview as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	limit, _ := cmd.Flags().GetInt("lines")
	asJSON, _ := cmd.Flags().GetBool("json")

	if limit <= 0 {
		limit = cfg.PreviewLines
	}

	data, err := os.ReadFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", subtitlePath, err)
	}

	processor := subtitle.NewProcessor(logger)
	lines := processor.Parse(string(data), filepath.Ext(subtitlePath))
	previews := subtitle.PreviewOf(lines, limit)

	if asJSON {
		encoded, err := json.MarshalIndent(previews, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding preview: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	if len(previews) == 0 {
		fmt.Println("No subtitle lines found.")
		return nil
	}

	fmt.Println(previewTable(previews))
	fmt.Printf("Showing %d of %d lines\n", len(previews), len(lines))
	return nil
}

func previewTable(previews []subtitle.Preview) string {
	rows := make([][]string, 0, len(previews))
	for _, p := range previews {
		text := p.Text
		if p.Translation != "" {
			text = p.Translation
		}
		rows = append(rows, []string{
			strconv.Itoa(p.Index),
			timecode.MsToASS(p.StartMS),
			timecode.MsToASS(p.EndMS),
			p.Speaker,
			text,
		})
	}

	return renderTable(
		[]string{"#", "Start", "End", "Speaker", "Text"},
		rows,
	)
}
