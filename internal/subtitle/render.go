package subtitle

import (
	"fmt"
	"strings"

	"subfuse/internal/timecode"
)

// Render rebuilds an ASS document: the original prologue (through the
// [Events] header and its Format: row) copied byte-for-byte, then one
// dialogue row per line. Translation replaces the text when non-empty,
// else the styled original is kept. With no [Events] marker the
// original content comes back unchanged rather than risking data loss.
func (p *Processor) Render(originalContent string, lines []Line) string {
	prologue, ok := extractPrologue(originalContent)
	if !ok {
		p.log.Warnw("no [Events] section found, returning document unchanged")
		return originalContent
	}

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, buildDialogueRow(line))
	}

	out := strings.Join(append(prologue, rows...), "\n")

	p.log.Infow("rendered subtitle document", "lines", len(rows))
	return out
}

// copies source lines through the [Events] header and its Format: row
func extractPrologue(content string) ([]string, bool) {
	var (
		prologue      []string
		eventsStarted bool
		formatFound   bool
	)

	for _, raw := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(raw)

		if !eventsStarted {
			prologue = append(prologue, raw)
			if strings.HasPrefix(trimmed, "[Events]") {
				eventsStarted = true
			}
			continue
		}

		if strings.HasPrefix(trimmed, "Format:") {
			prologue = append(prologue, raw)
			formatFound = true
			break
		}
	}

	return prologue, eventsStarted && formatFound
}

func buildDialogueRow(line Line) string {
	text := strings.TrimSpace(line.Translation)
	if text == "" {
		text = line.StyledText
	}

	style := line.Style
	if style == "" {
		style = "Default"
	}

	return fmt.Sprintf("Dialogue: %d,%s,%s,%s,%s,%d,%d,%d,%s,%s",
		line.Layer,
		timecode.MsToASS(line.Start),
		timecode.MsToASS(line.End),
		style,
		line.Speaker,
		line.MarginL,
		line.MarginR,
		line.MarginV,
		line.Effect,
		text,
	)
}
