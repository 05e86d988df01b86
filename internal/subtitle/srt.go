package subtitle

import (
	"strings"

	"subfuse/internal/timecode"
)

const srtSeparator = " --> "

// Minimal header for documents synthesized from SRT input; styling is
// a single default style since SRT carries none.
const defaultASSHeader = `[Script Info]
Title: Extracted Subtitle
ScriptType: v4.00+

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,16,&H00FFFFFF,&H000000FF,&H00000000,&H80000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
`

type srtBlock struct {
	startASS string
	endASS   string
	text     string // payload lines joined with \N
}

// splits SRT text into blank-line-delimited blocks; the second line of
// a block must carry the --> separator, short or separator-less blocks
// are skipped
func parseSRTBlocks(content string) []srtBlock {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\ufeff")

	var blocks []srtBlock
	for _, raw := range strings.Split(strings.TrimSpace(content), "\n\n") {
		lines := strings.Split(strings.TrimSpace(raw), "\n")
		if len(lines) < 3 {
			continue
		}

		start, rest, ok := strings.Cut(lines[1], srtSeparator)
		if !ok {
			continue
		}
		// some muxers append extension data (X1:.. Y1:..) after the
		// end timestamp
		end, _, _ := strings.Cut(strings.TrimSpace(rest), " ")

		blocks = append(blocks, srtBlock{
			startASS: timecode.SRTToASS(start),
			endASS:   timecode.SRTToASS(end),
			text:     strings.Join(lines[2:], `\N`),
		})
	}

	return blocks
}

// ConvertSRTToASS rewrites SRT text as a complete ASS document with a
// default style block, used when a stream can only be extracted in SRT
// form.
func ConvertSRTToASS(content string) string {
	blocks := parseSRTBlocks(content)

	var sb strings.Builder
	sb.WriteString(defaultASSHeader)
	for _, b := range blocks {
		sb.WriteString("Dialogue: 0,")
		sb.WriteString(b.startASS)
		sb.WriteString(",")
		sb.WriteString(b.endASS)
		sb.WriteString(",Default,,0,0,0,,")
		sb.WriteString(b.text)
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
