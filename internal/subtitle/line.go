package subtitle

// one timed subtitle cue; immutable after parsing except Translation,
// which the matcher sets on copies
type Line struct {
	Index      int
	Start      int64 // ms from document start
	End        int64 // ms, End >= Start
	Speaker    string
	PlainText  string // inline markup stripped, for preview and matching
	StyledText string // markup preserved verbatim, for regeneration
	Style      string
	Layer      int
	MarginL    int
	MarginR    int
	MarginV    int
	Effect     string

	// Translation is empty until a match assigns it. Rendering falls
	// back to StyledText when it stays empty.
	Translation string
}

// temporal center of the cue, used for track alignment
func (l Line) Midpoint() int64 {
	return (l.Start + l.End) / 2
}

// Document pairs the raw source text with its parsed lines. The raw
// text is kept because the prologue (script info, styles) is preserved
// byte-for-byte during regeneration, never rebuilt from structured data.
type Document struct {
	Content string
	Lines   []Line
}

// projection handed to presentation callers
type Preview struct {
	Index       int    `json:"index"`
	StartMS     int64  `json:"start_ms"`
	EndMS       int64  `json:"end_ms"`
	Speaker     string `json:"speaker"`
	Text        string `json:"plain_text"`
	Translation string `json:"translation_text"`
}

// PreviewOf returns at most limit leading lines as preview records.
func PreviewOf(lines []Line, limit int) []Preview {
	if limit < 0 {
		limit = 0
	}
	if limit > len(lines) {
		limit = len(lines)
	}

	previews := make([]Preview, 0, limit)
	for _, l := range lines[:limit] {
		previews = append(previews, Preview{
			Index:       l.Index,
			StartMS:     l.Start,
			EndMS:       l.End,
			Speaker:     l.Speaker,
			Text:        l.PlainText,
			Translation: l.Translation,
		})
	}
	return previews
}
