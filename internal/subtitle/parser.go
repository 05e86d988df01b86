package subtitle

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"subfuse/internal/timecode"
)

var overrideTagRegex = regexp.MustCompile(`\{[^}]*\}`)

// Parse turns raw subtitle text into timed lines. formatHint is a file
// extension or codec name ("ass", ".srt", ...); SRT is converted to an
// ASS document first, anything else is treated as ASS. Always returns a
// slice, possibly empty.
func (p *Processor) Parse(content, formatHint string) []Line {
	return p.ParseDocument(content, formatHint).Lines
}

// ParseDocument parses like Parse but also retains the document text
// the lines came from (for SRT input, the converted ASS document) so
// the caller can regenerate against its prologue.
func (p *Processor) ParseDocument(content, formatHint string) Document {
	if normalizeHint(formatHint) == "srt" {
		content = ConvertSRTToASS(content)
	}

	lines, err := p.parseASS(content)
	switch {
	case err != nil:
		p.log.Warnw("structured parse failed, using line scanner",
			"error", err)
		lines = p.scanDialogueLines(content)
	case len(lines) == 0 && strings.Contains(content, "Dialogue:"):
		// section-less extracted streams carry Dialogue rows the
		// structured pass never enters
		p.log.Warnw("structured parse consumed no dialogue rows, using line scanner")
		lines = p.scanDialogueLines(content)
	}

	p.log.Infow("parsed subtitle document", "lines", len(lines))
	return Document{Content: content, Lines: lines}
}

func normalizeHint(hint string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hint)), ".")
}

// primary strategy: section-aware parse of the [Events] block driven
// by its Format: declaration; any structural problem is an error so
// the caller can fall back
func (p *Processor) parseASS(content string) ([]Line, error) {
	var (
		columns  map[string]int
		nColumns int
		lines    []Line
		inEvents bool
	)

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		raw := scanner.Text()
		lineNum++
		if lineNum == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}

		trimmed := strings.TrimSpace(raw)

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section := strings.ToLower(
				strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]"),
			)
			inEvents = section == "events"
			continue
		}

		if !inEvents {
			continue
		}

		if strings.HasPrefix(trimmed, "Format:") {
			columns = parseFormatColumns(trimmed)
			nColumns = len(columns)
			continue
		}

		if !strings.HasPrefix(trimmed, "Dialogue:") {
			continue
		}

		if nColumns == 0 {
			return nil, fmt.Errorf(
				"dialogue at line %d before any Format declaration", lineNum,
			)
		}

		fields := splitFields(
			strings.TrimSpace(strings.TrimPrefix(trimmed, "Dialogue:")),
			nColumns,
		)
		if len(fields) < nColumns {
			return nil, fmt.Errorf(
				"dialogue at line %d has %d fields, format declares %d",
				lineNum, len(fields), nColumns,
			)
		}

		lines = append(lines, p.lineFromFields(fields, columns, len(lines)))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	if len(lines) > 0 && nColumns == 0 {
		return nil, fmt.Errorf("missing Format line in [Events] section")
	}

	return lines, nil
}

func parseFormatColumns(trimmed string) map[string]int {
	columns := make(map[string]int)
	for i, col := range strings.Split(strings.TrimPrefix(trimmed, "Format:"), ",") {
		columns[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return columns
}

// splitFields splits on the first n-1 commas so the final text field
// keeps any commas it contains.
func splitFields(content string, n int) []string {
	if n <= 0 {
		return nil
	}

	fields := make([]string, 0, n)
	remaining := content
	for i := 0; i < n-1; i++ {
		idx := strings.Index(remaining, ",")
		if idx == -1 {
			break
		}
		fields = append(fields, remaining[:idx])
		remaining = remaining[idx+1:]
	}
	fields = append(fields, remaining)

	return fields
}

func (p *Processor) lineFromFields(
	fields []string,
	columns map[string]int,
	index int,
) Line {
	at := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	text := at("text")
	line := Line{
		Index:      index,
		Start:      p.parseTimestamp(at("start")),
		End:        p.parseTimestamp(at("end")),
		Speaker:    at("name"),
		PlainText:  StripMarkup(text),
		StyledText: text,
		Style:      at("style"),
		Layer:      parseLayer(at("layer")),
		MarginL:    parseIntField(at("marginl")),
		MarginR:    parseIntField(at("marginr")),
		MarginV:    parseIntField(at("marginv")),
		Effect:     at("effect"),
	}

	return p.clampDuration(line)
}

// fallback strategy: split every Dialogue: line into the standard ten
// event fields, skipping rows that do not fit
func (p *Processor) scanDialogueLines(content string) []Line {
	var lines []Line

	for _, raw := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(raw)
		if !strings.HasPrefix(trimmed, "Dialogue:") {
			continue
		}

		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "Dialogue:"))
		fields := splitFields(rest, 10)
		if len(fields) < 10 {
			p.log.Warnw("skipping malformed dialogue row",
				"fields", len(fields), "row", trimmed)
			continue
		}

		line := Line{
			Index:      len(lines),
			Start:      p.parseTimestamp(fields[1]),
			End:        p.parseTimestamp(fields[2]),
			Speaker:    fields[4],
			PlainText:  StripMarkup(fields[9]),
			StyledText: fields[9],
			Style:      fields[3],
			Layer:      parseLayer(fields[0]),
			MarginL:    parseIntField(fields[5]),
			MarginR:    parseIntField(fields[6]),
			MarginV:    parseIntField(fields[7]),
			Effect:     fields[8],
		}
		lines = append(lines, p.clampDuration(line))
	}

	return lines
}

func (p *Processor) parseTimestamp(ts string) int64 {
	ms, ok := timecode.ASSToMS(ts)
	if !ok {
		p.log.Warnw("malformed timestamp, using 0", "timestamp", ts)
	}
	return ms
}

// a malformed row yielding End < Start becomes a zero-duration cue
// instead of being dropped, so line counts stay stable
func (p *Processor) clampDuration(line Line) Line {
	if line.End < line.Start {
		p.log.Warnw("negative duration clamped to zero",
			"index", line.Index, "start_ms", line.Start, "end_ms", line.End)
		line.End = line.Start
	}
	return line
}

// parseLayer handles both a bare integer and the Layer:<n> encoding
// some muxers emit in the first event field.
func parseLayer(field string) int {
	if _, after, ok := strings.Cut(field, ":"); ok {
		field = after
	}
	return parseIntField(field)
}

func parseIntField(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return n
}

// StripMarkup removes {...} override spans and replaces the \N break
// marker with a space, producing the plain-text view of a cue.
func StripMarkup(text string) string {
	clean := overrideTagRegex.ReplaceAllString(text, "")
	clean = strings.ReplaceAll(clean, `\N`, " ")
	return strings.TrimSpace(clean)
}
