package subtitle

import (
	"strings"
	"testing"
)

func TestRenderPreservesPrologueAndOrder(t *testing.T) {
	p := newTestProcessor()

	doc := p.ParseDocument(testASS, "ass")
	out := p.Render(doc.Content, doc.Lines)

	wantPrologue := strings.SplitAfter(testASS, "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text")[0]
	if !strings.HasPrefix(out, wantPrologue) {
		t.Error("prologue was not preserved byte-for-byte")
	}

	outLines := strings.Split(out, "\n")
	var dialogues []string
	for _, l := range outLines {
		if strings.HasPrefix(l, "Dialogue:") {
			dialogues = append(dialogues, l)
		}
	}
	if len(dialogues) != len(doc.Lines) {
		t.Fatalf("got %d dialogue rows, want %d", len(dialogues), len(doc.Lines))
	}

	if dialogues[0] != "Dialogue: 0,0:00:01.00,0:00:04.00,Default,Alice,0,0,0,,Hello, world!" {
		t.Errorf("row 0 = %q", dialogues[0])
	}
	// styled text survives regeneration when no translation was set
	if !strings.Contains(dialogues[1], `{\b1}Bold{\b0} text`) {
		t.Errorf("row 1 lost its markup: %q", dialogues[1])
	}
	if !strings.HasPrefix(dialogues[2], "Dialogue: 1,0:00:10.00,0:00:12.50,Sign,Bob,") {
		t.Errorf("row 2 = %q", dialogues[2])
	}
}

func TestRenderUsesTranslationWhenSet(t *testing.T) {
	p := newTestProcessor()

	doc := p.ParseDocument(testASS, "ass")
	lines := doc.Lines
	lines[0].Translation = "Bonjour, le monde!"
	lines[1].Translation = "   " // whitespace only falls back to styled text

	out := p.Render(doc.Content, lines)

	if !strings.Contains(out, ",,Bonjour, le monde!") {
		t.Error("translation was not substituted")
	}
	if strings.Contains(out, "Hello, world!") {
		t.Error("original text should have been replaced on line 0")
	}
	if !strings.Contains(out, `{\b1}Bold{\b0} text`) {
		t.Error("blank translation must fall back to the styled original text")
	}
}

func TestRenderNoEventsReturnsInputUnchanged(t *testing.T) {
	p := newTestProcessor()

	content := "[Script Info]\nTitle: no events here\n"
	out := p.Render(content, []Line{{PlainText: "x", StyledText: "x"}})
	if out != content {
		t.Errorf("expected input returned unchanged, got %q", out)
	}
}

func TestRenderDefaultsEmptyStyle(t *testing.T) {
	p := newTestProcessor()

	content := "[Events]\nFormat: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"
	out := p.Render(content, []Line{{Start: 0, End: 1000, StyledText: "hi"}})

	if !strings.Contains(out, "Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,hi") {
		t.Errorf("unexpected dialogue row in %q", out)
	}
}

func TestRenderAfterMatchEndToEnd(t *testing.T) {
	p := newTestProcessor()

	srt := `1
00:00:01,100 --> 00:00:03,900
Bonjour!

2
00:00:59,000 --> 00:01:01,000
Trop loin.
`
	original := p.ParseDocument(testASS, "ass")
	translation := p.Parse(srt, "srt")

	matched := p.Match(original.Lines, translation, DefaultToleranceMS)
	out := p.Render(original.Content, matched)

	// original line 0 (1000..4000, midpoint 2500) matches SRT block 1
	// (midpoint 2500); everything else stays untranslated
	if !strings.Contains(out, ",,Bonjour!") {
		t.Error("matched translation missing from rendered document")
	}
	if !strings.Contains(out, `Line with\Nbreak.`) {
		t.Error("unmatched line lost its original text")
	}
	if strings.Contains(out, "Trop loin.") {
		t.Error("unmatched translation text leaked into the output")
	}
}
