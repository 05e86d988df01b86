package video

import (
	"encoding/json"
	"testing"
)

func TestParseTracks(t *testing.T) {
	payload := `{
		"streams": [
			{
				"index": 2,
				"codec_name": "ass",
				"codec_type": "subtitle",
				"tags": {"language": "eng", "title": "Full Subtitles"},
				"disposition": {"default": 1, "forced": 0}
			},
			{
				"index": 3,
				"codec_name": "subrip",
				"codec_type": "subtitle",
				"tags": {"language": "jpn"},
				"disposition": {"default": 0, "forced": 1}
			},
			{
				"index": 0,
				"codec_name": "h264",
				"codec_type": "video",
				"tags": {},
				"disposition": {}
			}
		]
	}`

	var probe ffprobeOutput
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	tracks := parseTracks(&probe)
	if len(tracks) != 2 {
		t.Fatalf("expected 2 subtitle tracks, got %d", len(tracks))
	}

	if tracks[0].Index != 2 || tracks[0].Codec != "ass" ||
		tracks[0].Language != "eng" || tracks[0].Title != "Full Subtitles" {
		t.Errorf("track 0 = %+v", tracks[0])
	}
	if !tracks[0].Default || tracks[0].Forced {
		t.Errorf("track 0 dispositions = %+v", tracks[0])
	}

	if tracks[1].Codec != "subrip" || !tracks[1].Forced {
		t.Errorf("track 1 = %+v", tracks[1])
	}
}

func TestParseTracksDefaults(t *testing.T) {
	payload := `{"streams": [{"index": 1, "codec_type": "subtitle"}]}`

	var probe ffprobeOutput
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	tracks := parseTracks(&probe)
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	if tracks[0].Codec != "unknown" || tracks[0].Language != "unknown" {
		t.Errorf("missing metadata should default to unknown, got %+v", tracks[0])
	}
}
