// Package video is the extraction collaborator: it probes a container
// for subtitle streams and extracts one stream's payload as ASS text
// for the subtitle engine. It is the only package that shells out.
package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "subfuse/internal/ffmpeg"
	"subfuse/internal/logging"
	"subfuse/internal/subtitle"
)

// Track describes one subtitle stream in a container. Index is the
// stream index within the file, usable directly in an ffmpeg -map.
type Track struct {
	Index    int
	Codec    string
	Language string
	Title    string
	Forced   bool
	Default  bool
}

// JSON output from ffprobe -show_streams
type ffprobeOutput struct {
	Streams []struct {
		Index     int    `json:"index"`
		CodecName string `json:"codec_name"`
		CodecType string `json:"codec_type"`
		Tags      struct {
			Language string `json:"language"`
			Title    string `json:"title"`
		} `json:"tags"`
		Disposition struct {
			Forced  int `json:"forced"`
			Default int `json:"default"`
		} `json:"disposition"`
	} `json:"streams"`
}

type Extractor struct {
	log *logging.Logger
}

func NewExtractor(log *logging.Logger) *Extractor {
	if log == nil {
		log = logging.NewNop()
	}
	return &Extractor{log: log}
}

// Tracks lists the subtitle streams of a video file.
func (e *Extractor) Tracks(ctx context.Context, videoPath string) ([]Track, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", videoPath)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "s",
		videoPath,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	tracks := parseTracks(&probe)

	e.log.Infow("probed subtitle tracks",
		"video", videoPath, "tracks", len(tracks))
	return tracks, nil
}

func parseTracks(probe *ffprobeOutput) []Track {
	tracks := make([]Track, 0, len(probe.Streams))
	for _, s := range probe.Streams {
		if s.CodecType != "subtitle" {
			continue
		}
		codec := s.CodecName
		if codec == "" {
			codec = "unknown"
		}
		language := s.Tags.Language
		if language == "" {
			language = "unknown"
		}
		tracks = append(tracks, Track{
			Index:    s.Index,
			Codec:    codec,
			Language: language,
			Title:    s.Tags.Title,
			Forced:   s.Disposition.Forced == 1,
			Default:  s.Disposition.Default == 1,
		})
	}
	return tracks
}

// ExtractTrack pulls one subtitle stream out of a video file as ASS
// text. Streams that cannot be stream-copied to ASS are re-extracted as
// SRT and converted, so the caller always receives an ASS document.
func (e *Extractor) ExtractTrack(
	ctx context.Context,
	videoPath string,
	streamIndex int,
) (string, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return "", fmt.Errorf("video file not found: %s", videoPath)
	}

	content, err := e.extract(videoPath, streamIndex, ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:%d", streamIndex),
		"c:s": "copy",
		"f":   "ass",
	})
	if err == nil && strings.TrimSpace(content) != "" {
		e.log.Infow("extracted subtitle stream",
			"video", videoPath, "stream", streamIndex, "format", "ass")
		return content, nil
	}
	if err != nil {
		e.log.Warnw("ASS extraction failed, retrying as SRT",
			"stream", streamIndex, "error", err)
	}

	srtContent, err := e.extract(videoPath, streamIndex, ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:%d", streamIndex),
		"c:s": "srt",
		"f":   "srt",
	})
	if err != nil {
		return "", fmt.Errorf("subtitle extraction failed: %w", err)
	}
	if strings.TrimSpace(srtContent) == "" {
		return "", fmt.Errorf("extracted subtitle stream %d is empty", streamIndex)
	}

	e.log.Infow("extracted subtitle stream",
		"video", videoPath, "stream", streamIndex, "format", "srt")
	return subtitle.ConvertSRTToASS(srtContent), nil
}

func (e *Extractor) extract(
	videoPath string,
	streamIndex int,
	kwargs ffmpeg.KwArgs,
) (string, error) {
	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return "", err
	}

	var out, errOut bytes.Buffer
	err = ffmpeg.Input(videoPath).
		Output("pipe:", kwargs).
		SetFfmpegPath(ffmpegPath).
		WithOutput(&out, &errOut).
		Silent(true).
		Run()
	if err != nil {
		return "", fmt.Errorf(
			"ffmpeg stream %d: %w: %s",
			streamIndex, err, strings.TrimSpace(errOut.String()),
		)
	}

	return out.String(), nil
}
