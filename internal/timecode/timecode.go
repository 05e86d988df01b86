// Package timecode converts between millisecond offsets and the two
// textual timestamp encodings used by subtitle documents: ASS uses
// H:MM:SS.cc (centiseconds, no leading zero on hours), SRT uses
// HH:MM:SS,mmm (milliseconds, zero-padded hours).
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// MsToASS formats a millisecond offset as an ASS timestamp.
// Sub-centisecond precision is truncated, never rounded.
func MsToASS(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	totalSeconds := ms / 1000
	centis := (ms % 1000) / 10

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// ASSToMS parses an ASS timestamp into milliseconds. The second return
// value is false when any component is non-numeric; the caller decides
// whether to log, and substitutes the zero value.
func ASSToMS(ts string) (int64, bool) {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) != 3 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	secParts := strings.Split(parts[2], ".")
	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, false
	}

	// Absent centiseconds means .00.
	centis := 0
	if len(secParts) > 1 {
		centis, err = strconv.Atoi(secParts[1])
		if err != nil {
			return 0, false
		}
	}

	total := (int64(hours)*3600+int64(minutes)*60+int64(seconds))*1000 +
		int64(centis)*10
	return total, true
}

// SRTToASS converts an SRT timestamp to ASS form: milliseconds are
// truncated to centiseconds and the leading zero is stripped from the
// hour field. Conversion is lossy at millisecond granularity by design,
// matching the target format's precision. A malformed input is returned
// trimmed, unchanged — this function never fails.
func SRTToASS(ts string) string {
	ts = strings.TrimSpace(ts)

	timePart, msPart, ok := strings.Cut(ts, ",")
	if !ok {
		return ts
	}

	fields := strings.Split(timePart, ":")
	if len(fields) != 3 {
		return ts
	}

	hours, err := strconv.Atoi(fields[0])
	if err != nil {
		return ts
	}

	ms, err := strconv.Atoi(msPart)
	if err != nil {
		return ts
	}

	return fmt.Sprintf("%d:%s:%s.%02d", hours, fields[1], fields[2], ms/10)
}

// SRTToMS parses an SRT timestamp into milliseconds, with the same
// sentinel convention as ASSToMS.
func SRTToMS(ts string) (int64, bool) {
	timePart, msPart, ok := strings.Cut(strings.TrimSpace(ts), ",")
	if !ok {
		return 0, false
	}

	fields := strings.Split(timePart, ":")
	if len(fields) != 3 {
		return 0, false
	}

	hours, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, false
	}
	ms, err := strconv.Atoi(msPart)
	if err != nil {
		return 0, false
	}

	return (int64(hours)*3600+int64(minutes)*60+int64(seconds))*1000 +
		int64(ms), true
}

// MsToSRT formats a millisecond offset as an SRT timestamp.
func MsToSRT(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	totalSeconds := ms / 1000

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms%1000)
}
