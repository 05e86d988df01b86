// Package ffmpeg locates the ffmpeg and ffprobe binaries the extractor
// shells out to. Resolution order: explicit env override, the PATH,
// then a cached download of a prebuilt release. Resolution happens once
// per process.
package ffmpeg

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	releaseVersion = "6.1"
	releaseBaseURL = "https://github.com/ffbinaries/ffbinaries-prebuilt/releases/download"

	envFFmpegPath  = "SUBFUSE_FFMPEG_PATH"
	envFFprobePath = "SUBFUSE_FFPROBE_PATH"
)

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	resolveOnce sync.Once
	resolveErr  error
	resolved    BinaryPaths
)

func Resolve() (BinaryPaths, error) {
	resolveOnce.Do(func() {
		resolved, resolveErr = resolve()
	})
	return resolved, resolveErr
}

func FFmpegPath() (string, error) {
	paths, err := Resolve()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Resolve()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

func resolve() (BinaryPaths, error) {
	ffmpegPath := os.Getenv(envFFmpegPath)
	ffprobePath := os.Getenv(envFFprobePath)

	if ffmpegPath == "" {
		if found, err := exec.LookPath("ffmpeg"); err == nil {
			ffmpegPath = found
		}
	}
	if ffprobePath == "" {
		if found, err := exec.LookPath("ffprobe"); err == nil {
			ffprobePath = found
		}
	}

	if ffmpegPath != "" && ffprobePath != "" {
		return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
	}

	assetName, err := assetForPlatform(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return BinaryPaths{}, err
	}

	dir := installDir()
	exeSuffix := executableSuffix()
	if ffmpegPath == "" {
		ffmpegPath = filepath.Join(dir, "ffmpeg"+exeSuffix)
	}
	if ffprobePath == "" {
		ffprobePath = filepath.Join(dir, "ffprobe"+exeSuffix)
	}

	if binariesExist(ffmpegPath, ffprobePath) {
		return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return BinaryPaths{}, fmt.Errorf("create ffmpeg cache dir: %w", err)
	}

	if err := downloadAndExtract(assetName, dir); err != nil {
		return BinaryPaths{}, err
	}

	if !binariesExist(ffmpegPath, ffprobePath) {
		return BinaryPaths{}, errors.New("ffmpeg binaries not found after extraction")
	}

	if runtime.GOOS != "windows" {
		for _, p := range []string{ffmpegPath, ffprobePath} {
			if err := os.Chmod(p, 0o755); err != nil {
				return BinaryPaths{}, fmt.Errorf("chmod %s: %w", filepath.Base(p), err)
			}
		}
	}

	return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
}

func installDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil || cacheDir == "" {
		cacheDir = os.TempDir()
	}
	return filepath.Join(
		cacheDir, "subfuse", "ffmpeg",
		releaseVersion, runtime.GOOS, runtime.GOARCH,
	)
}

func assetForPlatform(goos, goarch string) (string, error) {
	switch {
	case goos == "linux" && goarch == "amd64":
		return "ffmpeg-" + releaseVersion + "-linux-64.zip", nil
	case goos == "linux" && goarch == "arm64":
		return "ffmpeg-" + releaseVersion + "-linux-arm-64.zip", nil
	case goos == "darwin" && goarch == "amd64":
		return "ffmpeg-" + releaseVersion + "-macos-64.zip", nil
	case goos == "windows" && goarch == "amd64":
		return "ffmpeg-" + releaseVersion + "-win-64.zip", nil
	default:
		return "", fmt.Errorf("no prebuilt ffmpeg for %s/%s; install ffmpeg and ffprobe or set %s/%s",
			goos, goarch, envFFmpegPath, envFFprobePath)
	}
}

func downloadAndExtract(assetName, installDir string) error {
	url := fmt.Sprintf("%s/v%s/%s", releaseBaseURL, releaseVersion, assetName)
	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("download ffmpeg bundle: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download ffmpeg bundle: unexpected status %s", resp.Status)
	}

	tmpFile, err := os.CreateTemp("", "subfuse-ffmpeg-*.zip")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	archivePath := tmpFile.Name()
	defer func() { _ = os.Remove(archivePath) }()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write archive: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	if err := extractArchive(archivePath, installDir); err != nil {
		return fmt.Errorf("extract %s: %w", assetName, err)
	}
	return nil
}

func extractArchive(archivePath, installDir string) error {
	zipReader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open ffmpeg archive: %w", err)
	}
	defer func() { _ = zipReader.Close() }()

	found := map[string]bool{}
	for _, file := range zipReader.File {
		name := strings.ToLower(filepath.Base(file.Name))
		name = strings.TrimSuffix(name, ".exe")
		if name != "ffmpeg" && name != "ffprobe" {
			continue
		}
		dest := filepath.Join(installDir, name+executableSuffix())
		if err := extractZipFile(file, dest); err != nil {
			return err
		}
		found[name] = true
	}

	if !found["ffmpeg"] || !found["ffprobe"] {
		return fmt.Errorf("ffmpeg archive missing required binaries")
	}
	return nil
}

func extractZipFile(file *zip.File, dest string) error {
	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("open ffmpeg archive entry: %w", err)
	}
	defer func() { _ = reader.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create ffmpeg binary: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("write ffmpeg binary: %w", err)
	}
	return nil
}

func binariesExist(paths ...string) bool {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() || info.Size() == 0 {
			return false
		}
	}
	return true
}

func executableSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
