// Package speech implements audio transcription: uploads are normalized to
// mp3 and handed to the speech recognizer.
package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

const targetFormat = ".mp3"

type recognizer interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// Service transcribes uploaded audio files.
type Service struct {
	log      *slog.Logger
	stt      recognizer
	maxBytes int64

	// ffmpegPath is overridable in tests.
	ffmpegPath string
}

// NewService creates a speech transcription service. maxBytes caps the
// accepted upload size.
func NewService(logger *slog.Logger, stt recognizer, maxBytes int64) *Service {
	return &Service{
		log:        logger.With("service", "speech"),
		stt:        stt,
		maxBytes:   maxBytes,
		ffmpegPath: "ffmpeg",
	}
}

// Transcribe converts the uploaded audio to mp3 if needed and returns its
// transcription. The filename is required to determine the source container;
// uploads over the size cap are rejected before any processing.
func (s *Service) Transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", domain.NewValidationError("audio", "filename is required")
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("audio file exceeds %d bytes: %w", s.maxBytes, domain.ErrTooLarge)
	}

	dir, err := os.MkdirTemp("", "transcribe")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	targetPath := filepath.Join(dir, "audio"+targetFormat)
	if err := s.prepareAudio(ctx, dir, targetPath, filename, data); err != nil {
		return "", err
	}

	text, err := s.stt.Transcribe(ctx, targetPath)
	if err != nil {
		return "", err
	}

	s.log.DebugContext(ctx, "audio transcribed", slog.Int("bytes", len(data)))

	return text, nil
}

// prepareAudio writes the upload as mp3 at targetPath, converting through
// ffmpeg when the source container differs.
func (s *Service) prepareAudio(ctx context.Context, dir, targetPath, filename string, data []byte) error {
	ext := filepath.Ext(filename)
	if ext == targetFormat {
		if err := os.WriteFile(targetPath, data, 0o600); err != nil {
			return fmt.Errorf("write audio: %w", err)
		}
		return nil
	}

	sourcePath := filepath.Join(dir, "audio"+ext)
	if err := os.WriteFile(sourcePath, data, 0o600); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.ffmpegPath, "-i", sourcePath, targetPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("convert audio to mp3: %w: %s", err, out)
	}

	return nil
}
