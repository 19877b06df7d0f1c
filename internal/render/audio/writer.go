package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"telegraph/internal/domain"
)

// FormatWAV is the only audio container currently supported.
const FormatWAV = "wav"

// Encoding names map to the PCM bit depth written into the container.
var encodings = map[string]map[string]int{
	FormatWAV: {
		"pcm16": 16,
		"pcm24": 24,
		"pcm32": 32,
	},
}

// ListFormats returns the supported audio container formats, sorted.
func ListFormats() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListEncodings returns the encodings available for a container format, or
// *domain.InvalidFormatEncodingError if the format is unknown.
func ListEncodings(format string) ([]string, error) {
	encs, ok := encodings[format]
	if !ok {
		return nil, &domain.InvalidFormatEncodingError{Format: format}
	}
	names := make([]string, 0, len(encs))
	for name := range encs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// FileWriter renders messages into an audio file.
type FileWriter struct {
	path     string
	format   string
	encoding string
	bitDepth int
	cfg      ToneConfig
}

// NewFileWriter validates the format/encoding pair and returns a writer
// for path. Validation happens here, before any file is created, so an
// unsupported pair never leaves partial output behind.
func NewFileWriter(path, format, encoding string, cfg ToneConfig) (*FileWriter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	encs, ok := encodings[format]
	if !ok {
		return nil, &domain.InvalidFormatEncodingError{Format: format, Encoding: encoding}
	}
	depth, ok := encs[encoding]
	if !ok {
		return nil, &domain.InvalidFormatEncodingError{Format: format, Encoding: encoding}
	}
	return &FileWriter{
		path:     path,
		format:   format,
		encoding: encoding,
		bitDepth: depth,
		cfg:      cfg,
	}, nil
}

// Render synthesizes msg into mono PCM and writes the audio file.
func (w *FileWriter) Render(ctx context.Context, msg domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fpu := w.cfg.FramesPerUnit()
	frames := make([]float64, 0, msg.Units()*fpu)
	for _, s := range msg {
		n := s.Units() * fpu
		if s.Tone() {
			frames = append(frames, sineFrames(w.cfg.Frequency, n, w.cfg.SampleRate)...)
		} else {
			frames = append(frames, make([]float64, n)...)
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", w.path, err)
	}

	enc := wav.NewEncoder(f, w.cfg.SampleRate, w.bitDepth, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: w.cfg.SampleRate},
		Data:           intFrames(frames, w.bitDepth),
		SourceBitDepth: w.bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	slog.Debug("wrote audio file",
		"path", w.path,
		"encoding", w.encoding,
		"frames", len(frames),
		"duration", time.Duration(msg.Units())*w.cfg.Unit(),
	)
	return nil
}

// Compile-time assertion that FileWriter implements domain.Renderer.
var _ domain.Renderer = (*FileWriter)(nil)
