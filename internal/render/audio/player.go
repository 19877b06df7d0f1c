package audio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"telegraph/internal/domain"
)

// Player renders messages as tones through the default audio device.
type Player struct {
	ctx  *oto.Context
	cfg  ToneConfig
	unit time.Duration
	dit  []byte
	dash []byte
}

// NewPlayer acquires the audio device and precomputes the dot and dash
// tones. Device acquisition failure wraps domain.ErrAudioDevice so callers
// can tell a resource failure from content and configuration errors.
func NewPlayer(cfg ToneConfig) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	op := &oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAudioDevice, err)
	}
	<-ready

	fpu := cfg.FramesPerUnit()
	return &Player{
		ctx:  ctx,
		cfg:  cfg,
		unit: cfg.Unit(),
		dit:  pcm16Stereo(sineFrames(cfg.Frequency, fpu, cfg.SampleRate)),
		dash: pcm16Stereo(sineFrames(cfg.Frequency, 3*fpu, cfg.SampleRate)),
	}, nil
}

// Render plays msg, blocking until the transmission ends or ctx is
// cancelled. Cancellation takes effect between elements and during gaps.
func (p *Player) Render(ctx context.Context, msg domain.Message) error {
	for _, s := range msg {
		var err error
		switch s {
		case domain.Dot:
			err = p.tone(ctx, p.dit, p.unit)
		case domain.Dash:
			err = p.tone(ctx, p.dash, 3*p.unit)
		default:
			err = sleep(ctx, time.Duration(s.Units())*p.unit)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// tone starts a one-shot player for the precomputed PCM and waits out the
// tone's duration.
func (p *Player) tone(ctx context.Context, pcm []byte, d time.Duration) error {
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	err := sleep(ctx, d)
	_ = player.Close()
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Compile-time assertion that Player implements domain.Renderer.
var _ domain.Renderer = (*Player)(nil)
