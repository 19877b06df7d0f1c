package app

import (
	"telegraph/internal/alphabet"
	"telegraph/internal/config"
	"telegraph/internal/domain"
	"telegraph/internal/render/audio"
	"telegraph/internal/telegraph"
)

// Wire bundles the alphabet, encoder, and renderer settings for the CLI.
type Wire struct {
	Config   *config.Config
	Alphabet *alphabet.Alphabet
	Encoder  domain.Encoder
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *config.Config) (*Wire, error) {
	ab, err := alphabet.New(cfg.Alphabet)
	if err != nil {
		return nil, err
	}
	return &Wire{
		Config:   cfg,
		Alphabet: ab,
		Encoder:  telegraph.New(ab),
	}, nil
}

// ToneConfig maps the audio configuration onto the synthesis knobs.
func (w *Wire) ToneConfig() audio.ToneConfig {
	return audio.ToneConfig{
		Frequency:  w.Config.Audio.Frequency,
		WPM:        w.Config.Audio.WPM,
		SampleRate: w.Config.Audio.SampleRate,
	}
}
