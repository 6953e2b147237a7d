// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"log/slog"
)

// Config selects the stages Process runs. A zero value in a field skips
// its stage, so Config{} only copies the input.
type Config struct {
	// ConvertToMono averages all channels into one.
	ConvertToMono bool

	// VolumeNormalization is the peak level to normalize to, or 0 to skip.
	VolumeNormalization float32

	// TargetSampleRate in Hz, or 0 to keep the input rate.
	TargetSampleRate int

	// TargetLayout of the output, or LayoutUnspecified to keep the input layout.
	TargetLayout Layout

	// HighPass filtering parameters, or nil to skip filtering.
	HighPass *HighPassConfig

	// Logger receives one record per stage. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns the settings used for producing "gramophone" tracks:
// mono, 11025 Hz, a 32 section high-pass at 425/48000 of the sample rate
// and a 0.95 peak.
func DefaultConfig() Config {
	return Config{
		ConvertToMono:       true,
		VolumeNormalization: 0.95,
		TargetSampleRate:    11025,
		HighPass: &HighPassConfig{
			Sections:    32,
			CutoffRatio: 425.0 / 48000.0,
		},
	}
}

func (c Config) Validate() error {
	if c.VolumeNormalization < 0 {
		return fmt.Errorf("%w: volume normalization = %v", ErrInvalidConfig, c.VolumeNormalization)
	}
	if c.TargetSampleRate < 0 {
		return fmt.Errorf("%w: target sample rate = %d", ErrInvalidConfig, c.TargetSampleRate)
	}
	if c.TargetLayout != LayoutUnspecified && !c.TargetLayout.Valid() {
		return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, ErrUnsupportedLayout, c.TargetLayout)
	}
	if c.HighPass != nil {
		if err := c.HighPass.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Process runs in through the configured stages and returns a new buffer.
// in is never modified and the result never shares its storage.
//
// Stage order is fixed: copy, deinterleave, downmix, high-pass, resample,
// normalize, interleave.
func Process(in *Buffer, cfg Config) (*Buffer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.logger().With(
		slog.Int("channels", in.Channels),
		slog.Int("sample_rate", in.SampleRate),
	)

	log.Debug("copying input", slog.Int("samples", len(in.Samples)))
	out := in.Copy()

	if out.Layout == Interleaved {
		log.Debug("deinterleaving input")
		out.Deinterleave()
	}

	if cfg.ConvertToMono {
		log.Debug("converting to mono")
		mono, err := Downmix(out)
		if err != nil {
			return nil, fmt.Errorf("downmix: %w", err)
		}
		out = mono
	}

	if cfg.HighPass != nil {
		log.Debug("applying high-pass filter",
			slog.Int("sections", cfg.HighPass.Sections),
			slog.Float64("cutoff_hz", cfg.HighPass.CutoffRatio*float64(out.SampleRate)),
		)
		if err := HighPass(out, *cfg.HighPass); err != nil {
			return nil, fmt.Errorf("high-pass: %w", err)
		}
	}

	if cfg.TargetSampleRate > 0 {
		log.Debug("resampling", slog.Int("target_rate", cfg.TargetSampleRate))
		resampled, err := Resample(out, cfg.TargetSampleRate)
		if err != nil {
			return nil, fmt.Errorf("resample: %w", err)
		}
		out = resampled
	}

	if cfg.VolumeNormalization > 0 {
		log.Debug("normalizing volume",
			slog.Float64("peak", float64(Peak(out))),
			slog.Float64("target", float64(cfg.VolumeNormalization)),
		)
		if err := Normalize(out, cfg.VolumeNormalization); err != nil {
			return nil, fmt.Errorf("normalize: %w", err)
		}
	}

	target := cfg.TargetLayout
	if target == LayoutUnspecified {
		target = in.Layout
	}
	if target == Interleaved && out.Layout != Interleaved {
		log.Debug("interleaving output")
		out.Interleave()
	}

	log.Info("processing completed",
		slog.Int("out_channels", out.Channels),
		slog.Int("out_sample_rate", out.SampleRate),
		slog.String("out_layout", out.Layout.String()),
		slog.Duration("duration", out.Duration()),
	)

	return out, nil
}
