package render

import (
	"errors"

	sgerrors "spritegen/pkg/errors"
)

// Options controls how a resolved grid is colored.
type Options struct {
	// Colored selects gradient coloring; false renders black borders and
	// white bodies.
	Colored bool `json:"colored"`
	// EdgeBrightness multiplies border RGB in colored mode.
	EdgeBrightness float64 `json:"edge_brightness"`
	// ColorVariations weights how often the hue jumps along the gradient axis.
	ColorVariations float64 `json:"color_variations"`
	// BrightnessNoise is the share of brightness replaced by random jitter.
	BrightnessNoise float64 `json:"brightness_noise"`
	// Saturation is the upper bound of the per-sprite saturation draw.
	Saturation float64 `json:"saturation"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Colored:         true,
		EdgeBrightness:  0.3,
		ColorVariations: 0.2,
		BrightnessNoise: 0.3,
		Saturation:      0.5,
	}
}

// Option overrides a single field on top of DefaultOptions.
type Option func(*Options)

// NewOptions merges opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithColored toggles gradient coloring.
func WithColored(v bool) Option { return func(o *Options) { o.Colored = v } }

// WithEdgeBrightness sets the border darkening factor.
func WithEdgeBrightness(v float64) Option { return func(o *Options) { o.EdgeBrightness = v } }

// WithColorVariations sets the hue jump weighting.
func WithColorVariations(v float64) Option { return func(o *Options) { o.ColorVariations = v } }

// WithBrightnessNoise sets the brightness jitter amount.
func WithBrightnessNoise(v float64) Option { return func(o *Options) { o.BrightnessNoise = v } }

// WithSaturation sets the saturation upper bound.
func WithSaturation(v float64) Option { return func(o *Options) { o.Saturation = v } }

// Normalize returns a copy with every numeric field clamped to [0, 1].
func (o Options) Normalize() Options {
	o.EdgeBrightness = clamp01(o.EdgeBrightness)
	o.ColorVariations = clamp01(o.ColorVariations)
	o.BrightnessNoise = clamp01(o.BrightnessNoise)
	o.Saturation = clamp01(o.Saturation)
	return o
}

// Validate reports every numeric field outside [0, 1] as an INVALID_OPTION
// error. Generation never fails on these; Normalize clamps them instead.
func (o Options) Validate() error {
	var errs []error
	for _, f := range o.numericFields() {
		if f.value < 0 || f.value > 1 || f.value != f.value {
			errs = append(errs, sgerrors.New(sgerrors.ErrCodeInvalidOption,
				"%s=%g is outside [0,1] and will be clamped", f.key, f.value))
		}
	}
	return errors.Join(errs...)
}

type numericField struct {
	key   string
	value float64
}

func (o Options) numericFields() []numericField {
	return []numericField{
		{KeyEdgeBrightness, o.EdgeBrightness},
		{KeyColorVariations, o.ColorVariations},
		{KeyBrightnessNoise, o.BrightnessNoise},
		{KeySaturation, o.Saturation},
	}
}

func clamp01(v float64) float64 {
	switch {
	case v != v:
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
