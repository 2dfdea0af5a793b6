// Package config loads sprite masks and render options from TOML files and
// key=value overrides.
//
// A config file looks like:
//
//	[options]
//	colored = true
//	saturation = 0.8
//
//	[[mask]]
//	name = "beetle"
//	width = 3
//	height = 3
//	mirror_y = false
//	cells = [0, 1, 1,
//	         1, 2, 2,
//	         0, 1, -1]
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"spritegen/internal/presets"
	"spritegen/internal/render"
	"spritegen/internal/sprite"
	sgerrors "spritegen/pkg/errors"
)

// File is the decoded form of a config file.
type File struct {
	Options OptionsTable `toml:"options"`
	Masks   []MaskSpec   `toml:"mask"`
}

// OptionsTable holds render options; unset keys keep the current value.
type OptionsTable struct {
	Colored         *bool    `toml:"colored"`
	EdgeBrightness  *float64 `toml:"edge_brightness"`
	ColorVariations *float64 `toml:"color_variations"`
	BrightnessNoise *float64 `toml:"brightness_noise"`
	Saturation      *float64 `toml:"saturation"`
}

// MaskSpec describes one named mask.
type MaskSpec struct {
	Name    string `toml:"name"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	MirrorX *bool  `toml:"mirror_x"`
	MirrorY *bool  `toml:"mirror_y"`
	Cells   []int  `toml:"cells"`
}

// Load reads and decodes the TOML file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, sgerrors.Wrap(sgerrors.ErrCodeNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML config data.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, sgerrors.Wrap(sgerrors.ErrCodeInvalidFormat, err, "decode config")
	}
	return &f, nil
}

// Apply copies the set keys of the options table onto opts.
func (f *File) Apply(opts *render.Options) {
	t := f.Options
	if t.Colored != nil {
		opts.Colored = *t.Colored
	}
	if t.EdgeBrightness != nil {
		opts.EdgeBrightness = *t.EdgeBrightness
	}
	if t.ColorVariations != nil {
		opts.ColorVariations = *t.ColorVariations
	}
	if t.BrightnessNoise != nil {
		opts.BrightnessNoise = *t.BrightnessNoise
	}
	if t.Saturation != nil {
		opts.Saturation = *t.Saturation
	}
}

// Build validates the entry and constructs its mask.
func (s MaskSpec) Build() (*sprite.Mask, error) {
	var opts []sprite.MaskOption
	if s.MirrorX != nil {
		opts = append(opts, sprite.WithMirrorX(*s.MirrorX))
	}
	if s.MirrorY != nil {
		opts = append(opts, sprite.WithMirrorY(*s.MirrorY))
	}
	m, err := sprite.NewMask(s.Cells, s.Width, s.Height, opts...)
	if err != nil {
		return nil, sgerrors.Wrap(sgerrors.GetCode(err), err, "mask %q", s.Name)
	}
	return m, nil
}

// RegisterMasks builds every mask in the file and registers it as a preset.
// Nothing is registered unless all masks are valid.
func (f *File) RegisterMasks() ([]string, error) {
	built := make(map[string]*sprite.Mask, len(f.Masks))
	names := make([]string, 0, len(f.Masks))
	for _, spec := range f.Masks {
		if spec.Name == "" {
			return nil, sgerrors.New(sgerrors.ErrCodeInvalidMask, "mask without a name")
		}
		m, err := spec.Build()
		if err != nil {
			return nil, err
		}
		built[spec.Name] = m
		names = append(names, spec.Name)
	}
	for _, name := range names {
		presets.Register(name, built[name])
	}
	return names, nil
}
