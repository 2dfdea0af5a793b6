package render

import (
	"strconv"

	"spritegen/internal/core"
)

// Option keys shared by --set overrides, TOML files, HTTP queries and the HUD.
const (
	KeyColored         = "colored"
	KeyEdgeBrightness  = "edge_brightness"
	KeyColorVariations = "color_variations"
	KeyBrightnessNoise = "brightness_noise"
	KeySaturation      = "saturation"
)

// Parameters snapshots the options for presentation.
func (o *Options) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Color",
				Params: []core.Parameter{
					boolParam(KeyColored, "Colored", o.Colored, "gradient coloring; off renders black and white"),
					floatParam(KeySaturation, "Saturation", o.Saturation, "upper bound of the per-sprite saturation"),
					floatParam(KeyColorVariations, "Color variations", o.ColorVariations, "weighting of hue jumps along the gradient"),
				},
			},
			{
				Name: "Brightness",
				Params: []core.Parameter{
					floatParam(KeyBrightnessNoise, "Brightness noise", o.BrightnessNoise, "random jitter mixed into the brightness envelope"),
					floatParam(KeyEdgeBrightness, "Edge brightness", o.EdgeBrightness, "multiplier applied to outline pixels"),
				},
			},
		},
	}
}

// ParameterControls lists the HUD-adjustable options.
func (o *Options) ParameterControls() []core.ParameterControl {
	unit := func(key, label string) core.ParameterControl {
		return core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		}
	}
	return []core.ParameterControl{
		{Key: KeyColored, Label: "Colored", Type: core.ParamTypeBool},
		unit(KeySaturation, "Saturation"),
		unit(KeyColorVariations, "Color var."),
		unit(KeyBrightnessNoise, "Bright. noise"),
		unit(KeyEdgeBrightness, "Edge bright."),
	}
}

// SetFloatParameter stores value under key as given; Normalize clamps it at
// render time. It reports false for unknown keys.
func (o *Options) SetFloatParameter(key string, value float64) bool {
	switch key {
	case KeyEdgeBrightness:
		o.EdgeBrightness = value
	case KeyColorVariations:
		o.ColorVariations = value
	case KeyBrightnessNoise:
		o.BrightnessNoise = value
	case KeySaturation:
		o.Saturation = value
	default:
		return false
	}
	return true
}

// SetBoolParameter toggles boolean options. It reports false for unknown keys.
func (o *Options) SetBoolParameter(key string, value bool) bool {
	if key != KeyColored {
		return false
	}
	o.Colored = value
	return true
}

// IsOptionKey reports whether key names any render option.
func IsOptionKey(key string) bool {
	switch key {
	case KeyColored, KeyEdgeBrightness, KeyColorVariations, KeyBrightnessNoise, KeySaturation:
		return true
	}
	return false
}

// IsBoolKey reports whether key names a boolean option.
func IsBoolKey(key string) bool { return key == KeyColored }

func floatParam(key, label string, value float64, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeFloat,
		Value:       strconv.FormatFloat(value, 'f', -1, 64),
		Description: desc,
	}
}

func boolParam(key, label string, value bool, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeBool,
		Value:       strconv.FormatBool(value),
		Description: desc,
	}
}
