package config

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"spritegen/internal/render"
	sgerrors "spritegen/pkg/errors"
)

// ParseOverrides splits repeatable key=value flags into a map. Later entries
// win.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, sgerrors.New(sgerrors.ErrCodeInvalidInput, "override %q is not key=value", kv)
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out, nil
}

// ApplyOverrides sets each key of kv on opts in key order. Unknown keys fail
// with INVALID_INPUT and unparsable values with INVALID_OPTION; on failure
// opts is left untouched. Out-of-range numbers are stored as given and
// clamped at render time.
func ApplyOverrides(opts *render.Options, kv map[string]string) error {
	next := *opts
	for _, key := range slices.Sorted(maps.Keys(kv)) {
		value := kv[key]
		if !render.IsOptionKey(key) {
			return sgerrors.New(sgerrors.ErrCodeInvalidInput, "unknown option %q", key)
		}
		if render.IsBoolKey(key) {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return sgerrors.Wrap(sgerrors.ErrCodeInvalidOption, err, "%s=%q", key, value)
			}
			next.SetBoolParameter(key, parsed)
			continue
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return sgerrors.Wrap(sgerrors.ErrCodeInvalidOption, err, "%s=%q", key, value)
		}
		next.SetFloatParameter(key, parsed)
	}
	*opts = next
	return nil
}
