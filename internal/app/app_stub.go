//go:build !ebiten

package app

import sgerrors "spritegen/pkg/errors"

// Run reports that the viewer needs the ebiten build tag.
func Run(Config) error {
	return sgerrors.New(sgerrors.ErrCodeInternal, "the viewer requires building with -tags ebiten")
}
