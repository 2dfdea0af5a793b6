package presets

import "spritegen/internal/sprite"

func init() {
	Register("robot", sprite.MustMask([]int{
		0, 0, 0, 0,
		0, 1, 1, 1,
		0, 1, 2, 2,
		0, 0, 1, 2,
		0, 0, 0, 2,
		1, 1, 1, 2,
		0, 1, 1, 2,
		0, 0, 0, 2,
		0, 0, 0, 2,
		0, 1, 2, 2,
		1, 1, 0, 0,
	}, 4, 11, sprite.WithMirrorY(false)))

	Register("spaceship", sprite.MustMask([]int{
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 1,
		0, 0, 0, 0, 1, -1,
		0, 0, 0, 1, 1, -1,
		0, 0, 0, 1, 1, -1,
		0, 0, 1, 1, 1, -1,
		0, 1, 1, 1, 2, 2,
		0, 1, 1, 1, 2, 2,
		0, 1, 1, 1, 2, 2,
		0, 1, 1, 1, 1, -1,
		0, 0, 0, 1, 1, 1,
		0, 0, 0, 0, 0, 0,
	}, 6, 12, sprite.WithMirrorY(false)))

	Register("critter", sprite.MustMask([]int{
		0, 0, 0, 0, 0,
		0, 0, 1, 1, 1,
		0, 1, 1, 2, 2,
		0, 1, 2, 2, -1,
		1, 1, 2, 2, 2,
		0, 1, 1, 2, 2,
		0, 0, 1, 0, 1,
		0, 1, 1, 0, 1,
	}, 5, 8, sprite.WithMirrorY(false)))

	Register("gem", sprite.MustMask([]int{
		0, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 2,
		0, 1, 2, 2,
	}, 4, 4))
}
