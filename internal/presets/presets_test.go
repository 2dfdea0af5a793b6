package presets

import (
	"slices"
	"testing"

	"spritegen/internal/sprite"
	sgerrors "spritegen/pkg/errors"
)

func TestBuiltinPresets(t *testing.T) {
	names := Names()
	for _, want := range []string{"critter", "gem", "robot", "spaceship"} {
		if !slices.Contains(names, want) {
			t.Fatalf("missing builtin preset %q in %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Names should be sorted: %v", names)
	}

	robot, err := Get("robot")
	if err != nil {
		t.Fatalf("Get robot: %v", err)
	}
	if size := robot.GridSize(); size.W != 8 || size.H != 11 {
		t.Fatalf("robot grid = %+v, want 8x11", size)
	}
	gem, _ := Get("gem")
	if size := gem.GridSize(); size.W != 8 || size.H != 8 {
		t.Fatalf("gem grid = %+v, want 8x8", size)
	}
}

func TestRegisterAndGet(t *testing.T) {
	if _, err := Get("does-not-exist"); !sgerrors.Is(err, sgerrors.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}

	m := sprite.MustMask([]int{1}, 1, 1)
	Register("", m)
	Register("nil-mask", nil)
	if slices.Contains(Names(), "") || slices.Contains(Names(), "nil-mask") {
		t.Fatal("empty names and nil masks must be ignored")
	}

	Register("test-dot", m)
	got, err := Get("test-dot")
	if err != nil || got != m {
		t.Fatalf("Get test-dot = %v, %v", got, err)
	}
}
