package app

import (
	"github.com/charmbracelet/log"

	"spritegen/internal/render"
	"spritegen/internal/sprite"
)

// Config describes what the viewer shows.
type Config struct {
	Name     string
	Mask     *sprite.Mask
	Options  render.Options
	Seed     int64
	Count    int
	Cols     int
	Scale    int
	Padding  int
	AutoRate float64 // rerolls per second while auto mode is on
	Logger   *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Count < 1 {
		c.Count = 1
	}
	if c.Cols < 1 {
		c.Cols = min(c.Count, 8)
	}
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.AutoRate <= 0 {
		c.AutoRate = 1
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}
