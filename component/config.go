package component

import (
	"image/color"
	"time"
)

const (
	DefaultNodes      = 5
	DefaultParts      = 5
	DefaultScaleGap   = 0.02
	DefaultSizeFactor = 2.9
	DefaultInterval   = 30 * time.Millisecond
)

var (
	DefaultBackground = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	DefaultForeground = color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}
)

// Config is built once at startup and passed to everything that lays out,
// draws or steps the bar. Nothing mutates it afterwards.
type Config struct {
	Nodes      int
	Parts      int
	ScaleGap   float64
	SizeFactor float64
	Interval   time.Duration
	Background color.Color
	Foreground color.Color
}

func DefaultConfig() Config {
	return Config{
		Nodes:      DefaultNodes,
		Parts:      DefaultParts,
		ScaleGap:   DefaultScaleGap,
		SizeFactor: DefaultSizeFactor,
		Interval:   DefaultInterval,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
	}
}
