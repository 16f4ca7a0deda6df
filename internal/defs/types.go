// internal/defs/types.go
package defs

import "time"

// AnimationDef describes one strip of the shared sprite sheet.
type AnimationDef struct {
	Frames int     `yaml:"frames"`
	Speed  float64 `yaml:"speed"` // frames advanced per tick
	Row    int     `yaml:"row"`   // sheet row, in cells
	Loops  bool    `yaml:"loops"`
}

// CollisionDef is a collision box relative to the sprite's top-left corner.
type CollisionDef struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
}

// ShotDef describes a projectile fired on a cooldown.
type ShotDef struct {
	Cooldown time.Duration `yaml:"cooldown"`
	Speed    float64       `yaml:"speed"`
	Damage   int           `yaml:"damage"`
	Row      int           `yaml:"row"`
}
