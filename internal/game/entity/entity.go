// Package entity implements the mobile objects of the scene.
package entity

// HeightMap answers ground height queries at world (x, z).
// Entities use it to keep themselves on the terrain surface.
type HeightMap interface {
	HeightAt(x, z float32) float32
}

// Controls is the input state an entity reads each frame.
type Controls struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool

	TurretLeft  bool
	TurretRight bool
	CannonUp    bool
	CannonDown  bool
}
