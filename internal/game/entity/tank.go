package entity

import (
	gomath "math"

	"github.com/Faultbox/tankterrain/pkg/math"
)

// Default tank tuning, in world units and radians per frame.
const (
	DefaultSpeed         = 0.5
	DefaultRotationSpeed = 0.1
)

// Cannon elevation limits (radians). Raising the barrel is negative rotation.
const (
	CannonMinRotation = -gomath.Pi / 4
	CannonMaxRotation = 0
)

// Tank is the player-driven vehicle. It satisfies camera.Followable.
type Tank struct {
	// HeightMap keeps the tank on the ground; nil leaves Y untouched.
	HeightMap HeightMap

	Speed         float32
	RotationSpeed float32

	position math.Vec3
	facing   float32

	turretRotation float32
	cannonRotation float32
}

// NewTank creates a tank at position facing down -Z.
func NewTank(position math.Vec3) *Tank {
	return &Tank{
		Speed:         DefaultSpeed,
		RotationSpeed: DefaultRotationSpeed,
		position:      position,
	}
}

// Position returns the tank's world position.
func (t *Tank) Position() math.Vec3 { return t.position }

// Facing returns the hull yaw in radians.
func (t *Tank) Facing() float32 { return t.facing }

// TurretRotation returns the turret yaw relative to the hull.
func (t *Tank) TurretRotation() float32 { return t.turretRotation }

// CannonRotation returns the barrel pitch relative to the turret.
func (t *Tank) CannonRotation() float32 { return t.cannonRotation }

// Update advances the tank by one frame. Driving forward moves against the
// hull's forward vector at full speed; reversing moves along it at half speed.
func (t *Tank) Update(in Controls) {
	direction := math.RotateY(t.facing).TransformDirection(math.Forward)

	if in.Forward {
		t.position = t.position.Sub(direction.Scale(t.Speed))
	}
	if in.Backward {
		t.position = t.position.Add(direction.Scale(t.Speed / 2))
	}
	if in.TurnLeft {
		t.facing += t.RotationSpeed
	}
	if in.TurnRight {
		t.facing -= t.RotationSpeed
	}

	if in.TurretLeft {
		t.turretRotation += t.RotationSpeed
	}
	if in.TurretRight {
		t.turretRotation -= t.RotationSpeed
	}

	if in.CannonUp {
		t.cannonRotation -= t.RotationSpeed
	}
	if in.CannonDown {
		t.cannonRotation += t.RotationSpeed
	}
	t.cannonRotation = math.Clamp(t.cannonRotation, CannonMinRotation, CannonMaxRotation)

	if t.HeightMap != nil {
		t.position.Y = t.HeightMap.HeightAt(t.position.X, t.position.Z)
	}
}

// World returns the hull transform: yaw, then translation.
func (t *Tank) World() math.Mat4 {
	return math.TranslateVec3(t.position).Mul(math.RotateY(t.facing))
}

// TurretTransform returns the turret's rotation relative to the hull.
func (t *Tank) TurretTransform() math.Mat4 {
	return math.RotateY(t.turretRotation)
}

// CannonTransform returns the barrel's rotation relative to the turret.
func (t *Tank) CannonTransform() math.Mat4 {
	return math.RotateX(t.cannonRotation)
}

// Hull and turret proportions in world units.
const (
	HullWidth    = 3.0
	HullHeight   = 1.2
	HullLength   = 5.0
	TurretWidth  = 2.0
	TurretHeight = 0.8
	TurretLength = 2.2
	BarrelRadius = 0.3
	BarrelLength = 3.0
)

// Part is one box of the tank model: a unit cube mapped by Model.
type Part struct {
	Name  string
	Model math.Mat4
	Color [3]float32
}

// Parts returns the hull, turret, and barrel boxes in world space. The
// barrel points down the hull's +Z axis, which is the direction of travel.
func (t *Tank) Parts() []Part {
	hull := t.World()
	turret := hull.Mul(math.Translate(0, HullHeight, 0)).Mul(t.TurretTransform())
	barrel := turret.Mul(math.Translate(0, TurretHeight/2, TurretLength/2)).Mul(t.CannonTransform())

	return []Part{
		{
			Name:  "hull",
			Model: hull.Mul(math.Translate(0, HullHeight/2, 0)).Mul(math.Scale(HullWidth, HullHeight, HullLength)),
			Color: [3]float32{0.32, 0.38, 0.24},
		},
		{
			Name:  "turret",
			Model: turret.Mul(math.Translate(0, TurretHeight/2, 0)).Mul(math.Scale(TurretWidth, TurretHeight, TurretLength)),
			Color: [3]float32{0.36, 0.42, 0.27},
		},
		{
			Name:  "barrel",
			Model: barrel.Mul(math.Translate(0, 0, BarrelLength/2)).Mul(math.Scale(BarrelRadius, BarrelRadius, BarrelLength)),
			Color: [3]float32{0.2, 0.22, 0.18},
		},
	}
}
