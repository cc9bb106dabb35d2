package entity

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/tankterrain/pkg/math"
)

// flatGround is a HeightMap returning a constant height.
type flatGround float32

func (g flatGround) HeightAt(x, z float32) float32 { return float32(g) }

// slopeGround rises one unit per unit of x.
type slopeGround struct{}

func (slopeGround) HeightAt(x, z float32) float32 { return x }

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestTank_DriveForwardAndBack(t *testing.T) {
	tank := NewTank(math.Vec3{})

	tank.Update(Controls{Forward: true})
	if got := tank.Position(); got != (math.Vec3{X: 0, Y: 0, Z: 0.5}) {
		t.Errorf("after forward: position = %v, want (0, 0, 0.5)", got)
	}

	tank.Update(Controls{Backward: true})
	if got := tank.Position(); got != (math.Vec3{X: 0, Y: 0, Z: 0.25}) {
		t.Errorf("after backward: position = %v, want (0, 0, 0.25)", got)
	}
}

func TestTank_TurnChangesHeading(t *testing.T) {
	tank := NewTank(math.Vec3{})
	tank.RotationSpeed = gomath.Pi / 2

	tank.Update(Controls{TurnLeft: true})
	if !near(tank.Facing(), gomath.Pi/2) {
		t.Fatalf("facing = %v, want pi/2", tank.Facing())
	}

	tank.Update(Controls{Forward: true})
	pos := tank.Position()
	if !near(pos.X, 0.5) || !near(pos.Z, 0) {
		t.Errorf("position = %v, want (0.5, 0, 0)", pos)
	}

	tank.Update(Controls{TurnRight: true})
	if !near(tank.Facing(), 0) {
		t.Errorf("facing = %v, want 0", tank.Facing())
	}
}

func TestTank_CannonClamp(t *testing.T) {
	tank := NewTank(math.Vec3{})

	for range 20 {
		tank.Update(Controls{CannonUp: true})
	}
	if tank.CannonRotation() != CannonMinRotation {
		t.Errorf("cannon = %v, want clamped to %v", tank.CannonRotation(), float32(CannonMinRotation))
	}

	for range 20 {
		tank.Update(Controls{CannonDown: true})
	}
	if tank.CannonRotation() != CannonMaxRotation {
		t.Errorf("cannon = %v, want clamped to %v", tank.CannonRotation(), CannonMaxRotation)
	}
}

func TestTank_Turret(t *testing.T) {
	tank := NewTank(math.Vec3{})

	tank.Update(Controls{TurretLeft: true})
	tank.Update(Controls{TurretLeft: true})
	tank.Update(Controls{TurretRight: true})
	if !near(tank.TurretRotation(), 0.1) {
		t.Errorf("turret = %v, want 0.1", tank.TurretRotation())
	}
	if tank.TurretTransform() != math.RotateY(tank.TurretRotation()) {
		t.Error("turret transform should be a yaw rotation")
	}
	if tank.Facing() != 0 {
		t.Errorf("turret input turned the hull: facing = %v", tank.Facing())
	}
}

func TestTank_FollowsHeightMap(t *testing.T) {
	tank := NewTank(math.Vec3{X: 2, Y: 50, Z: 0})

	tank.Update(Controls{})
	if got := tank.Position().Y; got != 50 {
		t.Errorf("without height map Y = %v, want unchanged 50", got)
	}

	tank.HeightMap = flatGround(7)
	tank.Update(Controls{})
	if got := tank.Position().Y; got != 7 {
		t.Errorf("Y = %v, want 7", got)
	}

	tank.HeightMap = slopeGround{}
	tank.RotationSpeed = gomath.Pi / 2
	tank.Update(Controls{TurnLeft: true})
	tank.Update(Controls{Forward: true})
	if got := tank.Position(); !near(got.Y, got.X) || !near(got.X, 2.5) {
		t.Errorf("position = %v, want Y to track X at 2.5", got)
	}
}

func TestTank_World(t *testing.T) {
	tank := NewTank(math.Vec3{X: 1, Y: 2, Z: 3})

	origin := tank.World().TransformVec3(math.Vec3{})
	if origin != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("hull origin = %v, want tank position", origin)
	}
}

func TestTank_Parts(t *testing.T) {
	tank := NewTank(math.Vec3{X: 10, Y: 2, Z: -4})
	parts := tank.Parts()

	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}

	hullCenter := parts[0].Model.TransformVec3(math.Vec3{})
	if want := (math.Vec3{X: 10, Y: 2 + HullHeight/2, Z: -4}); hullCenter.Distance(want) > 1e-4 {
		t.Errorf("hull center = %v, want %v", hullCenter, want)
	}

	// Level barrel tip sits ahead of the turret along +Z.
	tip := parts[2].Model.TransformVec3(math.Vec3{Z: 0.5})
	want := math.Vec3{X: 10, Y: 2 + HullHeight + TurretHeight/2, Z: -4 + TurretLength/2 + BarrelLength}
	if tip.Distance(want) > 1e-4 {
		t.Errorf("barrel tip = %v, want %v", tip, want)
	}

	// Raising the cannon lifts the tip.
	for range 5 {
		tank.Update(Controls{CannonUp: true})
	}
	raised := tank.Parts()[2].Model.TransformVec3(math.Vec3{Z: 0.5})
	if raised.Y <= want.Y {
		t.Errorf("raised tip Y = %v, should exceed %v", raised.Y, want.Y)
	}
}
