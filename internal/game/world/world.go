// Package world assembles the terrain and the tank from configuration.
package world

import (
	"context"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/tankterrain/internal/assets"
	"github.com/Faultbox/tankterrain/internal/config"
	"github.com/Faultbox/tankterrain/internal/engine/terrain"
	"github.com/Faultbox/tankterrain/internal/game/entity"
	"github.com/Faultbox/tankterrain/internal/logger"
	"github.com/Faultbox/tankterrain/pkg/math"
)

// GeneratedSize is the grid size used when no heightmap is configured.
const GeneratedSize = 257

// World is the playable scene.
type World struct {
	Terrain *terrain.Terrain
	Tank    *entity.Tank
	Ground  image.Image
}

// Load builds the world described by cfg, fetching images through am.
func Load(ctx context.Context, cfg *config.Config, am *assets.Manager) (*World, error) {
	log := logger.Named("world")

	heightmap, err := loadHeightmap(ctx, cfg.Terrain.Heightmap, am)
	if err != nil {
		return nil, err
	}

	rule, err := terrain.ParseSplitRule(cfg.Terrain.SplitRule)
	if err != nil {
		return nil, err
	}

	field, err := terrain.NewHeightField(heightmap, cfg.Terrain.ElevationScale)
	if err != nil {
		return nil, fmt.Errorf("building height field: %w", err)
	}

	t, err := terrain.New(field, terrain.Config{
		World:     Placement(cfg.Terrain, field.Width(), field.Depth()),
		SplitRule: rule,
	})
	if err != nil {
		return nil, fmt.Errorf("building terrain: %w", err)
	}

	lo, hi := field.Range()
	log.Info("terrain ready",
		zap.Int("width", field.Width()),
		zap.Int("depth", field.Depth()),
		zap.Float32("min_elevation", lo),
		zap.Float32("max_elevation", hi),
		zap.Stringer("split_rule", rule))

	tank := entity.NewTank(math.Vec3{
		X: cfg.Tank.StartX,
		Y: t.HeightAt(cfg.Tank.StartX, cfg.Tank.StartZ),
		Z: cfg.Tank.StartZ,
	})
	tank.Speed = cfg.Tank.Speed
	tank.RotationSpeed = cfg.Tank.RotationSpeed
	tank.HeightMap = t

	return &World{
		Terrain: t,
		Tank:    tank,
		Ground:  loadGround(ctx, cfg.Terrain.Texture, am, log),
	}, nil
}

// Placement returns the terrain's world transform. Centering moves the
// grid midpoint onto the configured position.
func Placement(tc config.TerrainConfig, width, depth int) math.Mat4 {
	at := math.Translate(tc.Position.X, tc.Position.Y, tc.Position.Z)
	if tc.Center {
		return at.Mul(terrain.CenteredWorld(width, depth, 0))
	}
	return at
}

func loadHeightmap(ctx context.Context, source string, am *assets.Manager) (image.Image, error) {
	if source == "" {
		logger.Info("no heightmap configured, generating hills", zap.Int("size", GeneratedSize))
		return assets.GenerateHeightmap(GeneratedSize, GeneratedSize), nil
	}
	img, err := am.Image(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("loading heightmap: %w", err)
	}
	return img, nil
}

func loadGround(ctx context.Context, source string, am *assets.Manager, log *zap.Logger) image.Image {
	if source == "" {
		return assets.GroundTexture()
	}
	img, err := am.Image(ctx, source)
	if err != nil {
		log.Warn("ground texture unavailable, using checker", zap.String("source", source), zap.Error(err))
		return assets.GroundTexture()
	}
	return img
}

// Step advances the simulation by one frame.
func (w *World) Step(in entity.Controls) {
	w.Tank.Update(in)
}

// Bounds returns the terrain's world-space bounding box.
func (w *World) Bounds() (lo, hi math.Vec3) {
	b := w.Terrain.Bounds()
	m := w.Terrain.World()

	first := true
	for i := 0; i < 8; i++ {
		corner := math.Vec3{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]}
		if i&1 != 0 {
			corner.X = b.Max[0]
		}
		if i&2 != 0 {
			corner.Y = b.Max[1]
		}
		if i&4 != 0 {
			corner.Z = b.Max[2]
		}
		p := m.TransformVec3(corner)
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi
}
