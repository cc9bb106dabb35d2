package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/tankterrain/internal/engine/terrain"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if !(c.Terrain.ElevationScale > 0) {
		err = multierr.Append(err, fmt.Errorf("terrain.elevation_scale %v must be positive", c.Terrain.ElevationScale))
	}
	if _, perr := terrain.ParseSplitRule(c.Terrain.SplitRule); perr != nil {
		err = multierr.Append(err, fmt.Errorf("terrain.split_rule: %w", perr))
	}
	if c.Tank.Speed < 0 || c.Tank.RotationSpeed < 0 {
		err = multierr.Append(err, errors.New("tank speeds must not be negative"))
	}
	if !(c.Camera.FovY > 0) || c.Camera.FovY >= 3.14159 {
		err = multierr.Append(err, fmt.Errorf("camera.fov_y %v must be in (0, pi)", c.Camera.FovY))
	}
	if !(c.Camera.Near > 0) || c.Camera.Near >= c.Camera.Far {
		err = multierr.Append(err, fmt.Errorf("camera near/far %v/%v must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far))
	}

	return err
}
