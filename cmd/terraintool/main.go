// terraintool inspects heightmaps and the terrain meshes built from them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Faultbox/tankterrain/internal/assets"
	"github.com/Faultbox/tankterrain/internal/config"
	"github.com/Faultbox/tankterrain/internal/engine/terrain"
	"github.com/Faultbox/tankterrain/internal/game/world"
	"github.com/Faultbox/tankterrain/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "sample":
		err = cmdSample(args)
	case "export":
		err = cmdExport(args)
	case "fetch":
		err = cmdFetch(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - heightmap and terrain mesh utility

Usage:
  terraintool <command> [options]

Commands:
  info <heightmap>                 Show grid size, elevation range and mesh stats
  sample <heightmap> <x> <z>       Query terrain height at world (x, z)
  export <heightmap> <out.obj>     Write the terrain mesh as Wavefront OBJ
  fetch <source> [dst]             Download a heightmap into the cache or dst
  config [path]                    Write the default config file

Heightmaps may be local paths or remote sources (https://, s3::, git::).

Examples:
  terraintool info maps/valley.png -scale 60
  terraintool sample maps/valley.png 12.5 -40 -center
  terraintool export maps/valley.png valley.obj
  terraintool fetch https://example.com/maps/dunes.png`)
}

// terrainFlags are shared by the commands that build a terrain.
type terrainFlags struct {
	scale  *float64
	split  *string
	center *bool
	cache  *string
}

func newTerrainFlags(fs *flag.FlagSet) terrainFlags {
	return terrainFlags{
		scale:  fs.Float64("scale", 100, "Elevation scale"),
		split:  fs.String("split", "quadrant", "Height query split rule (quadrant, diagonal)"),
		center: fs.Bool("center", false, "Center the grid on the origin"),
		cache:  fs.String("cache", "", "Download cache directory"),
	}
}

func (f terrainFlags) build(source string) (*terrain.Terrain, error) {
	img, err := assets.NewManager(*f.cache).Image(context.Background(), source)
	if err != nil {
		return nil, err
	}

	field, err := terrain.NewHeightField(img, float32(*f.scale))
	if err != nil {
		return nil, err
	}

	rule, err := terrain.ParseSplitRule(*f.split)
	if err != nil {
		return nil, err
	}

	tc := config.TerrainConfig{Center: *f.center}
	return terrain.New(field, terrain.Config{
		World:     world.Placement(tc, field.Width(), field.Depth()),
		SplitRule: rule,
	})
}

// parseArgs parses flags that may appear before or after positional args.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	tf := newTerrainFlags(fs)
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) < 1 {
		return fmt.Errorf("usage: terraintool info <heightmap>")
	}

	t, err := tf.build(pos[0])
	if err != nil {
		return err
	}

	field := t.Field()
	lo, hi := field.Range()
	data := t.RenderData()
	mesh := terrain.BuildMesh(field)

	fmt.Printf("Heightmap:  %s\n", pos[0])
	fmt.Printf("Grid:       %d x %d\n", field.Width(), field.Depth())
	fmt.Printf("Scale:      %g\n", field.Scale())
	fmt.Printf("Elevation:  %.3f .. %.3f\n", lo, hi)
	fmt.Printf("Vertices:   %d\n", len(data.Vertices))
	fmt.Printf("Indices:    %d (%s)\n", len(data.Indices), data.IndexFormat)
	fmt.Printf("Triangles:  %d\n", len(mesh.Triangles()))
	fmt.Printf("Bounds:     %v .. %v\n", data.Bounds.Min, data.Bounds.Max)
	return nil
}

func cmdSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	tf := newTerrainFlags(fs)
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) < 3 {
		return fmt.Errorf("usage: terraintool sample <heightmap> <x> <z>")
	}

	x, err := strconv.ParseFloat(pos[1], 32)
	if err != nil {
		return fmt.Errorf("parsing x: %w", err)
	}
	z, err := strconv.ParseFloat(pos[2], 32)
	if err != nil {
		return fmt.Errorf("parsing z: %w", err)
	}

	t, err := tf.build(pos[0])
	if err != nil {
		return err
	}

	fmt.Printf("%g\n", t.HeightAt(float32(x), float32(z)))
	return nil
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	tf := newTerrainFlags(fs)
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) < 2 {
		return fmt.Errorf("usage: terraintool export <heightmap> <out.obj>")
	}

	t, err := tf.build(pos[0])
	if err != nil {
		return err
	}

	out, err := os.Create(pos[1])
	if err != nil {
		return err
	}
	defer out.Close()

	mesh := terrain.BuildMesh(t.Field())
	if err := mesh.WriteOBJ(out); err != nil {
		return fmt.Errorf("writing %s: %w", pos[1], err)
	}

	fmt.Printf("Wrote %s (%d vertices, %d triangles)\n", pos[1], len(mesh.Vertices), len(mesh.Triangles()))
	return out.Close()
}

func cmdFetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	cache := fs.String("cache", "", "Download cache directory")
	debug := fs.Bool("v", false, "Verbose logging")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(pos) < 1 {
		return fmt.Errorf("usage: terraintool fetch <source> [dst]")
	}

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	if len(pos) > 1 {
		if err := assets.Fetch(ctx, pos[0], pos[1]); err != nil {
			return err
		}
		fmt.Println(pos[1])
		return nil
	}

	dir := *cache
	if dir == "" {
		dir = assets.DefaultCacheDir()
	}
	path, err := assets.Resolve(ctx, pos[0], dir)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func cmdConfig(args []string) error {
	path := filepath.Join(config.ConfigDir(), "config.yaml")
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Default().SaveTo(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
