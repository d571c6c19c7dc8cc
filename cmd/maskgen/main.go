// Package main is the maskgen CLI: it loads or creates a mask design,
// generates the ornament instance set on the analytic head, prints a
// placement report and optionally saves the design document.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/config"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/logger"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/ornament"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/placement"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/surface"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

var (
	flagOut          = flag.String("out", "", "Save the design document to this path")
	flagDensity      = flag.Int("density", -1, "Override the requested instance count")
	flagZone         = flag.String("zone", "", "Override the placement zone")
	flagDistribution = flag.String("distribution", "", "Override the distribution law")
	flagMirror       = flag.String("mirror", "", "Override bilateral symmetry: true or false")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("maskgen failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	doc, err := loadDesign(cfg.Design.Path)
	if err != nil {
		return err
	}
	if err := applyOverrides(&doc.Config); err != nil {
		return err
	}
	if err := doc.Config.Validate(); err != nil {
		return fmt.Errorf("design: %w", err)
	}

	mesh, err := ornament.BuildShape(doc.Config.Shape, cfg.Design.MeshResolution)
	if err != nil {
		return fmt.Errorf("ornament: %w", err)
	}

	set := placement.Generate(doc.Config, nil)
	report(doc, set, mesh)

	if *flagOut != "" {
		if err := doc.Save(*flagOut); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		fmt.Printf("saved design to %s\n", *flagOut)
	}
	return nil
}

func loadDesign(path string) (*design.Document, error) {
	if path == "" {
		return design.NewDocument(design.Default()), nil
	}
	doc, err := design.Load(path)
	if err != nil {
		return nil, fmt.Errorf("design: %w", err)
	}
	logger.Info("design loaded", zap.String("path", path), zap.String("id", doc.ID))
	return doc, nil
}

// applyOverrides folds the CLI overrides into the loaded config.
func applyOverrides(c *design.MaskConfig) error {
	if *flagDensity >= 0 {
		c.Density = *flagDensity
	}
	if *flagZone != "" {
		zone := surface.Zone(*flagZone)
		if !zone.Valid() {
			return fmt.Errorf("unknown zone %q", *flagZone)
		}
		c.Zone = zone
	}
	if *flagDistribution != "" {
		law, err := design.ParseDistribution(*flagDistribution)
		if err != nil {
			return err
		}
		c.Distribution = law
	}
	switch *flagMirror {
	case "":
	case "true":
		c.Symmetry = true
	case "false":
		c.Symmetry = false
	default:
		return fmt.Errorf("mirror must be true or false, got %q", *flagMirror)
	}
	return nil
}

// report prints the placement summary a designer checks before export.
func report(doc *design.Document, set *placement.InstanceSet, mesh *ornament.Mesh) {
	fmt.Printf("design %s\n", doc.ID)
	fmt.Printf("  shape:        %s (%d triangles at preview resolution)\n",
		doc.Config.Shape, mesh.TriangleCount())
	fmt.Printf("  zone:         %s\n", doc.Config.Zone)
	fmt.Printf("  distribution: %s\n", doc.Config.Distribution)
	fmt.Printf("  requested:    %d\n", doc.Config.Density)
	fmt.Printf("  realized:     %d\n", set.Len())

	if set.Len() > 0 {
		min, max := bounds(set)
		fmt.Printf("  bounds:       [%.2f %.2f %.2f] .. [%.2f %.2f %.2f]\n",
			min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	}

	logger.Info("placement report",
		zap.Int("requested", doc.Config.Density),
		zap.Int("realized", set.Len()),
		zap.String("zone", string(doc.Config.Zone)),
	)
}

// bounds returns the axis-aligned extent of the placed instances.
func bounds(set *placement.InstanceSet) (min, max xmath.Vec3) {
	min = set.Instances[0].Position
	max = min
	for _, inst := range set.Instances[1:] {
		p := inst.Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}
