package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/config"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/engine/preview"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/engine/window"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/logger"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/binding"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/ornament"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/placement"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/tracking"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// app owns the preview frame loop: window, renderer, placement output,
// binding engine and tracking session.
type app struct {
	cfg *config.Config
	doc *design.Document

	win      *window.Window
	renderer *preview.Renderer
	engine   *binding.Engine
	session  *tracking.Session
	set      *placement.InstanceSet

	// renderCfg is the config the current instance set was generated
	// from; any difference on a frame triggers regeneration.
	renderCfg design.MaskConfig

	view    xmath.Mat4
	start   time.Time
	animate bool

	lastWidth  int
	lastHeight int
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{
		cfg:     cfg,
		animate: true,
		start:   time.Now(),
		view: xmath.LookAt(
			xmath.Vec3{Z: 3.2},
			xmath.Vec3{Y: 0.1},
			xmath.Vec3{Y: 1},
		),
	}

	doc, err := loadDesign(cfg.Design.Path)
	if err != nil {
		return nil, err
	}
	a.doc = doc
	a.renderCfg = doc.Config

	a.win, err = window.New(window.Config{
		Title:      "CyberMask Preview",
		Width:      cfg.Preview.Width,
		Height:     cfg.Preview.Height,
		Fullscreen: cfg.Preview.Fullscreen,
		VSync:      cfg.Preview.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	a.lastWidth, a.lastHeight = a.win.GetSize()

	a.renderer, err = preview.New(preview.Config{
		Width:  a.lastWidth,
		Height: a.lastHeight,
	})
	if err != nil {
		a.win.Close()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	mesh := ornament.BuildShapeOrDefault(doc.Config.Shape, cfg.Design.MeshResolution)
	if err := a.renderer.SetMesh(mesh); err != nil {
		a.renderer.Close()
		a.win.Close()
		return nil, err
	}
	a.renderer.SetMaterial(doc.Config.Material)

	a.set = placement.Generate(doc.Config, nil)
	logger.Info("mask generated",
		zap.Int("instances", a.set.Len()),
		zap.String("shape", string(doc.Config.Shape)),
		zap.String("zone", string(doc.Config.Zone)),
	)
	a.engine = binding.New(a.set)

	source, err := newSource(cfg.Tracking)
	if err != nil {
		a.renderer.Close()
		a.win.Close()
		return nil, err
	}
	a.session = tracking.NewSession(source, a.engine)
	if err := a.session.Start(); err != nil {
		a.renderer.Close()
		a.win.Close()
		return nil, fmt.Errorf("tracking: %w", err)
	}

	return a, nil
}

// loadDesign opens the configured document or starts from the default
// design when no path is set.
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

// newSource builds the landmark source selected by config.
func newSource(cfg config.TrackingConfig) (tracking.Source, error) {
	switch cfg.Source {
	case "replay":
		src, err := tracking.NewReplaySource(cfg.CapturePath)
		if err != nil {
			return nil, fmt.Errorf("capture: %w", err)
		}
		src.Loop = true
		return src, nil
	case "synthetic", "":
		src := tracking.NewSyntheticSource()
		src.Sway = xmath.Vec3{X: cfg.SwayAmplitude, Y: cfg.SwayAmplitude * 0.5}
		src.SwaySpeed = 1.4
		return src, nil
	default:
		return nil, fmt.Errorf("unknown tracking source %q", cfg.Source)
	}
}

// run drives the frame loop until quit is requested.
func (a *app) run() error {
	frames := 0
	fpsMark := time.Now()

	for {
		in := a.win.PollEvents()
		if in.Quit {
			return nil
		}
		if in.ToggleAnimation {
			a.animate = !a.animate
			logger.Debug("animation toggled", zap.Bool("active", a.animate))
		}
		if in.ReloadDesign {
			a.reloadDesign()
		}

		if w, h := a.win.GetSize(); w != a.lastWidth || h != a.lastHeight {
			a.lastWidth, a.lastHeight = w, h
			a.renderer.Resize(w, h)
		}

		derived := a.doc.Config
		if a.animate {
			t := time.Since(a.start).Seconds()
			derived = design.DeriveRenderConfig(a.doc.Config, a.doc.Animations, t)
		}
		if derived != a.renderCfg {
			a.regenerate(derived)
		}

		transforms := a.session.Tick()
		a.renderer.UpdateInstances(a.set, transforms)

		parent := xmath.Identity()
		if pose := a.session.HeadPose(); pose != nil {
			parent = *pose
		}
		projection := xmath.Perspective(0.9, a.win.AspectRatio(), 0.1, 50)
		a.renderer.Draw(parent, a.view, projection)
		a.win.SwapBuffers()

		if a.cfg.Preview.ShowFPS {
			frames++
			if now := time.Now(); now.Sub(fpsMark) >= time.Second {
				a.win.SetTitle(fmt.Sprintf("CyberMask Preview - %d fps", frames))
				frames = 0
				fpsMark = now
			}
		}
	}
}

// regenerate rebuilds the instance set for a changed config and drops
// stale anchor bindings. A shape or material change also refreshes the
// shared mesh and surface uniforms.
func (a *app) regenerate(cfg design.MaskConfig) {
	if cfg.Shape != a.renderCfg.Shape {
		mesh := ornament.BuildShapeOrDefault(cfg.Shape, a.cfg.Design.MeshResolution)
		if err := a.renderer.SetMesh(mesh); err != nil {
			logger.Warn("mesh rebuild failed", zap.Error(err))
		}
	}
	if cfg.Material != a.renderCfg.Material {
		a.renderer.SetMaterial(cfg.Material)
	}

	a.set = placement.Generate(cfg, nil)
	a.engine.SetInstances(a.set)
	a.renderCfg = cfg
}

// reloadDesign re-reads the configured document from disk.
func (a *app) reloadDesign() {
	if a.cfg.Design.Path == "" {
		logger.Warn("no design path configured, nothing to reload")
		return
	}
	doc, err := design.Load(a.cfg.Design.Path)
	if err != nil {
		logger.Warn("design reload failed", zap.Error(err))
		return
	}
	a.doc = doc
	a.regenerate(doc.Config)
	logger.Info("design reloaded", zap.String("id", doc.ID))
}

// close tears down in reverse creation order. Safe after partial init.
func (a *app) close() {
	if a.session != nil {
		a.session.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.win != nil {
		a.win.Close()
	}
}
