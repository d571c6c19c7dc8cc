package tracking

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/logger"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/binding"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// Session drives the binding engine from a landmark source, one tick per
// rendered frame. It owns the source's acquire/release lifecycle;
// binding state is dropped synchronously on Close so leaving AR mode
// never leaks device handles or stale anchors.
type Session struct {
	source   Source
	engine   *binding.Engine
	lastPose *xmath.Mat4
	started  bool
	closed   bool
}

// NewSession wires a source to a binding engine. Start must be called
// before the first Tick.
func NewSession(source Source, engine *binding.Engine) *Session {
	return &Session{source: source, engine: engine}
}

// Start acquires the landmark source. Failure is terminal for this
// session only; the caller's instance set and any other session are
// untouched.
func (s *Session) Start() error {
	if err := s.source.Acquire(); err != nil {
		return fmt.Errorf("acquiring landmark source: %w", err)
	}
	s.started = true
	logger.Info("tracking session started")
	return nil
}

// Tick pulls one snapshot and feeds the binding engine. A frame error or
// an undetected face unbinds but is not fatal; the last known transforms
// keep flowing to the renderer.
func (s *Session) Tick() []binding.InstanceTransform {
	if !s.started || s.closed {
		return s.engine.Observe(nil)
	}

	snap, err := s.source.Frame()
	if err != nil {
		logger.Warn("landmark frame failed", zap.Error(err))
		return s.engine.Observe(nil)
	}

	if !snap.HeadDetected {
		return s.engine.Observe(nil)
	}

	s.lastPose = snap.HeadPose
	return s.engine.Observe(snap.Landmarks)
}

// HeadPose returns the most recent head pose, or nil before the first
// detected frame. The renderer applies it to the parent frame holding
// both instances and landmarks; the binding output itself is head-local.
func (s *Session) HeadPose() *xmath.Mat4 {
	return s.lastPose
}

// Close releases the source and drops all binding state. Idempotent, and
// the source is released even when binding teardown has nothing to do.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.engine.Invalidate()
	if err := s.source.Release(); err != nil {
		return fmt.Errorf("releasing landmark source: %w", err)
	}
	logger.Info("tracking session closed")
	return nil
}
