package rasteredit

import "github.com/gogpu/rasteredit/internal/pixel"

// SessionOption configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	// Default software blending
//	s := rasteredit.NewSession(800, 600)
//
//	// Cache-backed blender (dependency injection)
//	s := rasteredit.NewSession(800, 600, rasteredit.WithBlender(pixel.NewAcceleratedBlender(0)))
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	blender pixel.Blender
	clock   Clock
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		blender: nil, // Will be set to pixel.NewSoftwareBlender() if nil
		clock:   nil, // Will be set to realClock{} if nil
	}
}

// WithBlender sets a custom Blender for the Session.
// Use this for dependency injection of a cache-backed or other Blender.
//
// Example:
//
//	b := pixel.NewAcceleratedBlender(128)
//	s := rasteredit.NewSession(800, 600, rasteredit.WithBlender(b))
func WithBlender(b pixel.Blender) SessionOption {
	return func(o *sessionOptions) {
		o.blender = b
	}
}

// WithClock injects a Clock used to timestamp performed steps.
// Tests supply a fixed Clock to get deterministic Moment timestamps;
// production code leaves this unset and gets the system clock.
func WithClock(c Clock) SessionOption {
	return func(o *sessionOptions) {
		o.clock = c
	}
}
