package audio

import (
	"sync"

	"go.uber.org/zap"
)

// Output plays clips. Playback itself belongs to the host.
type Output interface {
	Play(clip ClipName) error
}

// OutputFactory creates the process-wide output on first activation.
type OutputFactory func() Output

// Owner is the host object an audio source is attached to.
type Owner interface {
	// KeepAcrossScenes marks the owner to survive scene transitions.
	KeepAcrossScenes()
	// Destroy tears the owner down.
	Destroy()
}

// Context is the process-scoped audio state. Create one per process with
// NewContext and hand it to everything that plays sound.
type Context struct {
	mu          sync.RWMutex
	initialized bool
	output      Output
}

// NewContext returns an uninitialized Context.
func NewContext() *Context {
	return &Context{}
}

// Initialized reports whether a bootstrap has created the output.
func (c *Context) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// Output returns the process-wide output, or nil before initialization.
func (c *Context) Output() Output {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.output
}

// Play sends clip to the output.
func (c *Context) Play(clip ClipName) error {
	if !clip.Valid() {
		return ErrUnknownClip
	}
	out := c.Output()
	if out == nil {
		return ErrNotInitialized
	}
	return out.Play(clip)
}

// claim creates the output if nobody has yet. It reports whether this
// call did the initialization. A factory that yields no output leaves the
// context uninitialized.
func (c *Context) claim(factory OutputFactory) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return false, nil
	}
	var out Output
	if factory != nil {
		out = factory()
	}
	if out == nil {
		return false, ErrNoOutput
	}
	c.output = out
	c.initialized = true
	return true, nil
}

// Outcome is the result of a bootstrap activation.
type Outcome int

const (
	// OutcomeInitialized means the activation created the output and its
	// owner now persists across scenes.
	OutcomeInitialized Outcome = iota
	// OutcomeDuplicate means the output already existed and the owner was destroyed.
	OutcomeDuplicate
	// OutcomeFailed means no output could be created. The owner is left as
	// is and the context stays uninitialized.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInitialized:
		return "initialized"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "failed"
	}
}

// Bootstrap ensures a single audio output exists. The first activation wins.
type Bootstrap struct {
	ctx     *Context
	factory OutputFactory
	logger  *zap.Logger
}

// NewBootstrap binds a bootstrap to ctx.
func NewBootstrap(ctx *Context, factory OutputFactory, logger *zap.Logger) *Bootstrap {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bootstrap{ctx: ctx, factory: factory, logger: logger}
}

// Activate runs when an audio source owner becomes active.
func (b *Bootstrap) Activate(owner Owner) Outcome {
	claimed, err := b.ctx.claim(b.factory)
	if err != nil {
		b.logger.Error("audio output unavailable", zap.Error(err))
		return OutcomeFailed
	}
	if claimed {
		owner.KeepAcrossScenes()
		b.logger.Info("audio output initialized")
		return OutcomeInitialized
	}

	owner.Destroy()
	b.logger.Debug("duplicate audio source destroyed")
	return OutcomeDuplicate
}

// Object is a bare Owner for hosts without a scene graph.
type Object struct {
	Name       string
	persistent bool
	destroyed  bool
}

// KeepAcrossScenes implements Owner.
func (o *Object) KeepAcrossScenes() { o.persistent = true }

// Destroy implements Owner.
func (o *Object) Destroy() { o.destroyed = true }

// Persistent reports whether the object survives scene transitions.
func (o *Object) Persistent() bool { return o.persistent }

// Destroyed reports whether the object was torn down.
func (o *Object) Destroyed() bool { return o.destroyed }
