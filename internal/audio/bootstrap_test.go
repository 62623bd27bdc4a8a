package audio

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestActivateFirstWins(t *testing.T) {
	ctx := NewContext()
	created := 0
	var first Output
	factory := func() Output {
		created++
		out := NewLogOutput(nil)
		if first == nil {
			first = out
		}
		return out
	}
	boot := NewBootstrap(ctx, factory, zaptest.NewLogger(t))

	require.False(t, ctx.Initialized())
	require.Nil(t, ctx.Output())

	owner := &Object{Name: "GameAudioSource"}
	assert.Equal(t, OutcomeInitialized, boot.Activate(owner))
	assert.True(t, owner.Persistent())
	assert.False(t, owner.Destroyed())
	assert.True(t, ctx.Initialized())
	handle := ctx.Output()
	assert.Same(t, first, handle)

	for i := 0; i < 3; i++ {
		dup := &Object{Name: "GameAudioSource"}
		assert.Equal(t, OutcomeDuplicate, boot.Activate(dup))
		assert.True(t, dup.Destroyed())
		assert.False(t, dup.Persistent())
		assert.Same(t, handle, ctx.Output())
	}

	assert.Equal(t, 1, created)
}

func TestSeparateBootstrapsShareContext(t *testing.T) {
	ctx := NewContext()
	created := 0
	factory := func() Output {
		created++
		return NewLogOutput(nil)
	}

	a := NewBootstrap(ctx, factory, nil)
	b := NewBootstrap(ctx, factory, nil)

	assert.Equal(t, OutcomeInitialized, a.Activate(&Object{}))
	assert.Equal(t, OutcomeDuplicate, b.Activate(&Object{}))
	assert.Equal(t, 1, created)
}

func TestActivateConcurrentCreatesOneOutput(t *testing.T) {
	ctx := NewContext()
	var mu sync.Mutex
	created := 0
	boot := NewBootstrap(ctx, func() Output {
		mu.Lock()
		created++
		mu.Unlock()
		return NewLogOutput(nil)
	}, nil)

	var wg sync.WaitGroup
	outcomes := make(chan Outcome, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes <- boot.Activate(&Object{})
		}()
	}
	wg.Wait()
	close(outcomes)

	initialized := 0
	for o := range outcomes {
		if o == OutcomeInitialized {
			initialized++
		}
	}
	assert.Equal(t, 1, initialized)
	assert.Equal(t, 1, created)
}

func TestContextPlay(t *testing.T) {
	ctx := NewContext()
	assert.ErrorIs(t, ctx.Play(BallLost), ErrNotInitialized)

	out := NewLogOutput(zaptest.NewLogger(t))
	NewBootstrap(ctx, func() Output { return out }, nil).Activate(&Object{})

	require.NoError(t, ctx.Play(BallLost))
	require.NoError(t, ctx.Play(BallLost))
	require.NoError(t, ctx.Play(MenuButtonClick))
	assert.ErrorIs(t, ctx.Play(ClipName(42)), ErrUnknownClip)

	assert.Equal(t, 2, out.Count(BallLost))
	assert.Equal(t, 1, out.Count(MenuButtonClick))
	assert.Zero(t, out.Count(GameLost))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "initialized", OutcomeInitialized.String())
	assert.Equal(t, "duplicate", OutcomeDuplicate.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}

func TestActivateNilOutputLeavesContextUninitialized(t *testing.T) {
	ctx := NewContext()
	owner := &Object{Name: "GameAudioSource"}

	got := NewBootstrap(ctx, func() Output { return nil }, zaptest.NewLogger(t)).Activate(owner)

	assert.Equal(t, OutcomeFailed, got)
	assert.False(t, ctx.Initialized())
	assert.Nil(t, ctx.Output())
	assert.ErrorIs(t, ctx.Play(BallLost), ErrNotInitialized)
	assert.False(t, owner.Persistent())
	assert.False(t, owner.Destroyed())

	out := NewLogOutput(zaptest.NewLogger(t))
	retry := &Object{Name: "GameAudioSource"}
	assert.Equal(t, OutcomeInitialized, NewBootstrap(ctx, func() Output { return out }, nil).Activate(retry))
	assert.True(t, ctx.Initialized())
	require.NoError(t, ctx.Play(BallLost))
	assert.Equal(t, 1, out.Count(BallLost))
}

func TestActivateNilFactory(t *testing.T) {
	ctx := NewContext()

	assert.Equal(t, OutcomeFailed, NewBootstrap(ctx, nil, nil).Activate(&Object{}))
	assert.False(t, ctx.Initialized())
}
