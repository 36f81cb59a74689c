package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/damage"
	"github.com/gogpu/damage/backend/term"
	"github.com/gogpu/damage/surface"
)

// blankWindow stands in for a window backend the scene cannot draw into.
type blankWindow struct{ damage.NopContext }

func (blankWindow) AcquireTarget(damage.FrameInfo) (damage.Target, error) { return nil, nil }
func (blankWindow) Present(damage.Target, damage.PresentInfo) error       { return nil }
func (blankWindow) Size() (int, int)                                      { return 1, 1 }
func (blankWindow) Close() error                                          { return nil }

func testRegistry(t *testing.T) *surface.Registry {
	t.Helper()
	reg := surface.NewRegistry()
	reg.Register("glfw", 100, func(surface.Options) (surface.Backend, error) {
		return blankWindow{}, nil
	}, nil)
	reg.Register("term", 10, func(opts surface.Options) (surface.Backend, error) {
		screen := tcell.NewSimulationScreen("UTF-8")
		require.NoError(t, screen.Init())
		t.Cleanup(screen.Fini)
		return term.New(screen, opts)
	}, nil)
	return reg
}

func TestOpenBackendDefaultsToTerminal(t *testing.T) {
	b, err := openBackend(testRegistry(t), "", surface.Options{})
	require.NoError(t, err)
	assert.IsType(t, &term.Surface{}, b)
	assert.True(t, drawsInto(b))
}

func TestOpenBackendAuto(t *testing.T) {
	b, err := openBackend(testRegistry(t), "auto", surface.Options{})
	require.NoError(t, err)
	assert.IsType(t, blankWindow{}, b)
	assert.False(t, drawsInto(b))
}

func TestOpenBackendByName(t *testing.T) {
	b, err := openBackend(testRegistry(t), "glfw", surface.Options{})
	require.NoError(t, err)
	assert.IsType(t, blankWindow{}, b)

	_, err = openBackend(testRegistry(t), "vulkan", surface.Options{})
	var notFound *surface.BackendNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
