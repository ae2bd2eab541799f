package bgs_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"bgslib/bgs"
)

// stubAlgorithm satisfies bgs.Algorithm without any image state.
type stubAlgorithm struct {
	name string
}

func (s *stubAlgorithm) Process(input gocv.Mat) (gocv.Mat, gocv.Mat) {
	return bgs.NewOutputs(input)
}

func (s *stubAlgorithm) SetParams(params bgs.Params) error { return nil }
func (s *stubAlgorithm) Params() bgs.Params                { return bgs.Params{} }
func (s *stubAlgorithm) Name() string                      { return s.name }
func (s *stubAlgorithm) Close()                            {}

func newTestRegistry() (*bgs.Registry, *bytes.Buffer) {
	var buf bytes.Buffer
	return bgs.NewRegistry(zerolog.New(&buf)), &buf
}

func TestRegistryCreateReturnsFreshInstances(t *testing.T) {
	registry, _ := newTestRegistry()
	registry.Register("Stub", func() bgs.Algorithm { return &stubAlgorithm{name: "Stub"} })

	first, err := registry.Create("Stub")
	require.NoError(t, err)
	second, err := registry.Create("Stub")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "Stub", first.Name())
}

func TestRegistryCreateUnknownName(t *testing.T) {
	registry, _ := newTestRegistry()

	_, err := registry.Create("NoSuchAlgorithm")
	require.Error(t, err)
	assert.True(t, errors.Is(err, bgs.ErrNotFound))
}

func TestRegistryReRegisterOverwritesWithWarning(t *testing.T) {
	registry, buf := newTestRegistry()
	registry.Register("Stub", func() bgs.Algorithm { return &stubAlgorithm{name: "first"} })

	require.Empty(t, buf.String())

	registry.Register("Stub", func() bgs.Algorithm { return &stubAlgorithm{name: "second"} })
	assert.Contains(t, buf.String(), "overwriting registered constructor")

	created, err := registry.Create("Stub")
	require.NoError(t, err)
	assert.Equal(t, "second", created.Name())
}

func TestRegistryRegisterNilConstructorPanics(t *testing.T) {
	registry, _ := newTestRegistry()
	require.Panics(t, func() { registry.Register("Stub", nil) })
}

func TestRegistryNames(t *testing.T) {
	registry, _ := newTestRegistry()
	assert.Empty(t, registry.Names())

	registry.Register("A", func() bgs.Algorithm { return &stubAlgorithm{name: "A"} })
	registry.Register("B", func() bgs.Algorithm { return &stubAlgorithm{name: "B"} })

	assert.ElementsMatch(t, []string{"A", "B"}, registry.Names())
}
