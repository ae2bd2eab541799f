package subtraction

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"bgslib/bgs"
)

// solidColor returns an 8x8 3-channel frame with every sample set to value.
func solidColor(value float64) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(value, value, value, 0), 8, 8, gocv.MatTypeCV8UC3)
}

// solidGray returns an 8x8 single-channel frame with every sample set to
// value.
func solidGray(value float64) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(value, 0, 0, 0), 8, 8, gocv.MatTypeCV8UC1)
}

func requireAllZero(t *testing.T, mask gocv.Mat) {
	t.Helper()
	require.Equal(t, 1, mask.Channels())
	require.Zero(t, gocv.CountNonZero(mask))
}

func requireAllForeground(t *testing.T, mask gocv.Mat) {
	t.Helper()
	require.Equal(t, 1, mask.Channels())
	require.Equal(t, mask.Rows()*mask.Cols(), gocv.CountNonZero(mask))
	require.EqualValues(t, 255, mask.GetUCharAt(0, 0))
}

func builtinConstructors() map[string]func() bgs.Algorithm {
	return map[string]func() bgs.Algorithm{
		"FrameDifference":                     func() bgs.Algorithm { return NewFrameDifference() },
		"AdaptiveBackgroundLearning":          func() bgs.Algorithm { return NewAdaptiveBackgroundLearning() },
		"AdaptiveSelectiveBackgroundLearning": func() bgs.Algorithm { return NewAdaptiveSelectiveBackgroundLearning() },
		"WeightedMovingMean":                  func() bgs.Algorithm { return NewWeightedMovingMean() },
	}
}

func TestNewRegistryHasBuiltins(t *testing.T) {
	registry := NewRegistry(zerolog.New(&bytes.Buffer{}))

	assert.ElementsMatch(t, []string{
		"FrameDifference",
		"AdaptiveBackgroundLearning",
		"AdaptiveSelectiveBackgroundLearning",
		"WeightedMovingMean",
	}, registry.Names())

	for _, name := range registry.Names() {
		algorithm, err := registry.Create(name)
		require.NoError(t, err)
		assert.Equal(t, name, algorithm.Name())
		algorithm.Close()
	}
}

func TestFirstCallEmitsZeroMask(t *testing.T) {
	for name, newAlgorithm := range builtinConstructors() {
		t.Run(name, func(t *testing.T) {
			algorithm := newAlgorithm()
			defer algorithm.Close()

			input := solidColor(128)
			defer input.Close()

			foreground, background := algorithm.Process(input)
			defer foreground.Close()
			defer background.Close()

			requireAllZero(t, foreground)
		})
	}
}

func TestStaticSceneProducesZeroMasks(t *testing.T) {
	for name, newAlgorithm := range builtinConstructors() {
		t.Run(name, func(t *testing.T) {
			algorithm := newAlgorithm()
			defer algorithm.Close()

			input := solidColor(90)
			defer input.Close()

			for call := 0; call < 5; call++ {
				foreground, background := algorithm.Process(input)
				requireAllZero(t, foreground)
				foreground.Close()
				background.Close()
			}
		})
	}
}

func TestParamsRoundTrip(t *testing.T) {
	for name, newAlgorithm := range builtinConstructors() {
		t.Run(name, func(t *testing.T) {
			algorithm := newAlgorithm()
			defer algorithm.Close()

			before := algorithm.Params()
			require.NoError(t, algorithm.SetParams(before))
			assert.Equal(t, before, algorithm.Params())
		})
	}
}

func TestUnrecognizedKeysIgnored(t *testing.T) {
	for name, newAlgorithm := range builtinConstructors() {
		t.Run(name, func(t *testing.T) {
			algorithm := newAlgorithm()
			defer algorithm.Close()

			before := algorithm.Params()
			require.NoError(t, algorithm.SetParams(bgs.Params{
				"noSuchParameter": "whatever",
			}))
			assert.Equal(t, before, algorithm.Params())
		})
	}
}

func TestProcessPanicsOnEmptyInput(t *testing.T) {
	for name, newAlgorithm := range builtinConstructors() {
		t.Run(name, func(t *testing.T) {
			algorithm := newAlgorithm()
			defer algorithm.Close()

			empty := gocv.NewMat()
			defer empty.Close()

			require.Panics(t, func() { algorithm.Process(empty) })
		})
	}
}
