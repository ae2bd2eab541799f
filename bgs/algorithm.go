// Package bgs defines the capability contract shared by all background
// subtraction algorithms: process one frame, set parameters, get parameters.
// Concrete strategies live in bgs/subtraction and are manufactured by name
// through a Registry.
package bgs

import (
	"gocv.io/x/gocv"
)

// Algorithm is the contract every background subtraction strategy implements.
//
// An instance owns its temporal state (background model, frame history)
// exclusively. Process calls must be sequential and in temporal order;
// concurrent calls on the same instance are undefined. Separate instances
// share no state.
type Algorithm interface {
	// Process classifies one frame against the instance's temporal model and
	// advances that model. It returns a freshly allocated foreground mask
	// (single-channel 8-bit, binary when thresholding is enabled) and
	// background model image; both are owned by the caller, who must Close
	// them. Process panics if input is empty: that is a programming error,
	// and continuing would silently corrupt the temporal model.
	Process(input gocv.Mat) (foreground, background gocv.Mat)

	// SetParams applies the keys present in params. Unrecognized keys are
	// ignored and unspecified keys keep their prior values. A value that
	// fails to parse leaves that key's prior value intact and is reported in
	// the returned error; other keys in the same call still apply.
	SetParams(params Params) error

	// Params returns the complete current configuration, every recognized
	// key present.
	Params() Params

	// Name returns the registry name of the strategy.
	Name() string

	// Close releases the instance's image buffers. The instance must not be
	// used afterwards.
	Close()
}

// NewOutputs allocates the output pair for one Process call: a zeroed
// single-channel 8-bit foreground mask and a zeroed 3-channel 8-bit
// background image, both sized to the input. Strategies copy their model
// over the background buffer, so a single-channel model yields a
// single-channel background output.
//
// Panics if input is empty.
func NewOutputs(input gocv.Mat) (foreground, background gocv.Mat) {
	if input.Empty() {
		panic("bgs: Process called with an empty input frame")
	}
	foreground = gocv.Zeros(input.Rows(), input.Cols(), gocv.MatTypeCV8UC1)
	background = gocv.Zeros(input.Rows(), input.Cols(), gocv.MatTypeCV8UC3)
	return foreground, background
}
