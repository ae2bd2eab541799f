// Package subtraction implements the built-in background subtraction
// strategies and the bootstrap that binds them into a bgs.Registry.
package subtraction

import (
	"errors"

	"gocv.io/x/gocv"

	"bgslib/bgs"
	"bgslib/internal/imutil"
)

const (
	defaultThreshold = 15
	defaultAlpha     = 0.05
)

// FrameDifference classifies pixels by differencing each frame against the
// previous one: the background model is simply the last observed frame.
type FrameDifference struct {
	background gocv.Mat

	enableThreshold bool
	threshold       int
}

// NewFrameDifference returns a FrameDifference with default parameters.
func NewFrameDifference() *FrameDifference {
	return &FrameDifference{
		background:      gocv.NewMat(),
		enableThreshold: true,
		threshold:       defaultThreshold,
	}
}

func (f *FrameDifference) Name() string { return "FrameDifference" }

// Process computes |background - input|, reduced to a single channel and
// optionally binarized, then replaces the background with the input.
// The first call only seeds the background and emits an all-zero mask.
func (f *FrameDifference) Process(input gocv.Mat) (gocv.Mat, gocv.Mat) {
	foreground, background := bgs.NewOutputs(input)

	if f.background.Empty() {
		input.CopyTo(&f.background)
		return foreground, background
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(f.background, input, &diff)
	imutil.GrayInPlace(&diff)

	if f.enableThreshold {
		gocv.Threshold(diff, &diff, float32(f.threshold), 255, gocv.ThresholdBinary)
	}

	diff.CopyTo(&foreground)

	input.CopyTo(&f.background)
	f.background.CopyTo(&background)

	return foreground, background
}

// SetParams recognizes enableThreshold and threshold.
func (f *FrameDifference) SetParams(params bgs.Params) error {
	var errs []error
	if v, ok := params["enableThreshold"]; ok {
		f.enableThreshold = bgs.ParseBool(v)
	}
	if v, ok := params["threshold"]; ok {
		if n, err := bgs.ParseInt("threshold", v); err != nil {
			errs = append(errs, err)
		} else {
			f.threshold = n
		}
	}
	return errors.Join(errs...)
}

// Params returns the current configuration.
func (f *FrameDifference) Params() bgs.Params {
	return bgs.Params{
		"enableThreshold": bgs.FormatBool(f.enableThreshold),
		"threshold":       bgs.FormatInt(f.threshold),
	}
}

// Close releases the background model.
func (f *FrameDifference) Close() {
	f.background.Close()
}
