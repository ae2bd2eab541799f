package subtraction

import (
	"errors"

	"gocv.io/x/gocv"

	"bgslib/bgs"
	"bgslib/internal/imutil"
)

// WeightedMovingMean models the background as a weighted mean of the current
// frame and the two previous frames, kept as raw history buffers rather than
// a blended accumulator. Weights are 0.5/0.3/0.2 (current/previous/oldest)
// when enableWeight is set, uniform thirds otherwise.
type WeightedMovingMean struct {
	prev1 gocv.Mat
	prev2 gocv.Mat

	enableWeight    bool
	enableThreshold bool
	threshold       int
}

// NewWeightedMovingMean returns a WeightedMovingMean with default
// parameters.
func NewWeightedMovingMean() *WeightedMovingMean {
	return &WeightedMovingMean{
		prev1:           gocv.NewMat(),
		prev2:           gocv.NewMat(),
		enableWeight:    true,
		enableThreshold: true,
		threshold:       defaultThreshold,
	}
}

func (w *WeightedMovingMean) Name() string { return "WeightedMovingMean" }

// Process needs two prior frames before it can classify anything, so the
// first two calls only fill the history and emit all-zero masks. From the
// third call on it combines (input, previous-1, previous-2) into the
// background, differences the input against it in the 8-bit domain, and
// shifts the history.
func (w *WeightedMovingMean) Process(input gocv.Mat) (gocv.Mat, gocv.Mat) {
	foreground, background := bgs.NewOutputs(input)

	if w.prev1.Empty() {
		input.CopyTo(&w.prev1)
		return foreground, background
	}
	if w.prev2.Empty() {
		w.prev1.CopyTo(&w.prev2)
		input.CopyTo(&w.prev1)
		return foreground, background
	}

	inputF := imutil.ToFloat(input)
	defer inputF.Close()
	prev1F := imutil.ToFloat(w.prev1)
	defer prev1F.Close()
	prev2F := imutil.ToFloat(w.prev2)
	defer prev2F.Close()

	backgroundF := gocv.NewMat()
	defer backgroundF.Close()
	if w.enableWeight {
		gocv.AddWeighted(inputF, 0.5, prev1F, 0.3, 0, &backgroundF)
		gocv.AddWeighted(backgroundF, 1, prev2F, 0.2, 0, &backgroundF)
	} else {
		gocv.AddWeighted(inputF, 1.0/3, prev1F, 1.0/3, 0, &backgroundF)
		gocv.AddWeighted(backgroundF, 1, prev2F, 1.0/3, 0, &backgroundF)
	}

	model := imutil.ToByte(backgroundF)
	defer model.Close()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(input, model, &diff)
	imutil.GrayInPlace(&diff)

	if w.enableThreshold {
		gocv.Threshold(diff, &diff, float32(w.threshold), 255, gocv.ThresholdBinary)
	}

	diff.CopyTo(&foreground)
	model.CopyTo(&background)

	w.prev1.CopyTo(&w.prev2)
	input.CopyTo(&w.prev1)

	return foreground, background
}

// SetParams recognizes enableWeight, enableThreshold and threshold.
func (w *WeightedMovingMean) SetParams(params bgs.Params) error {
	var errs []error
	if v, ok := params["enableWeight"]; ok {
		w.enableWeight = bgs.ParseBool(v)
	}
	if v, ok := params["enableThreshold"]; ok {
		w.enableThreshold = bgs.ParseBool(v)
	}
	if v, ok := params["threshold"]; ok {
		if n, err := bgs.ParseInt("threshold", v); err != nil {
			errs = append(errs, err)
		} else {
			w.threshold = n
		}
	}
	return errors.Join(errs...)
}

// Params returns the current configuration.
func (w *WeightedMovingMean) Params() bgs.Params {
	return bgs.Params{
		"enableWeight":    bgs.FormatBool(w.enableWeight),
		"enableThreshold": bgs.FormatBool(w.enableThreshold),
		"threshold":       bgs.FormatInt(w.threshold),
	}
}

// Close releases the frame history.
func (w *WeightedMovingMean) Close() {
	w.prev1.Close()
	w.prev2.Close()
}
