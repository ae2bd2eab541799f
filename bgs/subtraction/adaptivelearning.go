package subtraction

import (
	"errors"

	"gocv.io/x/gocv"

	"bgslib/bgs"
	"bgslib/internal/imutil"
)

// AdaptiveBackgroundLearning maintains an exponential-moving-average
// background model: new = alpha*input + (1-alpha)*old, blended in the
// normalized float domain. Learning can be capped after a fixed number of
// frames; the foreground is always derived from the difference against the
// pre-update background, whether or not learning ran this call.
type AdaptiveBackgroundLearning struct {
	background gocv.Mat
	learned    int

	alpha             float64
	maxLearningFrames int
	enableThreshold   bool
	threshold         int
}

// NewAdaptiveBackgroundLearning returns an instance with default parameters
// (unbounded learning).
func NewAdaptiveBackgroundLearning() *AdaptiveBackgroundLearning {
	return &AdaptiveBackgroundLearning{
		background:        gocv.NewMat(),
		alpha:             defaultAlpha,
		maxLearningFrames: -1,
		enableThreshold:   true,
		threshold:         defaultThreshold,
	}
}

func (a *AdaptiveBackgroundLearning) Name() string { return "AdaptiveBackgroundLearning" }

// Process blends the background toward the input while learning is active
// and classifies pixels by their difference against the pre-update model.
// The first call seeds the model from the input and still computes the
// difference against the just-seeded value, so its mask is all zero without
// an early return.
func (a *AdaptiveBackgroundLearning) Process(input gocv.Mat) (gocv.Mat, gocv.Mat) {
	foreground, background := bgs.NewOutputs(input)

	if a.background.Empty() {
		input.CopyTo(&a.background)
	}

	inputF := imutil.ToFloat(input)
	defer inputF.Close()
	backgroundF := imutil.ToFloat(a.background)
	defer backgroundF.Close()

	diffF := gocv.NewMat()
	defer diffF.Close()
	gocv.AbsDiff(inputF, backgroundF, &diffF)

	if (a.maxLearningFrames > 0 && a.learned < a.maxLearningFrames) || a.maxLearningFrames == -1 {
		gocv.AddWeighted(inputF, a.alpha, backgroundF, 1-a.alpha, 0, &backgroundF)

		// The model is stored 8-bit between calls; re-quantize after every
		// update so each call reads the same representation it emits.
		quantized := imutil.ToByte(backgroundF)
		quantized.CopyTo(&a.background)
		quantized.Close()

		if a.maxLearningFrames > 0 && a.learned < a.maxLearningFrames {
			a.learned++
		}
	}

	diff := imutil.ToByte(diffF)
	defer diff.Close()
	imutil.GrayInPlace(&diff)

	if a.enableThreshold {
		gocv.Threshold(diff, &diff, float32(a.threshold), 255, gocv.ThresholdBinary)
	}

	diff.CopyTo(&foreground)
	a.background.CopyTo(&background)

	return foreground, background
}

// SetParams recognizes alpha, maxLearningFrames, enableThreshold and
// threshold.
func (a *AdaptiveBackgroundLearning) SetParams(params bgs.Params) error {
	var errs []error
	if v, ok := params["alpha"]; ok {
		if f, err := bgs.ParseFloat("alpha", v); err != nil {
			errs = append(errs, err)
		} else {
			a.alpha = f
		}
	}
	if v, ok := params["maxLearningFrames"]; ok {
		if n, err := bgs.ParseInt("maxLearningFrames", v); err != nil {
			errs = append(errs, err)
		} else {
			a.maxLearningFrames = n
		}
	}
	if v, ok := params["enableThreshold"]; ok {
		a.enableThreshold = bgs.ParseBool(v)
	}
	if v, ok := params["threshold"]; ok {
		if n, err := bgs.ParseInt("threshold", v); err != nil {
			errs = append(errs, err)
		} else {
			a.threshold = n
		}
	}
	return errors.Join(errs...)
}

// Params returns the current configuration.
func (a *AdaptiveBackgroundLearning) Params() bgs.Params {
	return bgs.Params{
		"alpha":             bgs.FormatFloat(a.alpha),
		"maxLearningFrames": bgs.FormatInt(a.maxLearningFrames),
		"enableThreshold":   bgs.FormatBool(a.enableThreshold),
		"threshold":         bgs.FormatInt(a.threshold),
	}
}

// Close releases the background model.
func (a *AdaptiveBackgroundLearning) Close() {
	a.background.Close()
}
