package subtraction

import (
	"errors"

	"gocv.io/x/gocv"

	"bgslib/bgs"
	"bgslib/internal/imutil"
)

// AdaptiveSelectiveBackgroundLearning is an exponential-moving-average model
// with per-pixel gating: after an optional unconditional learning phase, only
// pixels currently classified as background blend toward the input, so
// moving foreground objects never corrupt the model at their own location.
// Processing is forced to a single channel.
type AdaptiveSelectiveBackgroundLearning struct {
	background gocv.Mat
	counter    int

	alphaLearn     float64
	alphaDetection float64
	learningFrames int
	threshold      int
}

// NewAdaptiveSelectiveBackgroundLearning returns an instance with default
// parameters. The default learningFrames of -1 makes the guard
// learningFrames > 0 false from the start, so the selective phase is entered
// on the first eligible call.
func NewAdaptiveSelectiveBackgroundLearning() *AdaptiveSelectiveBackgroundLearning {
	return &AdaptiveSelectiveBackgroundLearning{
		background:     gocv.NewMat(),
		alphaLearn:     defaultAlpha,
		alphaDetection: defaultAlpha,
		learningFrames: -1,
		threshold:      defaultThreshold,
	}
}

func (a *AdaptiveSelectiveBackgroundLearning) Name() string {
	return "AdaptiveSelectiveBackgroundLearning"
}

// Process classifies the grayscale-reduced input against the model,
// binarizes and median-filters the mask, then updates the model either
// unconditionally (while counter <= learningFrames) or selectively at
// mask == 0 locations only.
func (a *AdaptiveSelectiveBackgroundLearning) Process(input gocv.Mat) (gocv.Mat, gocv.Mat) {
	foreground, background := bgs.NewOutputs(input)

	gray := imutil.ToGray(input)
	defer gray.Close()

	if a.background.Empty() {
		gray.CopyTo(&a.background)
	}

	inputF := imutil.ToFloat(gray)
	defer inputF.Close()
	backgroundF := imutil.ToFloat(a.background)
	defer backgroundF.Close()

	diffF := gocv.NewMat()
	defer diffF.Close()
	gocv.AbsDiff(inputF, backgroundF, &diffF)

	mask := imutil.ToByte(diffF)
	defer mask.Close()
	gocv.Threshold(mask, &mask, float32(a.threshold), 255, gocv.ThresholdBinary)
	// 3x3 median suppresses isolated noisy pixels before the mask gates the
	// model update.
	gocv.MedianBlur(mask, &mask, 3)

	if a.learningFrames > 0 && a.counter <= a.learningFrames {
		gocv.AddWeighted(inputF, a.alphaLearn, backgroundF, 1-a.alphaLearn, 0, &backgroundF)
		a.counter++
	} else {
		rows, cols := gray.Rows(), gray.Cols()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if mask.GetUCharAt(i, j) != 0 {
					continue
				}
				blended := a.alphaDetection*float64(inputF.GetFloatAt(i, j)) +
					(1-a.alphaDetection)*float64(backgroundF.GetFloatAt(i, j))
				backgroundF.SetFloatAt(i, j, float32(blended))
			}
		}
	}

	quantized := imutil.ToByte(backgroundF)
	quantized.CopyTo(&a.background)
	quantized.Close()

	mask.CopyTo(&foreground)
	a.background.CopyTo(&background)

	return foreground, background
}

// SetParams recognizes alphaLearn, alphaDetection, learningFrames and
// threshold.
func (a *AdaptiveSelectiveBackgroundLearning) SetParams(params bgs.Params) error {
	var errs []error
	if v, ok := params["alphaLearn"]; ok {
		if f, err := bgs.ParseFloat("alphaLearn", v); err != nil {
			errs = append(errs, err)
		} else {
			a.alphaLearn = f
		}
	}
	if v, ok := params["alphaDetection"]; ok {
		if f, err := bgs.ParseFloat("alphaDetection", v); err != nil {
			errs = append(errs, err)
		} else {
			a.alphaDetection = f
		}
	}
	if v, ok := params["learningFrames"]; ok {
		if n, err := bgs.ParseInt("learningFrames", v); err != nil {
			errs = append(errs, err)
		} else {
			a.learningFrames = n
		}
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
func (a *AdaptiveSelectiveBackgroundLearning) Params() bgs.Params {
	return bgs.Params{
		"alphaLearn":     bgs.FormatFloat(a.alphaLearn),
		"alphaDetection": bgs.FormatFloat(a.alphaDetection),
		"learningFrames": bgs.FormatInt(a.learningFrames),
		"threshold":      bgs.FormatInt(a.threshold),
	}
}

// Close releases the background model.
func (a *AdaptiveSelectiveBackgroundLearning) Close() {
	a.background.Close()
}
