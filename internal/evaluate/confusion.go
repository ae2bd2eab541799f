// Package evaluate accumulates per-pixel classification quality of a
// foreground mask against a ground-truth mask.
package evaluate

import (
	"fmt"

	"gocv.io/x/gocv"
)

// foregroundValue is the sample value marking a foreground pixel in both the
// predicted mask and the ground truth.
const foregroundValue = 255

// ConfusionMatrix accumulates per-pixel counts across an arbitrary number of
// mask/ground-truth pairs.
type ConfusionMatrix struct {
	TruePositives  int64
	FalsePositives int64
	TrueNegatives  int64
	FalseNegatives int64
}

// Add compares a single-channel foreground mask against its single-channel
// ground truth and folds the per-pixel outcomes into the matrix.
func (c *ConfusionMatrix) Add(mask, truth gocv.Mat) error {
	if mask.Rows() != truth.Rows() || mask.Cols() != truth.Cols() {
		return fmt.Errorf("mask %dx%d does not match ground truth %dx%d",
			mask.Cols(), mask.Rows(), truth.Cols(), truth.Rows())
	}

	for y := 0; y < mask.Rows(); y++ {
		for x := 0; x < mask.Cols(); x++ {
			predicted := mask.GetUCharAt(y, x) == foregroundValue
			actual := truth.GetUCharAt(y, x) == foregroundValue

			switch {
			case predicted && actual:
				c.TruePositives++
			case predicted && !actual:
				c.FalsePositives++
			case !predicted && !actual:
				c.TrueNegatives++
			default:
				c.FalseNegatives++
			}
		}
	}
	return nil
}

// Recall returns TP / (TP + FN), or 0 when no positive ground truth has been
// seen.
func (c *ConfusionMatrix) Recall() float64 {
	denom := c.TruePositives + c.FalseNegatives
	if denom == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(denom)
}

// Precision returns TP / (TP + FP), or 0 when nothing has been predicted
// foreground.
func (c *ConfusionMatrix) Precision() float64 {
	denom := c.TruePositives + c.FalsePositives
	if denom == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(denom)
}

// FScore returns the harmonic mean of precision and recall, or 0 when both
// are zero.
func (c *ConfusionMatrix) FScore() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
