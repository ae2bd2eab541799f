package subtraction

import (
	"github.com/rs/zerolog"

	"bgslib/bgs"
)

// RegisterAll binds every built-in strategy into r. Call it once at process
// startup, before any Create.
func RegisterAll(r *bgs.Registry) {
	r.Register("FrameDifference", func() bgs.Algorithm { return NewFrameDifference() })
	r.Register("AdaptiveBackgroundLearning", func() bgs.Algorithm { return NewAdaptiveBackgroundLearning() })
	r.Register("AdaptiveSelectiveBackgroundLearning", func() bgs.Algorithm { return NewAdaptiveSelectiveBackgroundLearning() })
	r.Register("WeightedMovingMean", func() bgs.Algorithm { return NewWeightedMovingMean() })
}

// NewRegistry returns a registry pre-populated with the built-in strategies.
func NewRegistry(log zerolog.Logger) *bgs.Registry {
	r := bgs.NewRegistry(log)
	RegisterAll(r)
	return r
}
