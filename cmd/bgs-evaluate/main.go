// bgs-evaluate runs a background subtraction algorithm over a dataset of
// frames with ground-truth masks and reports per-pixel confusion counts,
// recall, precision and F-score.
//
// The dataset is a base directory holding a frames directory and a
// groundtruth directory whose image files pair up positionally after
// sorting, e.g.:
//
//	bgs-evaluate -algorithm WeightedMovingMean -dataset ./datasets/ucsd/boats
//	bgs-evaluate -dataset ./custom -frames input -groundtruth gt -extension .jpg
//	bgs-evaluate -visual-debug -delay 100
package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"bgslib/bgs"
	"bgslib/bgs/subtraction"
	"bgslib/internal/dataset"
	"bgslib/internal/evaluate"
	"bgslib/internal/logger"
)

// paramFlags collects repeated -param key=value flags.
type paramFlags map[string]string

func (p paramFlags) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (p paramFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	p[key] = val
	return nil
}

func main() {
	algorithmName := flag.String("algorithm", "FrameDifference", "background subtraction algorithm to evaluate")
	datasetPath := flag.String("dataset", "./datasets/ucsd/boats", "base dataset path")
	framesDir := flag.String("frames", "frames", "frames directory name inside the dataset")
	truthDir := flag.String("groundtruth", "groundtruth", "ground-truth directory name inside the dataset")
	extension := flag.String("extension", ".png", "image file extension")
	delay := flag.Int("delay", 30, "delay between frames in milliseconds (visual debug only)")
	visualDebug := flag.Bool("visual-debug", false, "show frames, masks and ground truth while evaluating")
	params := paramFlags{}
	flag.Var(params, "param", "algorithm parameter as key=value (repeatable)")
	flag.Parse()

	log := logger.NewConsole(logger.LevelFromEnv())
	registry := subtraction.NewRegistry(log)

	algorithm, err := registry.Create(*algorithmName)
	if err != nil {
		log.Fatal().Err(err).Str("algorithm", *algorithmName).Msg("create failed")
	}
	defer algorithm.Close()

	if len(params) > 0 {
		if err := algorithm.SetParams(bgs.Params(params)); err != nil {
			log.Fatal().Err(err).Msg("apply parameters")
		}
	}

	pairs, err := dataset.Pairs(
		filepath.Join(*datasetPath, *framesDir),
		filepath.Join(*datasetPath, *truthDir),
		*extension,
	)
	if err != nil {
		log.Fatal().Err(err).Str("dataset", *datasetPath).Msg("load dataset")
	}
	log.Info().Str("algorithm", algorithm.Name()).Int("frames", len(pairs)).Msg("evaluating")

	var windows []*gocv.Window
	if *visualDebug {
		for _, name := range []string{"Input Frame", "Foreground Mask", "Background Model", "Ground Truth"} {
			windows = append(windows, gocv.NewWindow(name))
		}
		defer func() {
			for _, w := range windows {
				w.Close()
			}
		}()
	}

	var matrix evaluate.ConfusionMatrix
	for i, pair := range pairs {
		frame := gocv.IMRead(pair.Frame, gocv.IMReadGrayScale)
		truth := gocv.IMRead(pair.Truth, gocv.IMReadGrayScale)
		if frame.Empty() || truth.Empty() {
			log.Error().Str("frame", pair.Frame).Str("truth", pair.Truth).Msg("unreadable image pair")
			frame.Close()
			truth.Close()
			continue
		}

		foreground, background := algorithm.Process(frame)

		if err := matrix.Add(foreground, truth); err != nil {
			log.Fatal().Err(err).Str("frame", pair.Frame).Msg("accumulate confusion counts")
		}

		stop := false
		if *visualDebug {
			windows[0].IMShow(frame)
			windows[1].IMShow(foreground)
			windows[2].IMShow(background)
			windows[3].IMShow(truth)

			key := windows[0].WaitKey(*delay)
			stop = key == 'q' || key == 27
		}

		frame.Close()
		truth.Close()
		foreground.Close()
		background.Close()

		log.Debug().Int("frame", i+1).Int("total", len(pairs)).Msg("processed")
		if stop {
			break
		}
	}

	fmt.Printf("Evaluation results for %s:\n", algorithm.Name())
	fmt.Printf("TP: %d\n", matrix.TruePositives)
	fmt.Printf("FP: %d\n", matrix.FalsePositives)
	fmt.Printf("TN: %d\n", matrix.TrueNegatives)
	fmt.Printf("FN: %d\n", matrix.FalseNegatives)
	fmt.Printf("Recall: %.6f\n", matrix.Recall())
	fmt.Printf("Precision: %.6f\n", matrix.Precision())
	fmt.Printf("F-score: %.6f\n", matrix.FScore())
}
