// bgs-stream runs a background subtraction algorithm over a live camera or
// a video file, showing the input, foreground mask and background model in
// OpenCV windows with an FPS overlay. Press q or ESC to quit.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"strings"

	"gocv.io/x/gocv"

	"bgslib/bgs"
	"bgslib/bgs/subtraction"
	"bgslib/internal/fpsmeter"
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

var overlayColor = color.RGBA{G: 255}

func main() {
	algorithmName := flag.String("algorithm", "FrameDifference", "background subtraction algorithm to run")
	device := flag.Int("device", 0, "camera device index")
	input := flag.String("input", "", "video file to read instead of a camera")
	delay := flag.Int("delay", 30, "delay between frames in milliseconds")
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
	log.Info().Str("algorithm", algorithm.Name()).
		Interface("params", algorithm.Params()).
		Msg("streaming")

	var capture *gocv.VideoCapture
	if *input != "" {
		capture, err = gocv.VideoCaptureFile(*input)
	} else {
		capture, err = gocv.VideoCaptureDevice(*device)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("open video capture")
	}
	defer capture.Close()

	inputWin := gocv.NewWindow("Input")
	defer inputWin.Close()
	maskWin := gocv.NewWindow("Foreground Mask")
	defer maskWin.Close()
	modelWin := gocv.NewWindow("Background Model")
	defer modelWin.Close()

	frame := gocv.NewMat()
	defer frame.Close()
	meter := fpsmeter.New()

	for {
		if ok := capture.Read(&frame); !ok {
			log.Info().Msg("end of stream")
			return
		}
		if frame.Empty() {
			continue
		}

		foreground, background := algorithm.Process(frame)
		meter.Tick()

		display := frame.Clone()
		gocv.PutText(&display, fmt.Sprintf("Avg FPS: %.2f", meter.AverageFPS()),
			image.Pt(10, 20), gocv.FontHersheySimplex, 0.5, overlayColor, 1)
		gocv.PutText(&display, fmt.Sprintf("Instant FPS: %.2f", meter.InstantFPS()),
			image.Pt(10, 40), gocv.FontHersheySimplex, 0.5, overlayColor, 1)

		inputWin.IMShow(display)
		maskWin.IMShow(foreground)
		modelWin.IMShow(background)

		display.Close()
		foreground.Close()
		background.Close()

		key := inputWin.WaitKey(*delay)
		if key == 'q' || key == 27 {
			return
		}
	}
}
