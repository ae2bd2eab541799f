// Package dataset walks evaluation datasets laid out as parallel frame and
// ground-truth directories whose files pair up positionally after sorting.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Pair is one input frame and its ground-truth mask.
type Pair struct {
	Frame string
	Truth string
}

// List returns the regular files in dir carrying the given extension
// (including the leading dot), sorted by name.
func List(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Pairs matches the frames in framesDir with the ground-truth masks in
// truthDir by sorted position. The directories must hold the same number of
// matching files.
func Pairs(framesDir, truthDir, ext string) ([]Pair, error) {
	frames, err := List(framesDir, ext)
	if err != nil {
		return nil, err
	}
	truths, err := List(truthDir, ext)
	if err != nil {
		return nil, err
	}
	if len(frames) != len(truths) {
		return nil, fmt.Errorf("frame count %d does not match ground-truth count %d",
			len(frames), len(truths))
	}

	pairs := make([]Pair, len(frames))
	for i := range frames {
		pairs[i] = Pair{Frame: frames[i], Truth: truths[i]}
	}
	return pairs, nil
}
