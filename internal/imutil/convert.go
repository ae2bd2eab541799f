// Package imutil provides the Mat conversions the subtraction strategies
// share: grayscale reduction and movement between the 8-bit storage domain
// and the normalized float domain used for blending.
package imutil

import (
	"gocv.io/x/gocv"
)

// ToGray returns a single-channel copy of src, converting from BGR when src
// has three channels. The caller owns the returned Mat.
func ToGray(src gocv.Mat) gocv.Mat {
	if src.Channels() == 1 {
		return src.Clone()
	}
	dst := gocv.NewMat()
	gocv.CvtColor(src, &dst, gocv.ColorBGRToGray)
	return dst
}

// ToFloat converts an 8-bit image into the normalized float domain,
// scaling sample values into [0,1]. Repeated exponential blending happens
// in this domain to avoid accumulating 8-bit truncation error.
func ToFloat(src gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	src.ConvertToWithParams(&dst, gocv.MatTypeCV32F, 1.0/255.0, 0)
	return dst
}

// ToByte converts a normalized float image back to 8-bit storage,
// scaling [0,1] onto [0,255].
func ToByte(src gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	src.ConvertToWithParams(&dst, gocv.MatTypeCV8U, 255, 0)
	return dst
}

// GrayInPlace reduces a multi-channel image to a single channel, replacing
// m. Single-channel images are left untouched.
func GrayInPlace(m *gocv.Mat) {
	if m.Channels() == 1 {
		return
	}
	gray := gocv.NewMat()
	gocv.CvtColor(*m, &gray, gocv.ColorBGRToGray)
	m.Close()
	*m = gray
}
