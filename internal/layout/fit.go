package layout

// FitRect scales an image of native size iw x ih uniformly so it fits
// entirely inside target without cropping or stretching, and centers it,
// leaving symmetric letterbox gaps on the shorter axis when aspect ratios
// differ. A non-positive image dimension yields a zero Rect.
func FitRect(iw, ih float64, target Rect) Rect {
	if iw <= 0 || ih <= 0 {
		return Rect{}
	}
	scale := min(target.W/iw, target.H/ih)
	w := iw * scale
	h := ih * scale
	return Rect{
		X: target.X + (target.W-w)/2,
		Y: target.Y + (target.H-h)/2,
		W: w,
		H: h,
	}
}
