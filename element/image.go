package element

// resolveImageSize applies the builder's image-sizing policy: with both
// width and height given and ignoreAspect false, height is recomputed from
// width via the original aspect ratio; with only one given, the other
// follows the same ratio; with neither given, the original dimensions pass
// through unchanged; ignoreAspect lets both given dimensions pass through
// as-is regardless of the original ratio.
func resolveImageSize(origWidth, origHeight float64, width, height *float64, ignoreAspect bool) (float64, float64) {
	switch {
	case width != nil && height != nil:
		w, h := *width, *height
		if !ignoreAspect && origWidth > 0 {
			h = w * origHeight / origWidth
		}
		return w, h
	case width != nil:
		w := *width
		if origWidth <= 0 {
			return w, w
		}
		return w, w * origHeight / origWidth
	case height != nil:
		h := *height
		if origHeight <= 0 {
			return h, h
		}
		return h * origWidth / origHeight, h
	default:
		return origWidth, origHeight
	}
}
