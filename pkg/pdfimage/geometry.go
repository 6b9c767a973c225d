package pdfimage

/*
 * All coordinates are PDF points with the origin at the bottom-left corner of the page.
 * An image is measured in pixels and drawn at one point per pixel when the scale is 1.
 */

// The area an image must fit inside
type PlacementRegion struct {
	X      float64 `json:"x" validate:"gte=0"`
	Y      float64 `json:"y" validate:"gte=0"`
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

type ImageDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Where and how large an image is rendered on the page
type DrawRectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scale relative to the given image dimensions, 1 means drawn at natural size.
func (r DrawRectangle) ScaleOf(img ImageDimensions) float64 {
	return r.Width / img.Width
}

// FitAndCenter scales the image uniformly to the largest size that fits the region on both axes
// and centers the result inside the region. There is no upper bound on the scale,
// a small image in a large region is enlarged until the binding axis touches the region.
//
// Region and image dimensions must be positive.
func FitAndCenter(region PlacementRegion, img ImageDimensions) DrawRectangle {
	scale := min(region.Width/img.Width, region.Height/img.Height)
	width := img.Width * scale
	height := img.Height * scale

	return DrawRectangle{
		X:      region.X + (region.Width-width)/2,
		Y:      region.Y + (region.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
