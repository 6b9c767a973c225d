package pdfimage

type Anchor int

const (
	// Center the image on both axes of the region
	AnchorCenter Anchor = iota
	// Center horizontally, keep the top edge of the image on the top edge of the region
	AnchorTop
)

type PageSize struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

var PageSizeLetter = PageSize{Width: 612, Height: 792}

// Placement is one named rule for where uploaded images land on a page.
type Placement struct {
	Name   string
	Region PlacementRegion
	Anchor Anchor
}

// Image drawn into a fixed box on an existing page, fit and centered.
func TemplatePlacement(box PlacementRegion) Placement {
	return Placement{
		Name:   "template",
		Region: box,
		Anchor: AnchorCenter,
	}
}

// Image drawn on a freshly created page. The image is scaled to fit the page minus the
// top margin, centered horizontally, and its top edge sits exactly margin below the page top.
// It is not centered vertically.
func PagePlacement(page PageSize, margin float64) Placement {
	return Placement{
		Name: "page",
		Region: PlacementRegion{
			X:      0,
			Y:      0,
			Width:  page.Width,
			Height: page.Height - margin,
		},
		Anchor: AnchorTop,
	}
}

func (p Placement) Place(img ImageDimensions) DrawRectangle {
	rect := FitAndCenter(p.Region, img)

	if p.Anchor == AnchorTop {
		rect.Y = p.Region.Y + p.Region.Height - rect.Height
	}

	return rect
}
