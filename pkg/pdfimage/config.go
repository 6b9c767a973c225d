package pdfimage

type Config struct {
	// Path to the PDF the single image endpoint draws into, only the first page is used
	TemplatePath string
	// Box on the first template page the image is fit into
	TemplateBox PlacementRegion
	// Size of pages created for images
	PageSize PageSize
	// Distance between the top of a created page and the top of its image
	TopMargin float64
}

func NewDefaultConfig() *Config {
	return &Config{
		TemplatePath: "template.pdf",
		TemplateBox: PlacementRegion{
			X:      0,
			Y:      335,
			Width:  1600,
			Height: 625,
		},
		PageSize:  PageSizeLetter,
		TopMargin: 36,
	}
}
