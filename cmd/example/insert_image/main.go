package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeakMengs/PdfImage/pkg/pdfimage"
)

// Insert a local image into a local template with the default placement box,
// the same thing POST /api/insert-image does.
//
//	go run ./cmd/example/insert_image template.pdf image.png out.pdf
func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: insert_image <template.pdf> <image.(png|jpg)> <out.pdf>")
		os.Exit(1)
	}
	templatePath, imagePath, outPath := os.Args[1], os.Args[2], os.Args[3]

	data, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Println("Error reading image:", err)
		os.Exit(1)
	}
	img := pdfimage.NewImage(filepath.Base(imagePath), data)

	cfg := pdfimage.NewDefaultConfig()
	cfg.TemplatePath = templatePath
	c := pdfimage.NewCompositor(*cfg)

	dims, err := img.Dimensions()
	if err != nil {
		fmt.Println("Error reading image size:", err)
		os.Exit(1)
	}
	rect := c.TemplatePlacement().Place(dims)
	fmt.Printf("Image %.0fx%.0f px drawn at x=%.2f y=%.2f size=%.2fx%.2f pt\n", dims.Width, dims.Height, rect.X, rect.Y, rect.Width, rect.Height)

	pdf, err := c.InsertIntoTemplate(img)
	if err != nil {
		fmt.Println("Error inserting image:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, pdf, 0644); err != nil {
		fmt.Println("Error writing output:", err)
		os.Exit(1)
	}
	fmt.Println("Image inserted successfully. Output file:", outPath)
}
