package main

import (
	"fmt"
	"os"

	"github.com/SeakMengs/PdfImage/pkg/pdfimage"
)

// Print the page count of a pdf, handy to check a template before pointing TEMPLATE_PDF_PATH at it.
func main() {
	pdfFilePath := "template.pdf"
	if len(os.Args) > 1 {
		pdfFilePath = os.Args[1]
	}

	data, err := os.ReadFile(pdfFilePath)
	if err != nil {
		panic(err)
	}

	pageCount, err := pdfimage.PageCount(data)
	if err != nil {
		panic(err)
	}
	if pageCount < 1 {
		panic("pdf has no pages")
	}

	fmt.Printf("PDF Page Count: %d\n", pageCount)
}
