package pdfimage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// pdfcpu would otherwise create its config directory in the user's home on first use.
func init() {
	api.DisableConfigDir()
}

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

func PageCount(pdf []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(pdf), newConfiguration())
	if err != nil {
		return 0, fmt.Errorf("failed to read page count: %w", err)
	}
	return count, nil
}

// Draw img on the given 1-based page so that it covers exactly rect.
func DrawImageOnPage(pdf []byte, img Image, page int, rect DrawRectangle) ([]byte, error) {
	dims, err := img.Dimensions()
	if err != nil {
		return nil, err
	}

	// Anchor bottom-left so the offset is the lower left corner of the image in page space,
	// y is not inverted for bottom anchors.
	wm, err := api.ImageWatermarkForReader(bytes.NewReader(img.Data), "pos:bl, off:0 0, scale:1 abs, rot:0, op:1", true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare image %q: %w", img.Name, err)
	}

	// Set the computed values directly, pdfcpu rejects scale factors below 0.01 when parsed from a description
	wm.Scale = rect.ScaleOf(dims)
	wm.ScaleAbs = true
	wm.Dx = rect.X
	wm.Dy = rect.Y

	var out bytes.Buffer
	selectedPages := []string{fmt.Sprintf("%d", page)}
	if err := api.AddWatermarks(bytes.NewReader(pdf), &out, selectedPages, wm, newConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to draw image %q on page %d: %w", img.Name, page, err)
	}

	return out.Bytes(), nil
}

// Append a new page of the given size to pdf with img drawn at rect.
// If pdf is empty a new document is created.
func AppendImagePage(pdf []byte, img Image, size PageSize, rect DrawRectangle) ([]byte, error) {
	dims, err := img.Dimensions()
	if err != nil {
		return nil, err
	}

	imp := pdfcpu.DefaultImportConfig()
	imp.PageDim = &types.Dim{Width: size.Width, Height: size.Height}
	imp.UserDim = true
	imp.InpUnit = types.POINTS
	imp.Pos = types.BottomLeft
	imp.Dx = rect.X
	imp.Dy = rect.Y
	imp.Scale = rect.ScaleOf(dims)
	imp.ScaleAbs = true

	var rs io.ReadSeeker
	if len(pdf) > 0 {
		rs = bytes.NewReader(pdf)
	}

	var out bytes.Buffer
	if err := api.ImportImages(rs, &out, []io.Reader{bytes.NewReader(img.Data)}, imp, newConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to add page for image %q: %w", img.Name, err)
	}

	return out.Bytes(), nil
}

// Read and write back a document without changing its pages.
func Resave(pdf []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := api.Optimize(bytes.NewReader(pdf), &out, newConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}
	return out.Bytes(), nil
}
