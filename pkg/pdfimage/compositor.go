package pdfimage

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrTemplateNotFound = errors.New("template pdf not found")
	ErrTemplateNoPages  = errors.New("template pdf has no pages")
	ErrNoImages         = errors.New("no images provided")
	ErrNoPdf            = errors.New("no pdf provided")
)

// Compositor draws uploaded images into PDF documents. It only holds configuration
// and can be shared between requests.
type Compositor struct {
	cfg        Config
	countPages func(pdf []byte) (int, error)
}

func NewCompositor(cfg Config) *Compositor {
	return &Compositor{cfg: cfg, countPages: PageCount}
}

func (c *Compositor) TemplatePlacement() Placement {
	return TemplatePlacement(c.cfg.TemplateBox)
}

func (c *Compositor) PagePlacement() Placement {
	return PagePlacement(c.cfg.PageSize, c.cfg.TopMargin)
}

func (c *Compositor) readTemplate() ([]byte, error) {
	data, err := os.ReadFile(c.cfg.TemplatePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrTemplateNotFound, c.cfg.TemplatePath)
		}
		return nil, fmt.Errorf("failed to read template %s: %w", c.cfg.TemplatePath, err)
	}
	return data, nil
}

// InsertIntoTemplate loads the configured template and draws img into the template box on the first page.
func (c *Compositor) InsertIntoTemplate(img Image) ([]byte, error) {
	template, err := c.readTemplate()
	if err != nil {
		return nil, err
	}

	pageCount, err := c.countPages(template)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", c.cfg.TemplatePath, err)
	}
	if pageCount < 1 {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNoPages, c.cfg.TemplatePath)
	}

	dims, err := img.Dimensions()
	if err != nil {
		return nil, err
	}

	return DrawImageOnPage(template, img, 1, c.TemplatePlacement().Place(dims))
}

// ImagesToPdf creates a new document with one page per image, in the given order.
func (c *Compositor) ImagesToPdf(imgs []Image) ([]byte, error) {
	if len(imgs) == 0 {
		return nil, ErrNoImages
	}

	return c.appendPages(nil, imgs)
}

// AppendImagesToPdf adds one page per image after the last page of pdf.
// The existing pages are left untouched.
func (c *Compositor) AppendImagesToPdf(pdf []byte, imgs []Image) ([]byte, error) {
	if len(pdf) == 0 {
		return nil, ErrNoPdf
	}

	if len(imgs) == 0 {
		return Resave(pdf)
	}

	return c.appendPages(pdf, imgs)
}

func (c *Compositor) appendPages(pdf []byte, imgs []Image) ([]byte, error) {
	placement := c.PagePlacement()
	current := pdf

	for _, img := range imgs {
		dims, err := img.Dimensions()
		if err != nil {
			return nil, err
		}

		current, err = AppendImagePage(current, img, c.cfg.PageSize, placement.Place(dims))
		if err != nil {
			return nil, err
		}
	}

	return current, nil
}
