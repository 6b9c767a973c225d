package util

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrImageTypeNotAllowed = errors.New("only JPEG and PNG images are allowed")
	ErrPdfTypeNotAllowed   = errors.New("only PDF files are allowed")
	ErrFileTooLarge        = errors.New("file too large")
	ErrTooManyFiles        = errors.New("too many files")
)

type UploadKind int

const (
	UploadKindImage UploadKind = iota
	UploadKindPdf
)

var (
	declaredImageType = regexp.MustCompile(`(?i)jpeg|jpg|png`)
	declaredPdfType   = regexp.MustCompile(`(?i)pdf|octet-stream`)
)

// Limits for one multipart field
type UploadRule struct {
	Field    string
	Kind     UploadKind
	MaxCount int
	MaxSize  int64
}

type UploadedFile struct {
	Filename string
	// Detected from the content, not the declared header
	MimeType string
	Data     []byte
}

func (r UploadRule) typeError() error {
	if r.Kind == UploadKindPdf {
		return ErrPdfTypeNotAllowed
	}
	return ErrImageTypeNotAllowed
}

func (r UploadRule) declaredTypeAllowed(contentType string) bool {
	if contentType == "" {
		return true
	}

	if r.Kind == UploadKindPdf {
		return declaredPdfType.MatchString(contentType)
	}
	return declaredImageType.MatchString(contentType)
}

func (r UploadRule) detectedTypeAllowed(mt *mimetype.MIME) bool {
	if r.Kind == UploadKindPdf {
		return mt.Is("application/pdf")
	}
	return mt.Is("image/jpeg") || mt.Is("image/png")
}

// Read and check every file of the rule's field. A missing field is not an error,
// the caller decides whether the field is required.
func ReadUploads(form *multipart.Form, rule UploadRule) ([]UploadedFile, error) {
	if form == nil {
		return nil, nil
	}

	headers := form.File[rule.Field]
	if rule.MaxCount > 0 && len(headers) > rule.MaxCount {
		return nil, fmt.Errorf("%w for field %s", ErrTooManyFiles, rule.Field)
	}

	files := make([]UploadedFile, 0, len(headers))
	for _, fh := range headers {
		file, err := readUpload(fh, rule)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}

	return files, nil
}

func readUpload(fh *multipart.FileHeader, rule UploadRule) (*UploadedFile, error) {
	if rule.MaxSize > 0 && fh.Size > rule.MaxSize {
		return nil, ErrFileTooLarge
	}

	if !rule.declaredTypeAllowed(fh.Header.Get("Content-Type")) {
		return nil, rule.typeError()
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
	}

	mt := mimetype.Detect(data)
	if !rule.detectedTypeAllowed(mt) {
		return nil, rule.typeError()
	}

	return &UploadedFile{
		Filename: fh.Filename,
		MimeType: mt.String(),
		Data:     data,
	}, nil
}
