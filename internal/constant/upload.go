package constant

const (
	FIELD_IMAGE  = "image"
	FIELD_IMAGES = "images"
	FIELD_PDF    = "pdf"
)

// Keys of accepted uploads stored on the gin context by the upload middleware
const (
	CTX_UPLOADS    = "uploads"
	CTX_REQUEST_ID = "requestId"
)

const (
	FILENAME_TEMPLATE_DOCUMENT = "document.pdf"
	FILENAME_IMAGES_DOCUMENT   = "images.pdf"
	FILENAME_APPENDED_DOCUMENT = "document-with-images.pdf"
)

const HEADER_REQUEST_ID = "X-Request-ID"
