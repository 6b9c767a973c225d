package util

func GetAppName() string {
	return "PdfImage"
}
