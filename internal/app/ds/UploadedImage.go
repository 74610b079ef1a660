package ds

import "strings"

const imageMediaPrefix = "image/"

// UploadedImage загруженный пользователем файл. Содержимое не анализируется.
type UploadedImage struct {
	FileName  string
	MediaType string
	Data      []byte
}

// IsImageMediaType проверяет только объявленный тип, как это делает браузер
func IsImageMediaType(mediaType string) bool {
	return strings.HasPrefix(mediaType, imageMediaPrefix)
}
