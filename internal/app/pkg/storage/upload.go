package storage

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime/multipart"
	"path"
	"regexp"
	"strings"

	"skinlab/internal/app/ds"
)

var nonSafe = regexp.MustCompile(`[^a-z0-9\-_.]+`)

// sanitizeFileName оставляет в имени файла только [a-z0-9-_.], остальное заменяет на "-".
// Кириллица и прочие не-ASCII символы не транслитерируются, а выпадают.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = nonSafe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-_.")
	if name == "" {
		name = "file"
	}
	return name
}

// ReadUpload читает файл из multipart целиком в память. Тип берется из заголовка части,
// как объявил его браузер; содержимое не проверяется.
func ReadUpload(fileHeader *multipart.FileHeader) (ds.UploadedImage, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return ds.UploadedImage{}, err
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, f); err != nil {
		return ds.UploadedImage{}, err
	}

	return ds.UploadedImage{
		FileName:  sanitizeFileName(fileHeader.Filename),
		MediaType: fileHeader.Header.Get("Content-Type"),
		Data:      buf.Bytes(),
	}, nil
}

// DataURL превью для <img src>, без сохранения файла
func DataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
