package analysis

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"skinlab/internal/app/ds"
	"skinlab/internal/app/pkg/storage"
)

// SubmitFile принимает файл из выбора или перетаскивания. Не картинка - ошибка, состояние не меняется.
func (s *Session) SubmitFile(file ds.UploadedImage) error {
	if !ds.IsImageMediaType(file.MediaType) {
		return fmt.Errorf("%w: %q", ErrInvalidMediaType, file.MediaType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	img := file
	img.Data = append([]byte(nil), file.Data...)
	s.image = &img
	s.preview = storage.DataURL(img.MediaType, img.Data)

	s.log.WithFields(log.Fields{
		"file":       img.FileName,
		"media_type": img.MediaType,
		"size":       len(img.Data),
	}).Info("image uploaded")
	return nil
}

// RemoveImage убирает картинку. Событие не должно дойти до зоны загрузки,
// иначе откроется выбор файла.
func (s *Session) RemoveImage(ev *ClickEvent) {
	if ev != nil {
		ev.StopPropagation()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearImage()
}

func (s *Session) clearImage() {
	s.image = nil
	s.preview = ""
	s.dropReady = false
}

// Browse клик по зоне загрузки. true - надо открыть выбор файла.
func (s *Session) Browse(ev *ClickEvent) bool {
	return ev == nil || !ev.PropagationStopped()
}

// BrowseSelected файлы из диалога выбора; берется первый
func (s *Session) BrowseSelected(files []ds.UploadedImage) error {
	if len(files) == 0 {
		return nil
	}
	return s.SubmitFile(files[0])
}

func (s *Session) DragEnter(ev *DragEvent) {
	s.DragOver(ev)
}

func (s *Session) DragOver(ev *DragEvent) {
	if ev != nil {
		ev.PreventDefault()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropReady = true
}

func (s *Session) DragLeave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropReady = false
}

// Drop снимает подсветку и передает первый файл в SubmitFile
func (s *Session) Drop(ev *DragEvent) error {
	s.DragLeave()
	if ev == nil {
		return nil
	}
	ev.PreventDefault()

	if len(ev.Files) == 0 {
		return nil
	}
	return s.SubmitFile(ev.Files[0])
}
