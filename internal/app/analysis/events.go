package analysis

import "skinlab/internal/app/ds"

// DragEvent событие перетаскивания над зоной загрузки
type DragEvent struct {
	Files []ds.UploadedImage

	defaultPrevented bool
}

// PreventDefault запрещает браузеру открыть файл вместо страницы
func (e *DragEvent) PreventDefault() {
	e.defaultPrevented = true
}

func (e *DragEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// ClickEvent клик внутри зоны загрузки. Всплывает до самой зоны, если не остановлен.
type ClickEvent struct {
	propagationStopped bool
}

func (e *ClickEvent) StopPropagation() {
	e.propagationStopped = true
}

func (e *ClickEvent) PropagationStopped() bool {
	return e.propagationStopped
}
