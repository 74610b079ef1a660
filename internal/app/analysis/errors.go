package analysis

import "errors"

var (
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrNoImage          = errors.New("no image uploaded")
	ErrNoSymptom        = errors.New("no symptom selected")
)

type NoticeKind string

const (
	NoticeInvalidMediaType   NoticeKind = "invalid_media_type"
	NoticePreconditionNotMet NoticeKind = "precondition_not_met"
)

// Тексты уведомлений совпадают с текстами страницы, менять нельзя
const (
	TextInvalidMediaType = "Please upload a valid image file."
	TextNoImage          = "Please upload an image first."
	TextNoSymptom        = "Please select a visible symptom."
)

// Notice всплывающее сообщение для пользователя
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}

// NoticeFor переводит ошибку в уведомление. false, если ошибка не пользовательская.
func NoticeFor(err error) (Notice, bool) {
	switch {
	case errors.Is(err, ErrInvalidMediaType):
		return Notice{Kind: NoticeInvalidMediaType, Text: TextInvalidMediaType}, true
	case errors.Is(err, ErrNoImage):
		return Notice{Kind: NoticePreconditionNotMet, Text: TextNoImage}, true
	case errors.Is(err, ErrNoSymptom):
		return Notice{Kind: NoticePreconditionNotMet, Text: TextNoSymptom}, true
	}
	return Notice{}, false
}
