package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skinlab/internal/app/analysis"
	"skinlab/internal/app/ds"
	"skinlab/internal/app/middleware"
	"skinlab/internal/app/pkg/storage"
)

var (
	errNoSession      = errors.New("no page session")
	errUploadTooLarge = errors.New("uploaded file is too large")
)

// multipartSlack запас на заголовки multipart поверх лимита самого файла
const multipartSlack = 64 << 10

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

func (h *Handler) currentSession(ctx *gin.Context) (*analysis.Session, bool) {
	sess, ok := middleware.CurrentSession(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusInternalServerError, errNoSession)
	}
	return sess, ok
}

func sessionResponse(ctx *gin.Context, status int, sess *analysis.Session) {
	jsonStatusResponse(ctx, status, sess.View(), 1, gin.H{"session_id": sess.ID()})
}

// GET /api/session
func (h *Handler) ApiGetSession(ctx *gin.Context) {
	sess, ok := h.currentSession(ctx)
	if !ok {
		return
	}
	sessionResponse(ctx, http.StatusOK, sess)
}

// POST /api/session/image — multipart, поле file (или image). source=drop, если файл перетащили.
func (h *Handler) ApiUploadImage(ctx *gin.Context) {
	sess, ok := h.currentSession(ctx)
	if !ok {
		return
	}

	limit := h.Config.MaxUploadMB << 20
	if limit > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit+multipartSlack)
	}

	// Поддержка двух названий поля: file (основное) и image (fallback)
	file, err := ctx.FormFile("file")
	if err != nil && tooLarge(err) {
		h.errorHandler(ctx, http.StatusRequestEntityTooLarge, errUploadTooLarge)
		return
	}
	if err != nil {
		file, err = ctx.FormFile("image")
		if err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
	}
	if limit > 0 && file.Size > limit {
		h.errorHandler(ctx, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %d bytes", errUploadTooLarge, file.Size))
		return
	}

	img, err := storage.ReadUpload(file)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	if ctx.PostForm("source") == "drop" {
		err = sess.Drop(&analysis.DragEvent{Files: []ds.UploadedImage{img}})
	} else {
		err = sess.BrowseSelected([]ds.UploadedImage{img})
	}
	if err != nil {
		h.noticeHandler(ctx, err)
		return
	}
	sessionResponse(ctx, http.StatusOK, sess)
}

// DELETE /api/session/image
func (h *Handler) ApiRemoveImage(ctx *gin.Context) {
	sess, ok := h.currentSession(ctx)
	if !ok {
		return
	}
	sess.RemoveImage(&analysis.ClickEvent{})
	sessionResponse(ctx, http.StatusOK, sess)
}

// POST /api/session/drag — подсветка зоны загрузки
func (h *Handler) ApiDrag(ctx *gin.Context) {
	type bodyT struct {
		Event string `json:"event" binding:"required,oneof=enter over leave"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	sess, ok := h.currentSession(ctx)
	if !ok {
		return
	}

	switch body.Event {
	case "enter":
		sess.DragEnter(&analysis.DragEvent{})
	case "over":
		sess.DragOver(&analysis.DragEvent{})
	case "leave":
		sess.DragLeave()
	}
	sessionResponse(ctx, http.StatusOK, sess)
}

// PUT /api/session/symptom — пустой symptom снимает выбор
func (h *Handler) ApiSelectSymptom(ctx *gin.Context) {
	type bodyT struct {
		Symptom string `json:"symptom"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	code, err := ds.ParseSymptomCode(body.Symptom)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	sess, ok := h.currentSession(ctx)
	if !ok {
		return
	}
	if err := sess.SelectSymptom(code); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	sessionResponse(ctx, http.StatusOK, sess)
}

// POST /api/session/analysis — результат придет через AnalysisDelay, опрашивать GET /api/session.
// 202, если анализ запущен; 200 с прежним видом, если фаза не Idle.
func (h *Handler) ApiStartAnalysis(ctx *gin.Context) {
	sess, ok := h.currentSession(ctx)
	if !ok {
		return
	}
	started, err := sess.Start()
	if err != nil {
		h.noticeHandler(ctx, err)
		return
	}
	if !started {
		sessionResponse(ctx, http.StatusOK, sess)
		return
	}
	sessionResponse(ctx, http.StatusAccepted, sess)
}

// POST /api/session/reset
func (h *Handler) ApiReset(ctx *gin.Context) {
	sess, ok := h.currentSession(ctx)
	if !ok {
		return
	}
	sess.Reset()
	sessionResponse(ctx, http.StatusOK, sess)
}
