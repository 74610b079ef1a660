package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"skinlab/internal/app/analysis"
)

func (h *Handler) GetIndexPage(ctx *gin.Context) {
	sess, ok := h.currentSession(ctx)
	if !ok {
		return
	}

	view := sess.View()
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"view":     view,
		"symptoms": h.Repository.ListSymptoms(),
		"delayMs":  analysis.AnalysisDelay.Milliseconds(),
		// превью собрано нами из base64, иначе html/template заменит data: на #ZgotmplZ
		"previewURL": template.URL(view.Upload.PreviewURL),
	})
}
