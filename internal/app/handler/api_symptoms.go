package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skinlab/internal/app/ds"
)

// GET /api/symptoms?query=
func (h *Handler) ApiListSymptoms(ctx *gin.Context) {
	query := ctx.Query("query")
	list := h.Repository.SearchSymptoms(query)
	if list == nil {
		list = []ds.Symptom{}
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{"query": query})
}

// GET /api/advisories/:code
func (h *Handler) ApiGetAdvisory(ctx *gin.Context) {
	code := ds.SymptomCode(ctx.Param("code"))
	a, err := h.Repository.GetAdvisory(code)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, err)
		return
	}
	jsonResponse(ctx, gin.H{"symptom": code, "label": code.Label(), "advisory": a}, 1, gin.H{"code": code})
}
