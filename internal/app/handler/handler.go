package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"skinlab/internal/app/analysis"
	"skinlab/internal/app/config"
	"skinlab/internal/app/middleware"
	"skinlab/internal/app/pkg/session"
	"skinlab/internal/app/repository"
)

type Handler struct {
	Repository *repository.Repository
	Config     *config.Config
	Sessions   *session.Store
}

func NewHandler(r *repository.Repository, cfg *config.Config, sessions *session.Store) *Handler {
	return &Handler{
		Repository: r,
		Config:     cfg,
		Sessions:   sessions,
	}
}

// RegisterHandler Функция, в которой мы отдельно регистрируем маршруты
func (h *Handler) RegisterHandler(router *gin.Engine) {
	router.GET("/health", h.Health)

	api := router.Group("/api")
	api.GET("/symptoms", h.ApiListSymptoms)
	api.GET("/advisories/:code", h.ApiGetAdvisory)

	// все, что ниже, работает с сессией страницы из cookie
	withSession := router.Group("/")
	withSession.Use(middleware.SessionMiddleware(h.Sessions))
	withSession.GET("/", h.GetIndexPage)

	s := withSession.Group("/api/session")
	s.GET("", h.ApiGetSession)
	s.POST("/image", h.ApiUploadImage)
	s.DELETE("/image", h.ApiRemoveImage)
	s.POST("/drag", h.ApiDrag)
	s.PUT("/symptom", h.ApiSelectSymptom)
	s.POST("/analysis", h.ApiStartAnalysis)
	s.POST("/reset", h.ApiReset)
}

// RegisterStatic То же самое, что и с маршрутами, регистрируем статику
func (h *Handler) RegisterStatic(router *gin.Engine) {
	router.LoadHTMLGlob(h.Config.TemplatesGlob)
	router.Static("/static", h.Config.StaticDir)
}

func (h *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// errorHandler для более удобного вывода ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// noticeHandler пользовательские ошибки уходят как уведомление, остальные через errorHandler
func (h *Handler) noticeHandler(ctx *gin.Context, err error) {
	notice, ok := analysis.NoticeFor(err)
	if !ok {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	status := http.StatusConflict
	if errors.Is(err, analysis.ErrInvalidMediaType) {
		status = http.StatusBadRequest
	}
	logrus.WithField("notice", notice.Kind).Debug(err.Error())
	ctx.JSON(status, gin.H{
		"status":      "error",
		"description": notice.Text,
		"notice":      notice,
	})
}

func jsonResponse(ctx *gin.Context, data interface{}, total int64, meta gin.H) {
	jsonStatusResponse(ctx, http.StatusOK, data, total, meta)
}

func jsonStatusResponse(ctx *gin.Context, status int, data interface{}, total int64, meta gin.H) {
	ctx.JSON(status, gin.H{
		"status": "ok",
		"data":   data,
		"total":  total,
		"meta":   meta,
	})
}
