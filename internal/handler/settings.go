package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/middleware"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/service"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/web"
)

type SettingsHandler interface {
	SettingsPage(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
}

type settingsHandler struct {
	settings service.SettingsService
	pages    *PageHandler
	logger   *zap.Logger
}

func NewSettingsHandler(settings service.SettingsService, pages *PageHandler, logger *zap.Logger) SettingsHandler {
	return &settingsHandler{settings: settings, pages: pages, logger: logger}
}

// SettingsPage handles GET /settings
func (h *settingsHandler) SettingsPage(c *gin.Context) {
	prefs, err := h.settings.Get(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		if errors.Is(err, service.ErrNotSignedIn) {
			c.Redirect(http.StatusFound, "/auth/signin")
			return
		}
		h.logger.Error("Failed to load settings", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load settings")
		return
	}
	h.pages.render(c, web.PageSettings, prefs)
}

// GetSettings handles GET /api/settings
func (h *settingsHandler) GetSettings(c *gin.Context) {
	prefs, err := h.settings.Get(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdateSettings handles PUT /api/settings
func (h *settingsHandler) UpdateSettings(c *gin.Context) {
	var req service.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, msg, err := h.settings.Update(c.Request.Context(), middleware.SessionFrom(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": prefs, "message": msg})
}

func (h *settingsHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotSignedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, service.ErrInvalidDisplayName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be at least 2 characters long"})
	case errors.Is(err, service.ErrUnsupportedLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
	default:
		h.logger.Error("Failed to handle settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
	}
}
