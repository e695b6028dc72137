package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/middleware"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/web"
)

// PageHandler renders the HTML pages with the navigation header.
type PageHandler struct {
	logger *zap.Logger
}

func NewPageHandler(logger *zap.Logger) *PageHandler {
	return &PageHandler{logger: logger}
}

// Page returns a handler that renders the named page.
func (h *PageHandler) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, name, nil)
	}
}

func (h *PageHandler) render(c *gin.Context, name string, data any) {
	ctx := c.Request.Context()
	sess := middleware.SessionFrom(c)

	nav, err := web.NewNav(ctx, sess)
	if err != nil {
		// A corrupt user record renders as signed out.
		h.logger.Warn("Failed to read session user", zap.String("session_id", sess.ID()), zap.Error(err))
	}
	dark, err := sess.DarkMode(ctx)
	if err != nil {
		h.logger.Warn("Failed to read dark mode", zap.Error(err))
	}
	lang, err := sess.Language(ctx)
	if err != nil {
		h.logger.Warn("Failed to read language", zap.Error(err))
	}

	c.HTML(http.StatusOK, name, web.View{
		Nav:      nav,
		DarkMode: dark,
		Language: lang,
		Data:     data,
	})
}

// Health handles GET /health
func (h *PageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
