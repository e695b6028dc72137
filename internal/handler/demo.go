package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/middleware"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/service"
)

type DemoHandler interface {
	Dispatch(c *gin.Context)
	Emergency(c *gin.Context)
}

type demoHandler struct {
	demo   service.DemoService
	logger *zap.Logger
}

func NewDemoHandler(demo service.DemoService, logger *zap.Logger) DemoHandler {
	return &demoHandler{demo: demo, logger: logger}
}

type DispatchRequest struct {
	Passed       bool   `json:"passed"`
	AccidentType string `json:"accidentType"`
}

type EmergencyRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Dispatch handles POST /api/dispatch
func (h *demoHandler) Dispatch(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.demo.SendDispatch(c.Request.Context(), req.Passed, req.AccidentType, reporter(c))
	if err != nil {
		if errors.Is(err, service.ErrNotPassed) {
			c.JSON(http.StatusConflict, gin.H{"error": "Dispatch is only available for passed analyses"})
			return
		}
		h.logger.Error("Failed to send dispatch", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send dispatch"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Emergency handles POST /api/emergency
func (h *demoHandler) Emergency(c *gin.Context) {
	var req EmergencyRequest
	// An empty body means the browser had no location to share.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var loc *models.Location
	if req.Latitude != nil && req.Longitude != nil {
		loc = &models.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	msg, err := h.demo.SendEmergency(c.Request.Context(), loc, reporter(c))
	if err != nil {
		h.logger.Error("Failed to send emergency", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send emergency alert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        msg,
		"overlaySeconds": int(service.EmergencyOverlay.Seconds()),
	})
}

// reporter is the signed-in email, or "" for anonymous visitors.
func reporter(c *gin.Context) string {
	user, err := middleware.SessionFrom(c).User(c.Request.Context())
	if err != nil || user == nil {
		return ""
	}
	return user.Email
}
