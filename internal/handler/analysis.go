package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/classifier"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/middleware"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/service"
)

const uploadField = "file"

var (
	errNoFile       = errors.New("no file provided")
	errFileTooLarge = errors.New("file too large")
)

type AnalysisHandler interface {
	AnalyzeAccident(c *gin.Context)
	InspectMedia(c *gin.Context)
}

type analysisHandler struct {
	analysis  service.AnalysisService
	maxUpload int64
	logger    *zap.Logger
}

func NewAnalysisHandler(analysis service.AnalysisService, maxUpload int64, logger *zap.Logger) AnalysisHandler {
	return &analysisHandler{analysis: analysis, maxUpload: maxUpload, logger: logger}
}

// AnalyzeAccident handles POST /api/analyze-accident
func (h *analysisHandler) AnalyzeAccident(c *gin.Context) {
	sub, ok := h.readUpload(c)
	if !ok {
		return
	}

	verdict, err := h.analyze(c, sub)
	if err != nil {
		h.logger.Error("Analysis error", zap.String("file_name", sub.FileName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze file. Please try again."})
		return
	}

	c.JSON(http.StatusOK, models.NewAnalysisResponse(verdict))
}

// analyze turns a panic in the analysis path into an error.
func (h *analysisHandler) analyze(c *gin.Context, sub classifier.Submission) (v models.Verdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during analysis: %v", r)
		}
	}()
	return h.analysis.Analyze(c.Request.Context(), middleware.SessionFrom(c).ID(), sub)
}

// InspectMedia handles POST /api/inspect-media
func (h *analysisHandler) InspectMedia(c *gin.Context) {
	sub, ok := h.readUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.analysis.Inspect(c.Request.Context(), sub))
}

// readUpload writes the error response itself and reports whether the
// caller should continue.
func (h *analysisHandler) readUpload(c *gin.Context) (classifier.Submission, bool) {
	sub, err := h.submission(c)
	switch {
	case err == nil:
		return sub, true
	case errors.Is(err, errNoFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
	case errors.Is(err, errFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
	default:
		h.logger.Error("Failed to read upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze file. Please try again."})
	}
	return classifier.Submission{}, false
}

func (h *analysisHandler) submission(c *gin.Context) (classifier.Submission, error) {
	if c.Request.ContentLength > h.maxUpload {
		return classifier.Submission{}, errFileTooLarge
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return classifier.Submission{}, errFileTooLarge
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return classifier.Submission{}, errNoFile
		}
		return classifier.Submission{}, fmt.Errorf("failed to parse form: %w", err)
	}

	f, err := header.Open()
	if err != nil {
		return classifier.Submission{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return classifier.Submission{}, fmt.Errorf("failed to read upload: %w", err)
	}

	return classifier.Submission{
		MIMEType: header.Header.Get("Content-Type"),
		FileName: header.Filename,
		Data:     data,
	}, nil
}
