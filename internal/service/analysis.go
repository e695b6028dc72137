package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/classifier"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/inspect"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

type AnalysisService interface {
	Analyze(ctx context.Context, sessionID string, sub classifier.Submission) (models.Verdict, error)
	Inspect(ctx context.Context, sub classifier.Submission) inspect.Report
}

type analysisService struct {
	classifier *classifier.Classifier
	logger     *zap.Logger
}

func NewAnalysisService(c *classifier.Classifier, logger *zap.Logger) AnalysisService {
	return &analysisService{classifier: c, logger: logger}
}

func (s *analysisService) Analyze(ctx context.Context, sessionID string, sub classifier.Submission) (models.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return models.Verdict{}, err
	}

	report := inspect.Inspect(sub.FileName, sub.MIMEType, sub.Data)
	verdict := s.classifier.Classify(sub)

	s.logger.Info("Media analyzed",
		zap.String("session_id", sessionID),
		zap.String("file_name", sub.FileName),
		zap.String("mime_type", sub.MIMEType),
		zap.String("sniffed_mime", report.SniffedMIME),
		zap.String("md5", report.MD5),
		zap.Int("size", report.Size),
		zap.String("category", string(verdict.Category)),
		zap.Int("confidence", verdict.Confidence),
		zap.String("accident_type", verdict.AccidentType),
		zap.Bool("passed", verdict.Passed()),
	)

	// The gate only looks at confidence, so synthetic media clears it.
	if verdict.Passed() && verdict.Category != models.CategoryReal {
		s.logger.Warn("Non-real verdict passes the confidence gate",
			zap.String("file_name", sub.FileName),
			zap.String("category", string(verdict.Category)),
			zap.Int("confidence", verdict.Confidence))
	}

	return verdict, nil
}

func (s *analysisService) Inspect(_ context.Context, sub classifier.Submission) inspect.Report {
	return inspect.Inspect(sub.FileName, sub.MIMEType, sub.Data)
}
