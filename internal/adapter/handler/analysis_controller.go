package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/talksense/errors"
	dtoanalysis "github.com/johnquangdev/talksense/internal/adapter/dto/analysis"
	"github.com/johnquangdev/talksense/internal/domain/entities"
	"github.com/johnquangdev/talksense/internal/usecase/analysis"
	"github.com/johnquangdev/talksense/internal/usecase/patterns"
)

// Analysis handles transcript analysis endpoints
type Analysis struct {
	service analysis.Service
	miner   *patterns.Miner
	logger  *zap.Logger
}

// NewAnalysis creates a new analysis handler
func NewAnalysis(service analysis.Service, miner *patterns.Miner, logger *zap.Logger) *Analysis {
	return &Analysis{
		service: service,
		miner:   miner,
		logger:  logger,
	}
}

// AnalyzeAudio handles POST /v1/analyze
// Accepts multipart form: file (audio), mode, version
func (h *Analysis) AnalyzeAudio(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload().WithDetail("field", "file"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrUploadFailed(err))
	}
	defer src.Close()

	if h.logger != nil {
		h.logger.Info("🎙️ Audio analysis requested",
			zap.String("request_id", getRequestID(c)),
			zap.String("filename", fileHeader.Filename),
			zap.Int64("size_bytes", fileHeader.Size),
		)
	}

	session, err := h.service.AnalyzeAudio(
		c.Request().Context(),
		src,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		c.FormValue("mode"),
		c.FormValue("version"),
	)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dtoanalysis.FromSession(session))
}

// AnalyzeSegments handles POST /v1/analyze/segments
func (h *Analysis) AnalyzeSegments(c echo.Context) error {
	var req dtoanalysis.AnalyzeSegmentsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidMode(req.Mode))
	}

	raw := make([]entities.RawSegment, 0, len(req.Segments))
	for _, seg := range req.Segments {
		raw = append(raw, entities.RawSegment{Start: seg.Start, End: seg.End, Text: seg.Text})
	}

	session, err := h.service.AnalyzeSegments(c.Request().Context(), raw, req.Mode, req.Version)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dtoanalysis.FromSession(session))
}

// GetSession handles GET /v1/sessions/:id
func (h *Analysis) GetSession(c echo.Context) error {
	session, err := h.service.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dtoanalysis.FromSession(session))
}

// GetPatterns handles GET /v1/sessions/:id/patterns
// Computes the offline pattern report from the cached enriched segments.
func (h *Analysis) GetPatterns(c echo.Context) error {
	session, err := h.service.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	// No embedding service is wired in; similarity reports 0.
	report := h.miner.ComposeReport(session, nil)
	return HandleSuccess(h.logger, c, report)
}
