package analysis

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/talksense/errors"
	"github.com/johnquangdev/talksense/internal/domain/entities"
	pkgai "github.com/johnquangdev/talksense/pkg/ai"
)

// Transcriber is the speech-to-text engine boundary
type Transcriber interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
	Transcribe(ctx context.Context, audioURL string) (*pkgai.TranscriptResult, error)
}

// AudioStore persists uploaded audio and returns a fetchable URL
type AudioStore interface {
	UploadAudio(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// SessionRepository caches completed sessions by ID
type SessionRepository interface {
	Save(ctx context.Context, session *entities.AnalysisSession) error
	Get(ctx context.Context, id string) (*entities.AnalysisSession, error)
}

// SessionLogger records per-session aggregates for offline analysis
type SessionLogger interface {
	Log(session *entities.AnalysisSession)
}

// Service defines the analysis orchestration methods
type Service interface {
	AnalyzeAudio(ctx context.Context, audio io.Reader, size int64, filename, contentType, mode, version string) (*entities.AnalysisSession, error)
	AnalyzeSegments(ctx context.Context, raw []entities.RawSegment, mode, version string) (*entities.AnalysisSession, error)
	GetSession(ctx context.Context, id string) (*entities.AnalysisSession, error)
}

type analysisService struct {
	analyzer        *Analyzer
	enricher        *Enricher
	transcriber     Transcriber
	audioStore      AudioStore
	sessions        SessionRepository
	sessionLog      SessionLogger
	logger          *zap.Logger
	uploadSemaphore chan struct{} // Worker pool: limit concurrent transcriptions
}

// NewService constructs the analysis service
func NewService(
	analyzer *Analyzer,
	enricher *Enricher,
	transcriber Transcriber,
	audioStore AudioStore,
	sessions SessionRepository,
	sessionLog SessionLogger,
	workerCount int,
	logger *zap.Logger,
) Service {
	if workerCount < 1 {
		workerCount = 1
	}
	return &analysisService{
		analyzer:        analyzer,
		enricher:        enricher,
		transcriber:     transcriber,
		audioStore:      audioStore,
		sessions:        sessions,
		sessionLog:      sessionLog,
		logger:          logger,
		uploadSemaphore: make(chan struct{}, workerCount),
	}
}

// AnalyzeAudio uploads, transcribes and analyzes one audio recording
func (s *analysisService) AnalyzeAudio(ctx context.Context, audio io.Reader, size int64, filename, contentType, mode, version string) (*entities.AnalysisSession, error) {
	mode, err := normalizeMode(mode)
	if err != nil {
		return nil, err
	}
	if s.transcriber == nil {
		return nil, apperrors.ErrTranscriptionFailed(fmt.Errorf("transcription engine not configured"))
	}

	// Acquire transcription slot, blocks when all workers are busy
	s.uploadSemaphore <- struct{}{}
	defer func() { <-s.uploadSemaphore }()

	if s.logger != nil {
		s.logger.Info("🔒 Acquired transcription slot",
			zap.String("filename", filename),
			zap.String("mode", mode),
		)
	}

	audioURL, err := s.storeAudio(ctx, audio, size, filename, contentType)
	if err != nil {
		return nil, apperrors.ErrUploadFailed(err)
	}

	result, err := s.transcriber.Transcribe(ctx, audioURL)
	if err != nil {
		return nil, apperrors.ErrTranscriptionFailed(err)
	}

	raw := make([]entities.RawSegment, 0, len(result.Segments))
	for _, seg := range result.Segments {
		raw = append(raw, entities.RawSegment{Start: seg.Start, End: seg.End, Text: seg.Text})
	}

	return s.analyzeRaw(ctx, raw, mode, version, audioURL)
}

// AnalyzeSegments analyzes pre-transcribed segments directly
func (s *analysisService) AnalyzeSegments(ctx context.Context, raw []entities.RawSegment, mode, version string) (*entities.AnalysisSession, error) {
	mode, err := normalizeMode(mode)
	if err != nil {
		return nil, err
	}
	return s.analyzeRaw(ctx, raw, mode, version, "")
}

// GetSession loads a cached session by ID
func (s *analysisService) GetSession(ctx context.Context, id string) (*entities.AnalysisSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, apperrors.ErrCacheFailed("get session", err)
	}
	if session == nil {
		return nil, apperrors.ErrSessionNotFound(id)
	}
	return session, nil
}

// storeAudio prefers object storage so the recording stays retrievable;
// without storage configured, audio goes straight to the transcription
// engine's own storage.
func (s *analysisService) storeAudio(ctx context.Context, audio io.Reader, size int64, filename, contentType string) (string, error) {
	if s.audioStore == nil {
		return s.transcriber.Upload(ctx, audio)
	}

	objectName := fmt.Sprintf("audio/%s-%s", uuid.New().String(), filename)
	url, err := s.audioStore.UploadAudio(ctx, objectName, audio, size, contentType)
	if err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("✅ Audio stored",
			zap.String("object_name", objectName),
		)
	}
	return url, nil
}

func (s *analysisService) analyzeRaw(ctx context.Context, raw []entities.RawSegment, mode, version, audioURL string) (*entities.AnalysisSession, error) {
	segments := s.enricher.Enrich(ctx, raw)

	session := entities.NewAnalysisSession(mode)
	session.AudioURL = audioURL
	session.Segments = segments

	switch mode {
	case ModeSales:
		session.Sales = s.analyzer.AnalyzeSales(segments, version)
	default:
		session.Meeting = s.analyzer.AnalyzeMeeting(segments, version)
	}

	if s.sessions != nil {
		// Cache failures lose re-fetchability, not the analysis itself.
		if err := s.sessions.Save(ctx, session); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to cache session",
				zap.String("session_id", session.ID.String()),
				zap.Error(err),
			)
		}
	}
	if s.sessionLog != nil {
		s.sessionLog.Log(session)
	}

	if s.logger != nil {
		s.logger.Info("✅ Analysis completed",
			zap.String("session_id", session.ID.String()),
			zap.String("mode", mode),
			zap.Int("segment_count", len(segments)),
		)
	}
	return session, nil
}

// normalizeMode defaults an empty mode to meeting and rejects unknown modes
func normalizeMode(mode string) (string, error) {
	switch mode {
	case "":
		return ModeMeeting, nil
	case ModeMeeting, ModeSales:
		return mode, nil
	default:
		return "", apperrors.ErrInvalidMode(mode)
	}
}

// sentimentBridge adapts the HTTP sentiment client to the enricher boundary
type sentimentBridge struct {
	client *pkgai.SentimentClient
}

// NewSentimentBridge wraps a sentiment client as a SentimentClassifier.
// A nil client yields a nil classifier, which the enricher reads as
// neutral-only mode.
func NewSentimentBridge(client *pkgai.SentimentClient) SentimentClassifier {
	if client == nil {
		return nil
	}
	return sentimentBridge{client: client}
}

func (b sentimentBridge) ClassifyBatch(ctx context.Context, texts []string) ([]ClassifiedText, error) {
	results, err := b.client.ClassifyBatch(ctx, texts)
	if err != nil {
		return nil, err
	}
	out := make([]ClassifiedText, 0, len(results))
	for _, r := range results {
		out = append(out, ClassifiedText{Label: r.Label, Score: r.Score})
	}
	return out, nil
}
