package ai

import (
	"context"
	"fmt"
	"io"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/talksense/pkg/config"
)

// Segment is one time-stamped utterance from the transcription engine,
// in seconds.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptResult is the transcription output handed to the enricher
type TranscriptResult struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// AssemblyAIClient wraps the official SDK for synchronous transcription
type AssemblyAIClient struct {
	sdk      *aai.Client
	language string
	logger   *zap.Logger
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config
func NewAssemblyAIClient(cfg *config.AssemblyConfig, logger *zap.Logger) *AssemblyAIClient {
	return &AssemblyAIClient{
		sdk:      aai.NewClient(cfg.APIKey),
		language: cfg.LanguageCode,
		logger:   logger,
	}
}

// Upload streams audio to AssemblyAI storage, with retry, and returns the
// upload URL.
func (c *AssemblyAIClient) Upload(ctx context.Context, r io.Reader) (string, error) {
	var uploadURL string
	uploadFn := func() error {
		url, err := c.sdk.Upload(ctx, r)
		if err != nil {
			return fmt.Errorf("failed to upload to AssemblyAI: %w", err)
		}
		uploadURL = url
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second
	bo.MaxInterval = 10 * time.Second

	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}

	if c.logger != nil {
		c.logger.Info("✅ File uploaded to AssemblyAI",
			zap.String("upload_url", uploadURL),
		)
	}
	return uploadURL, nil
}

// Transcribe submits an audio URL and waits for the finished transcript.
// Utterance timestamps arrive in milliseconds and are converted to seconds.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioURL string) (*TranscriptResult, error) {
	params := &aai.TranscriptOptionalParams{
		LanguageCode:  aai.TranscriptLanguageCode(c.language),
		SpeakerLabels: aai.Bool(true),
	}

	if c.logger != nil {
		c.logger.Info("🎙️ Starting transcription",
			zap.String("language", c.language),
		)
	}

	transcript, err := c.sdk.Transcripts.TranscribeFromURL(ctx, audioURL, params)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai error: %s", msg)
	}

	result := &TranscriptResult{}
	if transcript.Text != nil {
		result.Text = *transcript.Text
	}

	for _, utt := range transcript.Utterances {
		seg := Segment{}
		if utt.Text != nil {
			seg.Text = *utt.Text
		}
		if utt.Start != nil {
			seg.Start = float64(*utt.Start) / 1000.0
		}
		if utt.End != nil {
			seg.End = float64(*utt.End) / 1000.0
		}
		result.Segments = append(result.Segments, seg)
	}

	// No speaker turns means short or single-speaker audio, fall back to one
	// segment covering the whole recording.
	if len(result.Segments) == 0 && result.Text != "" {
		end := 0.0
		if transcript.AudioDuration != nil {
			end = *transcript.AudioDuration
		}
		result.Segments = append(result.Segments, Segment{Start: 0, End: end, Text: result.Text})
	}

	if c.logger != nil {
		c.logger.Info("✅ Transcription completed",
			zap.Int("segment_count", len(result.Segments)),
			zap.Int("text_length", len(result.Text)),
		)
	}
	return result, nil
}
