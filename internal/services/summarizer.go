// Package services holds clients for external collaborators. The AI vendor's
// API shape stays inside this package; the rest of the server only sees
// bytes in, summary text out.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/logging"
)

var (
	// ErrGatewayUnavailable is any summarization failure other than a timeout.
	ErrGatewayUnavailable = errors.New("summarization gateway unavailable")

	// ErrGatewayTimeout is a summarization call exceeding its deadline.
	ErrGatewayTimeout = errors.New("summarization gateway timed out")
)

const summaryPrompt = "Provide a concise medical summary of this document. " +
	"List the key findings, diagnoses, medications and recommended follow-ups " +
	"in plain language a patient can understand."

// Summarizer turns raw document bytes into a text summary.
type Summarizer interface {
	Summarize(ctx context.Context, data []byte, mimeType string) (string, error)
}

// OpenAISummarizer calls the OpenAI chat completions API. Images go as an
// image content part, everything else (PDFs) as a file content part.
type OpenAISummarizer struct {
	client  openai.Client
	model   string
	timeout time.Duration
	log     logging.Logger
}

// NewOpenAISummarizer builds the production gateway client. Extra request
// options (e.g. a test base URL) are appended after the API key.
func NewOpenAISummarizer(apiKey, model string, timeout time.Duration, log logging.Logger, opts ...option.RequestOption) *OpenAISummarizer {
	clientOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAISummarizer{
		client:  openai.NewClient(clientOpts...),
		model:   model,
		timeout: timeout,
		log:     log,
	}
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, data []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	var filePart openai.ChatCompletionContentPartUnionParam
	if strings.HasPrefix(mimeType, "image/") {
		filePart = openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: dataURI,
		})
	} else {
		filePart = openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
			FileData: openai.String(dataURI),
			Filename: openai.String("document"),
		})
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				filePart,
				openai.TextContentPart(summaryPrompt),
			}),
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.Error(ctx, "summarization timed out", "timeout", s.timeout.String())
			return "", ErrGatewayTimeout
		}
		s.log.Error(ctx, "summarization failed", "err", err)
		return "", ErrGatewayUnavailable
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		s.log.Error(ctx, "summarization returned no content", "model", s.model)
		return "", ErrGatewayUnavailable
	}
	return resp.Choices[0].Message.Content, nil
}
