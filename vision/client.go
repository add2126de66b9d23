package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

// transcribePrompt is the fixed instruction sent alongside every image.
const transcribePrompt = "Transcribe the text in this image. Respect formatting and new lines. If it is a table, format it as a CSV. Do not include any other text or formatting like backticks or code blocks. Do not respond with anything else."

const (
	defaultBaseURL   = "https://api.openai.com/v1"
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 500
	defaultTimeout   = 60 * time.Second
)

// Options configures a Client.
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client calls an OpenAI-compatible multimodal chat completions API.
// Safe for concurrent use; every transcription is an independent request.
type Client struct {
	http      *resty.Client
	model     string
	maxTokens int
}

// NewClient constructs a transcription client. An empty API key is allowed
// here; requests will fail upstream with an authentication error.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetAuthToken(opts.APIKey)
	cli.JSONMarshal = sonic.Marshal
	cli.JSONUnmarshal = sonic.Unmarshal

	return &Client{
		http:      cli,
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
	}
}

// Model returns the model identifier requests are sent with.
func (c *Client) Model() string {
	return c.model
}

// TranscribeImage sends one image to the completion API and returns the
// transcribed text. The image travels inline as a base64 data URL tagged
// with its declared media type.
func (c *Client) TranscribeImage(ctx context.Context, mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	payload := chatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []chatContentPart{
					{Type: "text", Text: transcribePrompt},
					{Type: "image_url", ImageURL: &chatImageURL{URL: dataURL}},
				},
			},
		},
	}

	var (
		completion chatCompletionResponse
		apiErr     apiErrorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&completion).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if resp.IsError() {
		if apiErr.Error.Message != "" {
			return "", fmt.Errorf("chat completion API error (%d): %s", resp.StatusCode(), apiErr.Error.Message)
		}
		return "", fmt.Errorf("chat completion API returned status %d", resp.StatusCode())
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion response has no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
