package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/schoolbuddy-labs/schoolbuddy-core/internal/core/ports/driven"
)

// Ensure OpenAILLM implements LLMService
var _ driven.LLMService = (*OpenAILLM)(nil)

// Default configuration values
const (
	DefaultLLMModel   = "gpt-4o-mini"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the OpenAI chat service
type LLMConfig struct {
	// APIKey is the OpenAI API key (required)
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the chat model to use (default: gpt-4o-mini)
	Model string

	// Timeout is the request timeout (default: 120s)
	Timeout time.Duration
}

// OpenAILLM provides text and vision generation using OpenAI's chat
// completions API. Streaming uses the SSE variant of the same
// endpoint.
type OpenAILLM struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewOpenAILLM creates a new OpenAI chat service
func NewOpenAILLM(cfg LLMConfig) (*OpenAILLM, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLLMTimeout
	}

	return &OpenAILLM{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// chatMessage is one chat turn. Content is either a string or, for
// vision requests, a list of content parts.
type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// contentPart is one element of a multimodal message
type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

// responseFormat selects the completion's output format
type responseFormat struct {
	Type string `json:"type"`
}

// chatRequest is the /chat/completions request body
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Stream         bool            `json:"stream,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// chatResponse is the whole-response /chat/completions body
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// streamChunk is one SSE data event of a streamed completion
type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Generate returns a whole-response completion for the prompt
func (s *OpenAILLM) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	req := s.newRequest(opts)
	req.Messages = []chatMessage{{Role: "user", Content: prompt}}
	return s.complete(ctx, req)
}

// GenerateVision returns a completion for a prompt plus one image,
// delivered inline as a base64 data URI
func (s *OpenAILLM) GenerateVision(ctx context.Context, prompt string, image driven.ImageInput, opts driven.GenerateOptions) (string, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s",
		image.MimeType, base64.StdEncoding.EncodeToString(image.Data))

	req := s.newRequest(opts)
	req.Messages = []chatMessage{{
		Role: "user",
		Content: []contentPart{
			{Type: "text", Text: prompt},
			{Type: "image_url", ImageURL: &imageURL{URL: dataURI}},
		},
	}}
	return s.complete(ctx, req)
}

// GenerateStream returns a channel of text fragments as the model
// produces them
func (s *OpenAILLM) GenerateStream(ctx context.Context, prompt string, opts driven.GenerateOptions) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error, 1)

	req := s.newRequest(opts)
	req.Messages = []chatMessage{{Role: "user", Content: prompt}}
	req.Stream = true

	go func() {
		defer close(out)
		defer close(errCh)

		resp, err := s.post(ctx, req)
		if err != nil {
			errCh <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			errCh <- fmt.Errorf("openai: status %d: %s", resp.StatusCode, body)
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			payload := strings.TrimPrefix(line, "data: ")
			if payload == "[DONE]" {
				return
			}

			var chunk streamChunk
			if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
				continue
			}
			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				continue
			}
			select {
			case out <- chunk.Choices[0].Delta.Content:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- fmt.Errorf("openai: reading stream: %w", err)
		}
	}()
	return out, errCh
}

// Model returns the model name being used
func (s *OpenAILLM) Model() string {
	return s.model
}

// Ping verifies the service is available
func (s *OpenAILLM) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/models", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openai: ping returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources held by the service
func (s *OpenAILLM) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func (s *OpenAILLM) newRequest(opts driven.GenerateOptions) chatRequest {
	req := chatRequest{
		Model:     s.model,
		MaxTokens: opts.MaxTokens,
	}
	if opts.JSONMode {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	return req
}

// complete runs one whole-response completion
func (s *OpenAILLM) complete(ctx context.Context, req chatRequest) (string, error) {
	resp, err := s.post(ctx, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: reading response: %w", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("openai: parsing response: %w", err)
	}
	if chat.Error != nil {
		return "", fmt.Errorf("openai: API error: %s (type: %s)", chat.Error.Message, chat.Error.Type)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: status %d", resp.StatusCode)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices in response")
	}
	return chat.Choices[0].Message.Content, nil
}

func (s *OpenAILLM) post(ctx context.Context, req chatRequest) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: request failed: %w", err)
	}
	return resp, nil
}
