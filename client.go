package perceptron

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/perceptron-ai/perceptron-go/internal/chat"
	"github.com/perceptron-ai/perceptron-go/internal/config"
)

// DefaultBaseURL is the public API host used when no override is given.
const DefaultBaseURL = chat.DefaultBaseURL

type client struct {
	chat *chat.Client
}

type settings struct {
	baseURL    string
	apiKey     string
	headers    map[string]string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option allows functional configuration. Options never perform I/O and
// never fail; a missing API key is reported at call time.
type Option func(*settings)

// WithAPIKey sets the API key used as the bearer credential.
func WithAPIKey(key string) Option { return func(s *settings) { s.apiKey = key } }

// WithBaseURL overrides the API host, e.g. to reach a local deployment.
// Only the destination changes; the wire schema is identical.
func WithBaseURL(url string) Option {
	return func(s *settings) { s.baseURL = strings.TrimSuffix(url, "/") }
}

// WithHeader adds a header to every request.
func WithHeader(name, value string) Option {
	return func(s *settings) { s.headers[name] = value }
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(c *http.Client) Option { return func(s *settings) { s.httpClient = c } }

// WithLogger sets a custom slog logger.
func WithLogger(l *slog.Logger) Option { return func(s *settings) { s.logger = l } }

// New builds a client from options.
func New(opts ...Option) Client {
	s := settings{
		baseURL: DefaultBaseURL,
		headers: make(map[string]string),
	}
	for _, o := range opts {
		o(&s)
	}
	return &client{chat: chat.New(chat.Config{
		BaseURL:    s.baseURL,
		APIKey:     s.apiKey,
		Headers:    s.headers,
		HTTPClient: s.httpClient,
		Logger:     s.logger,
	})}
}

// NewFromFile loads configuration via internal/config.Load and returns a
// Client, with any extra options applied on top.
func NewFromFile(opts ...Option) (Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	merged := []Option{WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		merged = append(merged, WithBaseURL(cfg.BaseURL))
	}
	for name, value := range cfg.Headers {
		merged = append(merged, WithHeader(name, value))
	}
	merged = append(merged, opts...)
	return New(merged...), nil
}

// descriptor carries everything needed to build one wire request.
type descriptor struct {
	media         Media
	systemPrompts []string
	userText      *string
	params        GenerationParams
}

func (c *client) Analyze(ctx context.Context, req AnalyzeRequest) (PointingResponse, error) {
	format := req.OutputFormat
	if format == "" {
		format = FormatText
	}
	desc := descriptor{
		media:         req.Media,
		systemPrompts: hintPrompts(format, req.Reasoning),
		userText:      &req.Message,
		params:        req.GenerationParams,
	}
	return c.sendAndExtract(ctx, desc, format)
}

func (c *client) Caption(ctx context.Context, req CaptionRequest) (PointingResponse, error) {
	format := req.OutputFormat
	if format == "" {
		format = FormatBox
	}
	var userText string
	switch req.Style {
	case StyleDetailed:
		userText = "Provide a detailed caption describing key objects, relationships, and context in the upcoming image."
	default:
		userText = "Provide a concise, human-friendly caption for the upcoming image."
	}
	desc := descriptor{
		media:         req.Media,
		systemPrompts: hintPrompts(format, req.Reasoning),
		userText:      &userText,
		params:        req.GenerationParams,
	}
	return c.sendAndExtract(ctx, desc, format)
}

const ocrSystemPrompt = "You are an OCR (Optical Character Recognition) system. " +
	"Accurately detect, extract, and transcribe all readable text from the image."

func (c *client) OCR(ctx context.Context, req OCRRequest) (TextResponse, error) {
	systemPrompts := append(hintPrompts(FormatText, req.Reasoning), ocrSystemPrompt)
	var userText *string
	switch req.Mode {
	case OCRMarkdown:
		text := "Transcribe every readable word in the image using Markdown formatting with headings, lists, tables, and other structural elements as appropriate."
		userText = &text
	case OCRHTML:
		text := "Transcribe every readable word in the image using HTML markup."
		userText = &text
	}
	desc := descriptor{
		media:         req.Media,
		systemPrompts: systemPrompts,
		userText:      userText,
		params:        req.GenerationParams,
	}
	return c.send(ctx, desc)
}

func (c *client) Detect(ctx context.Context, req DetectRequest) (PointingResponse, error) {
	goal := "Your goal is to segment out the objects in the scene"
	if len(req.Classes) > 0 {
		goal = "Your goal is to segment out the following categories: " + strings.Join(req.Classes, ", ")
	}
	desc := descriptor{
		media:         req.Media,
		systemPrompts: append(hintPrompts(FormatBox, req.Reasoning), goal),
		params:        req.GenerationParams,
	}
	return c.sendAndExtract(ctx, desc, FormatBox)
}

func (c *client) send(ctx context.Context, desc descriptor) (TextResponse, error) {
	resp, err := c.chat.Complete(ctx, buildWireRequest(desc))
	if err != nil {
		return TextResponse{}, err
	}
	out := TextResponse{Usage: resp.Usage}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.Reasoning = resp.Choices[0].Message.ReasoningContent
	}
	return out, nil
}

func (c *client) sendAndExtract(ctx context.Context, desc descriptor, format OutputFormat) (PointingResponse, error) {
	resp, err := c.chat.Complete(ctx, buildWireRequest(desc))
	if err != nil {
		return PointingResponse{}, err
	}
	out := PointingResponse{Usage: resp.Usage}
	if len(resp.Choices) > 0 {
		msg := resp.Choices[0].Message
		out.Content = msg.Content
		out.Reasoning = msg.ReasoningContent
		if msg.Content != "" {
			out.Pointing = extractPointing(msg.Content, format)
		}
	}
	return out, nil
}

// hintPrompts returns the <hint> system prompt for the output format and
// reasoning flag, or nothing when neither applies.
func hintPrompts(format OutputFormat, reasoning *bool) []string {
	var components []string
	switch format {
	case FormatPoint:
		components = append(components, "POINT")
	case FormatBox:
		components = append(components, "BOX")
	case FormatPolygon:
		components = append(components, "POLYGON")
	}
	if reasoning != nil && *reasoning {
		components = append(components, "THINK")
	}
	if len(components) == 0 {
		return nil
	}
	return []string{"<hint>" + strings.Join(components, " ") + "</hint>"}
}

func buildWireRequest(desc descriptor) chat.Request {
	messages := make([]chat.Message, 0, len(desc.systemPrompts)+1)
	for _, prompt := range desc.systemPrompts {
		messages = append(messages, chat.SystemMessage(prompt))
	}

	parts := []chat.ContentPart{mediaPart(desc.media)}
	if desc.userText != nil {
		parts = append(parts, chat.TextPart(*desc.userText))
	}
	messages = append(messages, chat.UserMessage(parts))

	p := desc.params
	return chat.Request{
		Model:               p.Model,
		Messages:            messages,
		MaxCompletionTokens: p.MaxCompletionTokens,
		Temperature:         p.Temperature,
		TopP:                p.TopP,
		TopK:                p.TopK,
		FrequencyPenalty:    p.FrequencyPenalty,
		PresencePenalty:     p.PresencePenalty,
	}
}

func mediaPart(m Media) chat.ContentPart {
	if m.MediaType() == MediaTypeVideo {
		return chat.VideoPart(m.URL())
	}
	return chat.ImagePart(m.URL())
}
