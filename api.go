// Package perceptron is a client SDK for the Perceptron vision model API.
// Build a request with one of the New*Request constructors, then issue it
// through a Client. Each call is a single stateless request/response
// exchange; the client holds only immutable configuration and is safe for
// concurrent use.
package perceptron

import (
	"context"

	"github.com/perceptron-ai/perceptron-go/internal/chat"
)

// Client issues requests to a Perceptron model.
type Client interface {
	// Analyze inspects visual media with a custom prompt.
	Analyze(ctx context.Context, req AnalyzeRequest) (PointingResponse, error)
	// Caption generates a caption for visual media.
	Caption(ctx context.Context, req CaptionRequest) (PointingResponse, error)
	// OCR extracts readable text from media.
	OCR(ctx context.Context, req OCRRequest) (TextResponse, error)
	// Detect locates and segments objects in media.
	Detect(ctx context.Context, req DetectRequest) (PointingResponse, error)
}

// OutputFormat selects the response shape the model is asked for. It
// determines which Pointing field of a PointingResponse can be populated:
// FormatPoint fills Points, FormatBox fills Boxes, FormatPolygon fills
// Polygons, and FormatText never produces pointing data.
type OutputFormat string

const (
	// FormatText requests a plain text response (default).
	FormatText OutputFormat = "text"
	// FormatPoint requests point coordinates as <point> tags.
	FormatPoint OutputFormat = "point"
	// FormatBox requests bounding boxes as <point_box> tags.
	FormatBox OutputFormat = "box"
	// FormatPolygon requests polygon coordinates.
	FormatPolygon OutputFormat = "polygon"
)

// CaptionStyle selects how thorough a caption should be.
type CaptionStyle string

const (
	StyleConcise  CaptionStyle = "concise"
	StyleDetailed CaptionStyle = "detailed"
)

// OCRMode selects the markup of extracted text.
type OCRMode string

const (
	OCRPlain    OCRMode = "plain"
	OCRMarkdown OCRMode = "markdown"
	OCRHTML     OCRMode = "html"
)

// GenerationParams are the inference-time knobs shared by every request
// type. Unset pointer fields are omitted from the wire payload.
type GenerationParams struct {
	// Model is the model identifier to use for the request.
	Model string `json:"model"`
	// Reasoning enables chain-of-thought reasoning.
	Reasoning *bool `json:"reasoning,omitempty"`
	// Temperature is the sampling temperature.
	Temperature *float32 `json:"temperature,omitempty"`
	// TopP is the nucleus sampling probability.
	TopP *float32 `json:"top_p,omitempty"`
	// TopK is the top-k sampling value.
	TopK *int `json:"top_k,omitempty"`
	// FrequencyPenalty penalizes repeated tokens by frequency.
	FrequencyPenalty *float32 `json:"frequency_penalty,omitempty"`
	// PresencePenalty penalizes tokens that already appeared.
	PresencePenalty *float32 `json:"presence_penalty,omitempty"`
	// MaxCompletionTokens caps the number of generated tokens.
	MaxCompletionTokens *int `json:"max_completion_tokens,omitempty"`
}

// AnalyzeRequest asks the model about media with a free-form prompt.
// Construction never fails; problems such as an empty model identifier
// surface as errors at call time.
type AnalyzeRequest struct {
	// Message is the user prompt.
	Message string `json:"message"`
	// Media is the visual input.
	Media Media `json:"media"`
	// OutputFormat selects the response shape (defaults to FormatText).
	OutputFormat OutputFormat `json:"output_format,omitempty"`

	GenerationParams
}

// NewAnalyzeRequest creates an analysis request with its required fields.
// Chain the setter methods for optional parameters.
func NewAnalyzeRequest(model, message string, media Media) AnalyzeRequest {
	return AnalyzeRequest{
		Message:          message,
		Media:            media,
		GenerationParams: GenerationParams{Model: model},
	}
}

// WithOutputFormat sets the output format.
func (r AnalyzeRequest) WithOutputFormat(format OutputFormat) AnalyzeRequest {
	r.OutputFormat = format
	return r
}

// WithReasoning enables or disables chain-of-thought reasoning.
func (r AnalyzeRequest) WithReasoning(enable bool) AnalyzeRequest {
	r.Reasoning = &enable
	return r
}

// WithTemperature sets the sampling temperature.
func (r AnalyzeRequest) WithTemperature(t float32) AnalyzeRequest {
	r.Temperature = &t
	return r
}

// WithTopP sets the nucleus sampling probability.
func (r AnalyzeRequest) WithTopP(p float32) AnalyzeRequest {
	r.TopP = &p
	return r
}

// WithTopK sets top-k sampling.
func (r AnalyzeRequest) WithTopK(k int) AnalyzeRequest {
	r.TopK = &k
	return r
}

// WithFrequencyPenalty sets the frequency penalty.
func (r AnalyzeRequest) WithFrequencyPenalty(p float32) AnalyzeRequest {
	r.FrequencyPenalty = &p
	return r
}

// WithPresencePenalty sets the presence penalty.
func (r AnalyzeRequest) WithPresencePenalty(p float32) AnalyzeRequest {
	r.PresencePenalty = &p
	return r
}

// WithMaxCompletionTokens sets the completion token cap.
func (r AnalyzeRequest) WithMaxCompletionTokens(n int) AnalyzeRequest {
	r.MaxCompletionTokens = &n
	return r
}

// CaptionRequest asks the model for a caption of the media.
type CaptionRequest struct {
	// Media is the visual input.
	Media Media `json:"media"`
	// Style selects caption thoroughness (defaults to StyleConcise).
	Style CaptionStyle `json:"style,omitempty"`
	// OutputFormat selects the response shape (defaults to FormatBox).
	OutputFormat OutputFormat `json:"output_format,omitempty"`

	GenerationParams
}

// NewCaptionRequest creates a caption request with its required fields.
func NewCaptionRequest(model string, media Media) CaptionRequest {
	return CaptionRequest{
		Media:            media,
		GenerationParams: GenerationParams{Model: model},
	}
}

// WithStyle sets the caption style.
func (r CaptionRequest) WithStyle(style CaptionStyle) CaptionRequest {
	r.Style = style
	return r
}

// WithOutputFormat sets the output format.
func (r CaptionRequest) WithOutputFormat(format OutputFormat) CaptionRequest {
	r.OutputFormat = format
	return r
}

// WithReasoning enables or disables chain-of-thought reasoning.
func (r CaptionRequest) WithReasoning(enable bool) CaptionRequest {
	r.Reasoning = &enable
	return r
}

// WithTemperature sets the sampling temperature.
func (r CaptionRequest) WithTemperature(t float32) CaptionRequest {
	r.Temperature = &t
	return r
}

// WithTopP sets the nucleus sampling probability.
func (r CaptionRequest) WithTopP(p float32) CaptionRequest {
	r.TopP = &p
	return r
}

// WithTopK sets top-k sampling.
func (r CaptionRequest) WithTopK(k int) CaptionRequest {
	r.TopK = &k
	return r
}

// WithFrequencyPenalty sets the frequency penalty.
func (r CaptionRequest) WithFrequencyPenalty(p float32) CaptionRequest {
	r.FrequencyPenalty = &p
	return r
}

// WithPresencePenalty sets the presence penalty.
func (r CaptionRequest) WithPresencePenalty(p float32) CaptionRequest {
	r.PresencePenalty = &p
	return r
}

// WithMaxCompletionTokens sets the completion token cap.
func (r CaptionRequest) WithMaxCompletionTokens(n int) CaptionRequest {
	r.MaxCompletionTokens = &n
	return r
}

// OCRRequest asks the model to transcribe text from the media.
type OCRRequest struct {
	// Media is the visual input.
	Media Media `json:"media"`
	// Mode selects the transcription markup (defaults to OCRPlain).
	Mode OCRMode `json:"mode,omitempty"`

	GenerationParams
}

// NewOCRRequest creates an OCR request with its required fields.
func NewOCRRequest(model string, media Media) OCRRequest {
	return OCRRequest{
		Media:            media,
		GenerationParams: GenerationParams{Model: model},
	}
}

// WithMode sets the OCR output mode.
func (r OCRRequest) WithMode(mode OCRMode) OCRRequest {
	r.Mode = mode
	return r
}

// WithReasoning enables or disables chain-of-thought reasoning.
func (r OCRRequest) WithReasoning(enable bool) OCRRequest {
	r.Reasoning = &enable
	return r
}

// WithTemperature sets the sampling temperature.
func (r OCRRequest) WithTemperature(t float32) OCRRequest {
	r.Temperature = &t
	return r
}

// WithTopP sets the nucleus sampling probability.
func (r OCRRequest) WithTopP(p float32) OCRRequest {
	r.TopP = &p
	return r
}

// WithTopK sets top-k sampling.
func (r OCRRequest) WithTopK(k int) OCRRequest {
	r.TopK = &k
	return r
}

// WithFrequencyPenalty sets the frequency penalty.
func (r OCRRequest) WithFrequencyPenalty(p float32) OCRRequest {
	r.FrequencyPenalty = &p
	return r
}

// WithPresencePenalty sets the presence penalty.
func (r OCRRequest) WithPresencePenalty(p float32) OCRRequest {
	r.PresencePenalty = &p
	return r
}

// WithMaxCompletionTokens sets the completion token cap.
func (r OCRRequest) WithMaxCompletionTokens(n int) OCRRequest {
	r.MaxCompletionTokens = &n
	return r
}

// DetectRequest asks the model to find objects in the media. Detection
// always uses bounding-box output.
type DetectRequest struct {
	// Media is the visual input.
	Media Media `json:"media"`
	// Classes restricts detection to the named categories. Empty means
	// detect everything in the scene.
	Classes []string `json:"classes,omitempty"`

	GenerationParams
}

// NewDetectRequest creates a detection request with its required fields.
func NewDetectRequest(model string, media Media) DetectRequest {
	return DetectRequest{
		Media:            media,
		GenerationParams: GenerationParams{Model: model},
	}
}

// WithClasses sets the object categories to detect.
func (r DetectRequest) WithClasses(classes ...string) DetectRequest {
	r.Classes = classes
	return r
}

// WithReasoning enables or disables chain-of-thought reasoning.
func (r DetectRequest) WithReasoning(enable bool) DetectRequest {
	r.Reasoning = &enable
	return r
}

// WithTemperature sets the sampling temperature.
func (r DetectRequest) WithTemperature(t float32) DetectRequest {
	r.Temperature = &t
	return r
}

// WithTopP sets the nucleus sampling probability.
func (r DetectRequest) WithTopP(p float32) DetectRequest {
	r.TopP = &p
	return r
}

// WithTopK sets top-k sampling.
func (r DetectRequest) WithTopK(k int) DetectRequest {
	r.TopK = &k
	return r
}

// WithFrequencyPenalty sets the frequency penalty.
func (r DetectRequest) WithFrequencyPenalty(p float32) DetectRequest {
	r.FrequencyPenalty = &p
	return r
}

// WithPresencePenalty sets the presence penalty.
func (r DetectRequest) WithPresencePenalty(p float32) DetectRequest {
	r.PresencePenalty = &p
	return r
}

// WithMaxCompletionTokens sets the completion token cap.
func (r DetectRequest) WithMaxCompletionTokens(n int) DetectRequest {
	r.MaxCompletionTokens = &n
	return r
}

// Usage is the token accounting reported by the API.
type Usage = chat.Usage

// Point is a single point annotation.
type Point struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Mention string `json:"mention,omitempty"`
}

// BoundingBox is a rectangular annotation given by two corners.
type BoundingBox struct {
	X1      int    `json:"x1"`
	Y1      int    `json:"y1"`
	X2      int    `json:"x2"`
	Y2      int    `json:"y2"`
	Mention string `json:"mention,omitempty"`
}

// Polygon is a closed hull of (x, y) pairs.
type Polygon struct {
	Hull    [][2]int `json:"hull"`
	Mention string   `json:"mention,omitempty"`
}

// Pointing is spatial data extracted from model output. Exactly one field
// is populated, matching the requested OutputFormat.
type Pointing struct {
	Points   []Point       `json:"points,omitempty"`
	Boxes    []BoundingBox `json:"boxes,omitempty"`
	Polygons []Polygon     `json:"polygons,omitempty"`
}

// TextResponse is the result of text-only operations (OCR).
type TextResponse struct {
	// Content is the model's response text.
	Content string `json:"content,omitempty"`
	// Reasoning is the chain-of-thought text, present when reasoning was
	// enabled on the request.
	Reasoning string `json:"reasoning,omitempty"`
	// Usage is provider metadata passed through uninterpreted.
	Usage Usage `json:"usage"`
}

// PointingResponse is the result of spatial operations (Analyze, Caption,
// Detect). Pointing is nil when the output contained no annotations of the
// requested format.
type PointingResponse struct {
	Content   string    `json:"content,omitempty"`
	Reasoning string    `json:"reasoning,omitempty"`
	Pointing  *Pointing `json:"pointing,omitempty"`
	Usage     Usage     `json:"usage"`
}
