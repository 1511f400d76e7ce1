package chat

// Wire types for the chat completions endpoint. System messages carry a
// plain string content; user messages carry an array of content parts.

type Request struct {
	Model               string    `json:"model"`
	Messages            []Message `json:"messages"`
	MaxCompletionTokens *int      `json:"max_completion_tokens,omitempty"`
	Temperature         *float32  `json:"temperature,omitempty"`
	TopP                *float32  `json:"top_p,omitempty"`
	TopK                *int      `json:"top_k,omitempty"`
	FrequencyPenalty    *float32  `json:"frequency_penalty,omitempty"`
	PresencePenalty     *float32  `json:"presence_penalty,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *MediaURL `json:"image_url,omitempty"`
	VideoURL *MediaURL `json:"video_url,omitempty"`
}

type MediaURL struct {
	URL string `json:"url"`
}

func SystemMessage(text string) Message {
	return Message{Role: "system", Content: text}
}

func UserMessage(parts []ContentPart) Message {
	return Message{Role: "user", Content: parts}
}

func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

func ImagePart(url string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &MediaURL{URL: url}}
}

func VideoPart(url string) ContentPart {
	return ContentPart{Type: "video_url", VideoURL: &MediaURL{URL: url}}
}

type Response struct {
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Message ResponseMessage `json:"message"`
}

type ResponseMessage struct {
	Content          string `json:"content"`
	ReasoningContent string `json:"reasoning_content"`
}

// Usage is the token accounting reported by the API. It is passed through
// to callers without interpretation.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
