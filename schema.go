package perceptron

import "github.com/perceptron-ai/perceptron-go/internal/util"

// JSONSchema returns a JSON schema string describing v, which should be a
// pointer to one of the request or response types (for example
// *AnalyzeRequest). Useful for embedding the SDK's types in tool
// definitions of agent frameworks.
func JSONSchema(v any) string {
	return util.GenerateJSONSchema(v)
}
