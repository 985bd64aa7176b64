// Package response builds the JSON envelope every endpoint answers with:
// a human readable "message" plus, when there is one, the payload under a
// resource key such as "user" or "order".
package response

// Body is the response envelope.
type Body map[string]any

func Message(msg string) Body { return Body{"message": msg} }

// With adds the payload under key. An empty key leaves the body untouched.
func (b Body) With(key string, v any) Body {
	if key != "" {
		b[key] = v
	}
	return b
}

// Error builds an error body; an empty msg falls back to the status default.
func Error(code int, msg string) Body {
	if msg == "" {
		msg = CodeMsgMap[code]
	}
	return Message(msg)
}

// Page is a window of a listing with the total row count.
type Page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

func NewPage[T any](items []T, total int64, offset, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Offset: offset, Limit: limit}
}
