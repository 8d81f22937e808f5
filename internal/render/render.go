package render

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"furniture-booking/internal/bookingerrors"
)

// Pair is one placeholder binding
type Pair struct {
	Key   string
	Value any
}

// Context is an ordered set of placeholder bindings. Substitution follows slice order.
type Context []Pair

// With returns a copy of c extended by key=value
func (c Context) With(key string, value any) Context {
	out := make(Context, len(c), len(c)+1)
	copy(out, c)
	return append(out, Pair{Key: key, Value: value})
}

// Token returns the placeholder text for key, e.g. "{{ item }}"
func Token(key string) string {
	return "{{ " + key + " }}"
}

// Render replaces every "{{ key }}" token with the string form of its value.
// Tokens without a binding are left as they are.
func Render(source string, ctx Context) string {
	out := source
	for _, p := range ctx {
		out = strings.ReplaceAll(out, Token(p.Key), Stringify(p.Value))
	}
	return out
}

// Stringify converts a context value to page text. Scalars use their
// natural form; records and sequences are written as JSON.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}

// Renderer expands page templates read from a file system
type Renderer struct {
	templates fs.FS
}

// NewRenderer creates a renderer over templates, usually os.DirFS(templateDir)
func NewRenderer(templates fs.FS) *Renderer {
	return &Renderer{templates: templates}
}

// RenderPage reads the named template on every call and expands it with ctx
func (r *Renderer) RenderPage(name string, ctx Context) (string, error) {
	source, err := fs.ReadFile(r.templates, name)
	if err != nil {
		return "", fmt.Errorf("render: read template %s: %w: %w", name, bookingerrors.ErrTemplate, err)
	}
	return Render(string(source), ctx), nil
}
