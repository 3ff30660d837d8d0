package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/pluralis/noun"
)

// JSONRenderer writes prediction results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the results as a JSON array.
func (r *JSONRenderer) Render(results []noun.Result) error {
	if results == nil {
		results = []noun.Result{}
	}
	return json.NewEncoder(r.W).Encode(results)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
