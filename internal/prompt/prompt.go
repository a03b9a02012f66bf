// Package prompt holds the model instructions, user prompt builders and response schemas.
package prompt

import (
	"strings"

	"google.golang.org/genai"
)

func joinOr(items []string, fallback string) string {
	var kept []string
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, ", ")
}

func str() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }

func integer() *genai.Schema { return &genai.Schema{Type: genai.TypeInteger} }

func arrayOf(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

func object(required []string, props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Required: required, Properties: props}
}
