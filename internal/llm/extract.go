package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSON decodes text into out. When the text is not valid JSON it retries
// with the span between the first '{' and the last '}', which strips code fences and prose.
func ExtractJSON(text string, out any) error {
	err := json.Unmarshal([]byte(text), out)
	if err == nil {
		return nil
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return err
	}
	return json.Unmarshal([]byte(text[start:end+1]), out)
}
