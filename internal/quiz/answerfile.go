package quiz

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseAnswers decodes a YAML or JSON document mapping question IDs to
// answers. JSON parses as YAML, so one decoder serves both.
func ParseAnswers(data []byte) (Answers, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("decode answers: %w", ErrNilAnswers)
	}
	return Answers(m), nil
}

// LoadAnswers reads an answer file from disk.
func LoadAnswers(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	a, err := ParseAnswers(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// MarshalAnswers encodes answers as YAML, keys sorted.
func MarshalAnswers(a Answers) ([]byte, error) {
	return yaml.Marshal(map[string]any(a))
}
