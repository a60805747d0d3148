// Package prompt turns a task and a user payload into the instruction text
// sent to the model. Templates are fixed at compile time.
package prompt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoTemplate is returned for tasks that are not model prompts.
var ErrNoTemplate = errors.New("prompt: task has no instruction template")

var preambles = map[Task]string{
	JournalAnalysis: journalInstruction,
	MoodAssessment:  moodInstruction,
	ReportAnalysis:  reportInstruction,
}

// Build returns the complete prompt for task. Structured payloads are
// serialized as indented JSON; strings are used verbatim.
func Build(task Task, payload any) (string, error) {
	switch task {
	case SupportiveAnswer:
		text, err := Serialize(payload)
		if err != nil {
			return "", err
		}
		return Supportive(text), nil
	case QuestionGeneration:
		text, err := Serialize(payload)
		if err != nil {
			return "", err
		}
		return Questions(ParsePersona(text)), nil
	case ImagePrompt:
		text, err := Serialize(payload)
		if err != nil {
			return "", err
		}
		return imageHead + text + imageTail, nil
	}

	preamble, ok := preambles[task]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoTemplate, task)
	}
	text, err := Serialize(payload)
	if err != nil {
		return "", err
	}
	return preamble + "\n" + text, nil
}

// Supportive wraps a question in the guardrail persona.
func Supportive(question string) string {
	return supportiveHead + question + supportiveTail
}

// Questions returns the question-generation prompt for a persona.
func Questions(p Persona) string {
	specific := generalQuestions
	if p == PersonaStudent {
		specific = studentQuestions
	}
	return questionsIntro + "\n" + specific
}

// Serialize renders a payload as prompt text. A json.RawMessage holding a
// JSON string is unquoted; any other raw value is re-indented with its key
// order preserved.
func Serialize(payload any) (string, error) {
	switch v := payload.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case Persona:
		return string(v), nil
	case []byte:
		return string(v), nil
	case json.RawMessage:
		raw := bytes.TrimSpace(v)
		if len(raw) > 0 && raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return "", fmt.Errorf("prompt: decode string payload: %w", err)
			}
			return s, nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return "", fmt.Errorf("prompt: indent payload: %w", err)
		}
		return buf.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("prompt: marshal payload: %w", err)
		}
		return string(b), nil
	}
}

// IsEmpty reports whether a request payload carries nothing worth sending:
// absent, null, blank strings, empty objects or arrays, zero and false.
func IsEmpty(payload any) bool {
	switch v := payload.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case json.RawMessage:
		raw := bytes.TrimSpace(v)
		if len(raw) == 0 {
			return true
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return true
		}
		return IsEmpty(decoded)
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case float64:
		return v == 0
	case bool:
		return !v
	}
	return false
}
