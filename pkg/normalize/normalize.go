package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/inference"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

// ExpectedQuestions is the length the question template asks for.
const ExpectedQuestions = 10

// ListShapeDetails is reported when generated questions are not a list of
// {text, type} objects.
const ListShapeDetails = "Generated data is not in the expected JSON format of a list of objects with 'text' and 'type'."

var (
	fenceOpen  = regexp.MustCompile("^\\s*```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```\\s*$")
)

// StripFences removes a leading ```json (or bare ```) opener and a trailing
// ``` closer, then trims. Text without fences comes back trimmed.
func StripFences(s string) string {
	s = fenceOpen.ReplaceAllString(s, "")
	s = fenceClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func parse(resp inference.Response) (string, any, *ErrorResult) {
	if res := FromResponse(resp); res != nil {
		return "", nil, res
	}
	text := StripFences(resp.Text)
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text, nil, &ErrorResult{Kind: MalformedJSON, Details: err.Error(), Raw: text}
	}
	return text, v, nil
}

// Object normalizes a response that should hold a single JSON value. The
// value is returned exactly as the model wrote it; fields are not checked.
func Object(resp inference.Response) (json.RawMessage, error) {
	text, _, res := parse(resp)
	if res != nil {
		return nil, res
	}
	return json.RawMessage(text), nil
}

// Questions normalizes a generated questionnaire. Only the list shape is
// enforced. Length and the types of the first two entries are warnings.
func Questions(resp inference.Response, persona prompt.Persona) (json.RawMessage, error) {
	text, v, res := parse(resp)
	if res != nil {
		return nil, res
	}

	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, &ErrorResult{Kind: SchemaViolation, Details: ListShapeDetails, Raw: text}
	}
	questions := make([]map[string]any, len(list))
	for i, item := range list {
		q, ok := item.(map[string]any)
		if !ok {
			return nil, &ErrorResult{Kind: SchemaViolation, Details: ListShapeDetails, Raw: text}
		}
		_, hasText := q["text"]
		_, hasType := q["type"]
		if !hasText || !hasType {
			return nil, &ErrorResult{Kind: SchemaViolation, Details: ListShapeDetails, Raw: text}
		}
		questions[i] = q
	}

	if len(questions) != ExpectedQuestions {
		log.Warn("unexpected question count, using what was generated", "persona", persona, "count", len(questions), "want", ExpectedQuestions)
	}
	checkType(questions, 0, "emotion", persona)
	checkType(questions, 1, "slider", persona)
	logDrift(questions[0], persona)

	return json.RawMessage(text), nil
}

func checkType(questions []map[string]any, i int, want string, persona prompt.Persona) {
	if i >= len(questions) {
		return
	}
	if got := fmt.Sprint(questions[i]["type"]); got != want {
		log.Warn("unexpected question type", "persona", persona, "position", i+1, "want", want, "got", got)
	}
}

func logDrift(first map[string]any, persona prompt.Persona) {
	got, _ := first["text"].(string)
	want := persona.FirstQuestion()
	if got == want {
		return
	}
	var b strings.Builder
	for _, d := range utils.DiffWords(want, got) {
		switch d.Op {
		case utils.DiffDelete:
			fmt.Fprintf(&b, "[-%s-]", d.Text)
		case utils.DiffInsert:
			fmt.Fprintf(&b, "{+%s+}", d.Text)
		default:
			b.WriteString(d.Text)
		}
	}
	log.Debug("first question drifted from template", "persona", persona, "diff", b.String())
}
