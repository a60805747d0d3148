package schema

import (
	"maps"
	"slices"

	"github.com/invopop/jsonschema"
)

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

var schemas = map[string]*jsonschema.Schema{
	"journal":   generateSchema[JournalAnalysis](),
	"mood":      generateSchema[MoodAssessment](),
	"report":    generateSchema[ReportAnalysis](),
	"questions": generateSchema[Questionnaire](),
	"song":      generateSchema[SongResult](),
	"image":     generateSchema[ImageResult](),
}

// For returns the JSON Schema of a task result by its short name.
func For(task string) (*jsonschema.Schema, bool) {
	s, ok := schemas[task]
	return s, ok
}

// Names lists the known schema names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(schemas))
}
