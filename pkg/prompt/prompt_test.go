package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_PrependsPreamble(t *testing.T) {
	cases := []struct {
		task   Task
		marker string
	}{
		{JournalAnalysis, "analyze journal entries"},
		{MoodAssessment, "self-reflection mood assessment"},
		{ReportAnalysis, "You are a mental wellness expert"},
	}
	for _, tc := range cases {
		t.Run(tc.task.String(), func(t *testing.T) {
			got, err := Build(tc.task, "I feel okay today")
			require.NoError(t, err)
			assert.Contains(t, got, tc.marker)
			assert.True(t, strings.HasSuffix(got, "\nI feel okay today"))
		})
	}
}

func TestBuild_StructuredPayloadIsIndentedJSON(t *testing.T) {
	raw := json.RawMessage(`{"journal_score":4,"mental_score":3}`)

	got, err := Build(ReportAnalysis, raw)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(got, "\n{\n  \"journal_score\": 4,\n  \"mental_score\": 3\n}"), got)
}

func TestBuild_MapPayload(t *testing.T) {
	got, err := Build(ReportAnalysis, map[string]any{"eq_score": 2})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "{\n  \"eq_score\": 2\n}"))
}

func TestBuild_RawStringIsUnquoted(t *testing.T) {
	got, err := Build(JournalAnalysis, json.RawMessage(`"a \"quoted\" day"`))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "\na \"quoted\" day"))
}

func TestBuild_Supportive(t *testing.T) {
	got, err := Build(SupportiveAnswer, "How do I stay motivated?")
	require.NoError(t, err)

	assert.Contains(t, got, "CANNOT provide therapy")
	assert.Contains(t, got, "User Question: How do I stay motivated?\n\nSupportive Answer:")
}

func TestBuild_Questions(t *testing.T) {
	student, err := Build(QuestionGeneration, PersonaStudent)
	require.NoError(t, err)
	assert.Contains(t, student, "The user is a student.")
	assert.Contains(t, student, "exactly 10 diverse questions")

	general, err := Build(QuestionGeneration, "anything else")
	require.NoError(t, err)
	assert.Contains(t, general, "general adult (non-student)")
}

func TestBuild_ImagePrompt(t *testing.T) {
	got, err := Build(ImagePrompt, "lonely but hopeful")
	require.NoError(t, err)
	assert.Contains(t, got, `The user is feeling "lonely but hopeful".`)
}

func TestBuild_SongSearchHasNoTemplate(t *testing.T) {
	_, err := Build(SongSearch, "sad")
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestParsePersona(t *testing.T) {
	assert.Equal(t, PersonaStudent, ParsePersona("student"))
	assert.Equal(t, PersonaStudent, ParsePersona(" Student "))
	assert.Equal(t, PersonaGeneral, ParsePersona("general"))
	assert.Equal(t, PersonaGeneral, ParsePersona("teacher"))
	assert.Equal(t, PersonaGeneral, ParsePersona(""))
}

func TestIsEmpty(t *testing.T) {
	empty := []any{
		nil, "", "   \n\t", json.RawMessage(nil), json.RawMessage(`null`), json.RawMessage(`"  "`),
		json.RawMessage(`{}`), json.RawMessage(`[]`), json.RawMessage(`0`), json.RawMessage(`false`),
	}
	for _, v := range empty {
		assert.True(t, IsEmpty(v), "%#v", v)
	}

	full := []any{
		"hi", json.RawMessage(`"hi"`), json.RawMessage(`{"a":1}`), json.RawMessage(`[1]`), json.RawMessage(`7`),
	}
	for _, v := range full {
		assert.False(t, IsEmpty(v), "%#v", v)
	}
}

func TestTaskString(t *testing.T) {
	assert.Equal(t, "journal_analysis", JournalAnalysis.String())
	assert.Equal(t, "unknown", Task(99).String())
	assert.True(t, SupportiveAnswer.Conversational())
	assert.False(t, JournalAnalysis.Conversational())
}
