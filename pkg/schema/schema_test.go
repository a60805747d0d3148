package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	s, ok := For("journal")
	require.True(t, ok)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"score"`)
	assert.Contains(t, string(raw), `"recommendation"`)
	assert.Contains(t, string(raw), `"additionalProperties":false`)
	score := s.Properties.Value("score")
	require.NotNil(t, score)
	assert.Equal(t, "Emotional well-being score from 1 (very happy) to 10 (very depressed)", score.Description)

	_, ok = For("horoscope")
	assert.False(t, ok)
}

func TestQuestionsSchemaIsArray(t *testing.T) {
	s, ok := For("questions")
	require.True(t, ok)
	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, "object", s.Items.Type)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"image", "journal", "mood", "questions", "report", "song"}, Names())
}
