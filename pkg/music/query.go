package music

import (
	"strings"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

// MusicTopic is the Freebase topic YouTube uses for music videos.
const MusicTopic = "/m/04rlf"

type moodRule struct {
	keywords []string
	prefix   string
}

// Rules are checked in order; the first keyword hit wins.
var moodRules = []moodRule{
	{[]string{"sad", "anxious", "stressed", "depressed"}, "calm soothing comforting"},
	{[]string{"happy", "joyful", "energetic"}, "upbeat happy energetic"},
	{[]string{"calm", "peaceful", "reflective"}, "calm peaceful reflective"},
}

// BuildQuery turns a mood and a language into a search phrase. Keywords are
// matched as case-insensitive substrings of mood.
func BuildQuery(mood, language string) string {
	base := language + " song music"
	query := mood + " " + base
	for _, r := range moodRules {
		if utils.StringContains(mood, false, r.keywords...) {
			query = r.prefix + " " + mood + " " + base
			break
		}
	}
	query = strings.ReplaceAll(query, " song song", " song")
	return strings.ReplaceAll(query, " music music", " music")
}

// RelevanceLanguage is the lowercased first two characters of language, or
// "en" when language is empty.
func RelevanceLanguage(language string) string {
	if language == "" {
		return "en"
	}
	r := []rune(language)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToLower(string(r))
}
