package schema

// JournalAnalysis is what the model is asked to return for a journal entry.
type JournalAnalysis struct {
	Score          int    `json:"score" jsonschema:"minimum=1,maximum=10" jsonschema_description:"Emotional well-being score from 1 (very happy) to 10 (very depressed)"`
	Explanation    string `json:"explanation" jsonschema_description:"Why the entry received this score"`
	Recommendation string `json:"recommendation" jsonschema_description:"A short, kind suggestion for the writer"`
}

type MoodAssessment struct {
	MentalScore        int `json:"mental_score" jsonschema:"minimum=1,maximum=10" jsonschema_description:"Overall mental health score"`
	EQScore            int `json:"eq_score" jsonschema:"minimum=1,maximum=10" jsonschema_description:"Emotional intelligence score"`
	SelfAwarenessScore int `json:"self_awareness_score" jsonschema:"minimum=1,maximum=10" jsonschema_description:"Self-awareness score"`
}

type ReportAnalysis struct {
	Analysis string `json:"analysis" jsonschema_description:"Narrative analysis of the combined scores"`
}

type Question struct {
	Text    string   `json:"text" jsonschema_description:"The question shown to the user"`
	Type    string   `json:"type" jsonschema:"enum=emotion,enum=slider,enum=text" jsonschema_description:"Input widget for the answer"`
	Options []string `json:"options,omitempty" jsonschema_description:"Emoji choices for emotion questions"`
	Min     *int     `json:"min,omitempty" jsonschema_description:"Lower bound for slider questions"`
	Max     *int     `json:"max,omitempty" jsonschema_description:"Upper bound for slider questions"`
}

// Questionnaire is the ordered list returned by question generation. The
// first entry is an emotion picker, the second a stress slider.
type Questionnaire []Question

type SongResult struct {
	Success bool   `json:"success"`
	VideoID string `json:"videoId,omitempty" jsonschema_description:"YouTube video ID of the best match"`
	Error   string `json:"error,omitempty"`
}

type ImageResult struct {
	ImageURL string `json:"image_url" jsonschema_description:"Path of the generated image under /static"`
}
