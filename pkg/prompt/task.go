package prompt

import "strings"

// Task selects the instruction template and decoding profile of a request.
type Task int

const (
	JournalAnalysis Task = iota
	MoodAssessment
	ReportAnalysis
	SupportiveAnswer
	QuestionGeneration
	SongSearch
	ImagePrompt
)

var taskNames = [...]string{
	JournalAnalysis:    "journal_analysis",
	MoodAssessment:     "mood_assessment",
	ReportAnalysis:     "report_analysis",
	SupportiveAnswer:   "supportive_answer",
	QuestionGeneration: "question_generation",
	SongSearch:         "song_search",
	ImagePrompt:        "image_prompt",
}

func (t Task) String() string {
	if t >= 0 && int(t) < len(taskNames) {
		return taskNames[t]
	}
	return "unknown"
}

// Conversational reports whether the task runs with the tuned decoding
// parameters and the safety policy.
func (t Task) Conversational() bool { return t == SupportiveAnswer }

// Persona picks the question-generation variant.
type Persona string

const (
	PersonaGeneral Persona = "general"
	PersonaStudent Persona = "student"
)

// ParsePersona maps anything that is not "student" to the general persona.
func ParsePersona(s string) Persona {
	if Persona(strings.ToLower(strings.TrimSpace(s))) == PersonaStudent {
		return PersonaStudent
	}
	return PersonaGeneral
}

// FirstQuestion is the wording the template mandates for question one.
func (p Persona) FirstQuestion() string {
	if p == PersonaStudent {
		return "How are you feeling about your day as a student?"
	}
	return "How do you feel right now?"
}
