package model

type LearningStyle string

const (
	Visual      LearningStyle = "visual"
	Auditory    LearningStyle = "auditory"
	Textual     LearningStyle = "textual"
	Kinesthetic LearningStyle = "kinesthetic"
)

// AllLearningStyles 固定顺序，评分与展示均按此顺序遍历
var AllLearningStyles = []LearningStyle{Visual, Auditory, Textual, Kinesthetic}

func (s LearningStyle) Valid() bool {
	switch s {
	case Visual, Auditory, Textual, Kinesthetic:
		return true
	}
	return false
}

type MoodType string

const (
	MoodFocused   MoodType = "focused"
	MoodRelaxed   MoodType = "relaxed"
	MoodEnergetic MoodType = "energetic"
	MoodStressed  MoodType = "stressed"
	MoodCurious   MoodType = "curious"
)

var AllMoods = []MoodType{MoodFocused, MoodRelaxed, MoodEnergetic, MoodStressed, MoodCurious}

func (m MoodType) Valid() bool {
	switch m {
	case MoodFocused, MoodRelaxed, MoodEnergetic, MoodStressed, MoodCurious:
		return true
	}
	return false
}

type ContentType string

const (
	ContentSummary      ContentType = "summary"
	ContentFlashcards   ContentType = "flashcards"
	ContentAudioLesson  ContentType = "audio_lesson"
	ContentVisualDoodle ContentType = "visual_doodle"
	ContentQuiz         ContentType = "quiz"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentSummary, ContentFlashcards, ContentAudioLesson, ContentVisualDoodle, ContentQuiz:
		return true
	}
	return false
}

// SupportedLanguages 注册时允许的界面语言
var SupportedLanguages = []string{"en", "es", "fr", "de", "zh"}

func LanguageSupported(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
