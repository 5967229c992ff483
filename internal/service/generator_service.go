package service

import (
	"bytes"
	"educrate/internal/config"
	"fmt"
	"strings"
	"text/template"

	"educrate/internal/model"
)

// GeneratorService 本地内容生成器。接口形态与真正的模型服务一致，
// 内部是确定性的文本模板，方便后续替换为本地模型调用。
type GeneratorService struct {
	cfg config.GeneratorConfig

	summaryTmpl *template.Template
	audioTmpl   *template.Template
	doodleTmpl  *template.Template
	answerTmpl  *template.Template
}

func NewGeneratorService(cfg config.GeneratorConfig) *GeneratorService {
	return &GeneratorService{
		cfg: cfg,
		summaryTmpl: template.Must(template.New("summary").Parse(
			"AI-generated summary for {{.Style}} learners: {{.Excerpt}}...")),
		audioTmpl: template.Must(template.New("audio").Parse(
			"Audio script for {{.Tone}} style: {{.Content}}")),
		doodleTmpl: template.Must(template.New("doodle").Parse(
			"Visual description for concept: {{.Concept}}")),
		answerTmpl: template.Must(template.New("answer").Parse(
			"Answer tailored for {{.Style}} learner: Based on the context, {{.Question}} can be answered as...")),
	}
}

// GenerateSummary 生成按风格定制的摘要，超长原文按配置截断
func (s *GeneratorService) GenerateSummary(content string, style model.LearningStyle) string {
	excerpt := content
	if runes := []rune(content); len(runes) > s.cfg.SummaryMaxChars {
		excerpt = string(runes[:s.cfg.SummaryMaxChars])
	}
	return s.render(s.summaryTmpl, map[string]interface{}{
		"Style":   style,
		"Excerpt": excerpt,
	})
}

func (s *GeneratorService) GenerateFlashcards(content string) []model.FlashcardPair {
	cards := make([]model.FlashcardPair, s.cfg.FlashcardCount)
	for i := range cards {
		cards[i] = model.FlashcardPair{
			Question: fmt.Sprintf("Question %d about the topic", i+1),
			Answer:   fmt.Sprintf("Answer %d", i+1),
		}
	}
	return cards
}

func (s *GeneratorService) GenerateAudioScript(content string) string {
	return s.render(s.audioTmpl, map[string]interface{}{
		"Tone":    "conversational",
		"Content": content,
	})
}

func (s *GeneratorService) GenerateVisualDescription(concept string) string {
	return s.render(s.doodleTmpl, map[string]interface{}{
		"Concept": concept,
	})
}

func (s *GeneratorService) AnswerQuestion(question, context string, style model.LearningStyle) string {
	return s.render(s.answerTmpl, map[string]interface{}{
		"Style":    style,
		"Question": strings.TrimSpace(question),
	})
}

// SuggestStudyApproach 根据心情和可用时长给出学习建议，激励文案由调用方注入
func (s *GeneratorService) SuggestStudyApproach(mood model.MoodType, availableTime int) model.StudySuggestion {
	duration := availableTime
	if duration > s.cfg.MaxStudyDuration {
		duration = s.cfg.MaxStudyDuration
	}
	return model.StudySuggestion{
		RecommendedContentTypes: []model.ContentType{model.ContentSummary, model.ContentFlashcards},
		StudyDuration:           duration,
		BreakIntervals:          s.cfg.BreakInterval,
		DifficultyAdjustment:    "medium",
	}
}

func (s *GeneratorService) render(tmpl *template.Template, data interface{}) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}
