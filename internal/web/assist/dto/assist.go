// Package dto contains the request/response shapes of the AI assist feature.
package dto

// Moderation actions returned by the classifier.
const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
	ActionReview  = "REVIEW"
)

// TranslateRequest asks for a translation of free text.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// TranslationResult carries the translated text.
type TranslationResult struct {
	TranslatedText string  `json:"translatedText"`
	SourceLanguage string  `json:"sourceLanguage"`
	TargetLanguage string  `json:"targetLanguage"`
	Confidence     float64 `json:"confidence"`
}

// SummarizeRequest asks for a summary of a post draft. Language
// defaults to english and maxWords to the service default when omitted.
type SummarizeRequest struct {
	Content  string `json:"content"`
	Language string `json:"language"`
	MaxWords int    `json:"maxWords"`
}

// SummaryResult carries the generated summary.
type SummaryResult struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

// TagsRequest asks for tag suggestions for a post draft.
type TagsRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TagsResult carries the suggested tags.
type TagsResult struct {
	Tags []string `json:"tags"`
}

// SuggestionsRequest asks for editorial feedback on a draft.
type SuggestionsRequest struct {
	Content  string `json:"content"`
	Language string `json:"language"`
}

// SuggestionsResult carries the editorial feedback.
type SuggestionsResult struct {
	Suggestions string `json:"suggestions"`
}

// ModerateRequest asks for a moderation verdict on a comment.
type ModerateRequest struct {
	Content string `json:"content"`
}

// ModerationResult carries the moderation verdict.
type ModerationResult struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}
