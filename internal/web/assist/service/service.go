// Package service proxies editorial AI tasks to the configured LLM provider.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gutils "github.com/Laisky/go-utils/v6"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"github.com/chandemahtab/blog-api/internal/web/assist/dto"
	"github.com/chandemahtab/blog-api/library/config"
	"github.com/chandemahtab/blog-api/library/log"
)

const (
	defaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel    = "llama-3.3-70b-versatile"
)

var Instance *Assist

func Initialize(ctx context.Context) {
	endpoint := gconfig.Shared.GetString("settings.assist.endpoint")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	model := gconfig.Shared.GetString("settings.assist.model")
	if model == "" {
		model = defaultModel
	}

	Instance = New(log.Logger.Named("assist"),
		endpoint, model,
		config.MustGetSecret("settings.assist.api_key"))
}

// Assist service type
type Assist struct {
	logger   glog.Logger
	endpoint string
	model    string
	apiKey   string
	httpcli  *http.Client
}

// New create new assist service
func New(logger glog.Logger, endpoint, model, apiKey string) *Assist {
	httpcli, err := gutils.NewHTTPClient(
		gutils.WithHTTPClientTimeout(20 * time.Second),
	)
	if err != nil {
		logger.Panic("init httpcli", zap.Error(err))
	}

	return &Assist{
		logger:   logger,
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		httpcli:  httpcli,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// chatCompletion sends a single system+user exchange to the provider
// and returns the assistant's reply.
func (s *Assist) chatCompletion(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(&chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build chat request")
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpcli.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call chat endpoint")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("chat endpoint status %d", resp.StatusCode)
	}

	decoded := new(chatResponse)
	if err := json.NewDecoder(resp.Body).Decode(decoded); err != nil {
		return "", errors.Wrap(err, "decode chat response")
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("chat response has no choices")
	}

	reply := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("chat response is empty")
	}

	return reply, nil
}

// Translate renders text into the target language, keeping markdown intact.
func (s *Assist) Translate(ctx context.Context, text, targetLanguage string) (*dto.TranslationResult, error) {
	target := strings.ToLower(strings.TrimSpace(targetLanguage))
	switch target {
	case "english", "urdu":
	default:
		return nil, errors.Errorf("unsupported target language %q", targetLanguage)
	}

	source := "urdu"
	if target == "urdu" {
		source = "english"
	}

	system := fmt.Sprintf("You are a professional translator. Translate the user's text to %s. "+
		"Preserve markdown formatting. Reply with the translation only, no commentary.", target)

	translated, err := s.chatCompletion(ctx, system, text)
	if err != nil {
		return nil, errors.Wrap(err, "translate")
	}

	return &dto.TranslationResult{
		TranslatedText: translated,
		SourceLanguage: source,
		TargetLanguage: target,
		Confidence:     0.85,
	}, nil
}

// summary length when the caller does not ask for one
const defaultSummaryWords = 150

// normalizeLanguage validates an output language, defaulting to english.
func normalizeLanguage(language string) (string, error) {
	switch lang := strings.ToLower(strings.TrimSpace(language)); lang {
	case "":
		return "english", nil
	case "english", "urdu":
		return lang, nil
	default:
		return "", errors.Errorf("unsupported language %q", language)
	}
}

// Summarize condenses a post draft into a summary of roughly maxWords
// words in the requested language, with key points.
func (s *Assist) Summarize(ctx context.Context, content, language string, maxWords int) (*dto.SummaryResult, error) {
	lang, err := normalizeLanguage(language)
	if err != nil {
		return nil, err
	}
	if maxWords <= 0 {
		maxWords = defaultSummaryWords
	}

	var system string
	if lang == "urdu" {
		system = fmt.Sprintf("آپ ایک ادارتی معاون ہیں۔ صارف کے بلاگ مضمون کا تقریباً %d الفاظ میں اردو خلاصہ لکھیں، پھر 3 سے 5 اہم نکات '- ' سے شروع ہونے والی سطروں میں درج کریں۔", maxWords)
	} else {
		system = fmt.Sprintf("You are an editorial assistant. Summarize the user's blog post "+
			"in english in roughly %d words, then list 3-5 key points as markdown bullet "+
			"lines starting with '- '.", maxWords)
	}

	reply, err := s.chatCompletion(ctx, system, content)
	if err != nil {
		return nil, errors.Wrap(err, "summarize")
	}

	return parseSummary(reply)
}

// SuggestTags proposes tags for a post draft.
func (s *Assist) SuggestTags(ctx context.Context, title, content string) (*dto.TagsResult, error) {
	system := "You are an editorial assistant. Suggest relevant tags for the blog post. " +
		"Reply with a single comma-separated list of short lowercase tags, nothing else."

	reply, err := s.chatCompletion(ctx, system, "Title: "+title+"\n\n"+content)
	if err != nil {
		return nil, errors.Wrap(err, "suggest tags")
	}

	tags := parseTags(reply)
	if len(tags) == 0 {
		return nil, errors.New("no usable tags in reply")
	}

	return &dto.TagsResult{Tags: tags}, nil
}

// Suggestions asks for editorial feedback on a draft in the requested language.
func (s *Assist) Suggestions(ctx context.Context, content, language string) (*dto.SuggestionsResult, error) {
	lang, err := normalizeLanguage(language)
	if err != nil {
		return nil, err
	}

	system := "You are an editorial assistant. Review the user's blog post draft and give " +
		"concise, actionable suggestions on clarity, structure, and tone. Reply in " + lang + "."

	reply, err := s.chatCompletion(ctx, system, content)
	if err != nil {
		return nil, errors.Wrap(err, "suggestions")
	}

	return &dto.SuggestionsResult{Suggestions: reply}, nil
}

// Moderate classifies a comment as APPROVE, REJECT, or REVIEW.
func (s *Assist) Moderate(ctx context.Context, content string) (*dto.ModerationResult, error) {
	system := "You are a comment moderator for a family-friendly bilingual blog. " +
		"Classify the user's comment. Reply with exactly one word on the first line: " +
		"APPROVE, REJECT, or REVIEW. You may add a short reason on the second line."

	reply, err := s.chatCompletion(ctx, system, content)
	if err != nil {
		return nil, errors.Wrap(err, "moderate")
	}

	return parseModeration(reply), nil
}

// ModerateComment adapts Moderate to the comment pipeline: only an
// explicit APPROVE verdict publishes the comment immediately.
func (s *Assist) ModerateComment(ctx context.Context, content string) (bool, error) {
	result, err := s.Moderate(ctx, content)
	if err != nil {
		return false, err
	}

	return result.Action == dto.ActionApprove, nil
}
