package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"github.com/tidwall/gjson"
	"google.golang.org/api/option"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

// Search engines truncate beyond these lengths.
const (
	MaxMetaTitle       = 60
	MaxMetaDescription = 160
)

var ErrEmptyDraft = errors.New("model returned no usable draft")

// MetaDraft is a suggested pair of SEO fields for a blog post.
type MetaDraft struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

// Copywriter drafts blog SEO metadata with Gemini.
type Copywriter struct {
	client    *genai.Client
	modelName string
}

// NewCopywriter initializes the Gemini client.
func NewCopywriter(ctx context.Context, apiKey, modelName string) (*Copywriter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &Copywriter{client: client, modelName: modelName}, nil
}

func (c *Copywriter) Close() error {
	return c.client.Close()
}

// DraftMeta asks the model for a meta title and description for post. The
// draft is returned to the caller and never saved here.
func (c *Copywriter) DraftMeta(ctx context.Context, post models.BlogPost) (*MetaDraft, error) {
	// 1. Configure the model for a JSON answer
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(fmt.Sprintf(`
			You write SEO metadata for a Texas vape shop's blog.
			Answer with a JSON object {"metaTitle": string, "metaDescription": string}.
			metaTitle: at most %d characters. metaDescription: at most %d characters.
			Do not make health claims.
		`, MaxMetaTitle, MaxMetaDescription))},
	}

	// 2. Send the post
	res, err := model.GenerateContent(ctx, genai.Text(promptFor(post)))
	if err != nil {
		return nil, fmt.Errorf("error generating meta draft: %w", err)
	}

	// 3. Collect the text parts and parse them
	var sb strings.Builder
	if len(res.Candidates) > 0 && res.Candidates[0].Content != nil {
		for _, part := range res.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return ParseMetaDraft(sb.String())
}

func promptFor(post models.BlogPost) string {
	content := post.Content
	if utf8.RuneCountInString(content) > 4000 {
		content = string([]rune(content)[:4000])
	}
	return fmt.Sprintf("Title: %s\nSummary: %s\nContent:\n%s", post.Title, post.Summary, content)
}

// ParseMetaDraft reads the model's JSON answer, tolerating a fenced code
// block around it, and clamps both fields to their maximum lengths.
func ParseMetaDraft(raw string) (*MetaDraft, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if !gjson.Valid(raw) {
		return nil, ErrEmptyDraft
	}
	draft := &MetaDraft{
		MetaTitle:       clamp(strings.TrimSpace(gjson.Get(raw, "metaTitle").String()), MaxMetaTitle),
		MetaDescription: clamp(strings.TrimSpace(gjson.Get(raw, "metaDescription").String()), MaxMetaDescription),
	}
	if draft.MetaTitle == "" && draft.MetaDescription == "" {
		return nil, ErrEmptyDraft
	}
	return draft, nil
}

func clamp(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:limit]))
}
