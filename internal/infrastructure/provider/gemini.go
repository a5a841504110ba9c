package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/eslsoft/blinkvocab/internal/entity"
	"github.com/eslsoft/blinkvocab/internal/infrastructure/config"
)

// Client calls the Gemini generateContent API for word learning cards and
// store item illustrations.
type Client struct {
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	httpClient *http.Client
}

// New builds a client from configuration. A client with an empty API key is
// valid but every call fails with entity.ErrProviderUnavailable; callers fall
// back to placeholders.
func New(cfg config.ProviderConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// FetchWordDetail generates a learning card tailored to the requested
// proficiency level.
func (c *Client) FetchWordDetail(ctx context.Context, word string, difficulty entity.DifficultyLevel) (*entity.WordDetail, error) {
	prompt := fmt.Sprintf(`Create a learning card for the English word: %q specifically for a Chinese speaker who is a fan of K-pop group Blackpink.

Target Proficiency Level: %s.
Tailor the definition complexity and example sentence sophistication to match this level.

Requirements:
1. Define part of speech and Traditional Chinese definition.
2. Provide IPA phonetics for US and UK.
3. Etymology: Explain root/suffix OR provide a fun mnemonic (keep this easy to understand).
4. Example Sentence (English): MUST feature Blackpink (Jisoo, Jennie, Rosé, or Lisa), their songs, albums, or fictional scenarios involving them.
5. Example Sentence (Chinese): Translate the Blackpink example.
6. Difficulty: Explicitly state the difficulty of this word as %q if possible, or its actual difficulty.

Respond with a single JSON object with keys: ipa_us, ipa_uk, part_of_speech, chinese_definition, etymology_or_mnemonic, example_sentence_en, example_sentence_cn, difficulty_level.`,
		word, difficulty, difficulty)

	resp, err := c.generate(ctx, c.textModel, generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", entity.ErrProviderUnavailable)
	}

	var detail entity.WordDetail
	if err := json.Unmarshal([]byte(text), &detail); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", entity.ErrProviderUnavailable, err)
	}
	detail.Word = word
	if detail.DifficultyLevel == "" {
		detail.DifficultyLevel = string(difficulty)
	}
	return &detail, nil
}

// GenerateItemImage produces a chibi sticker illustration for a store item,
// returned as a data URL.
func (c *Client) GenerateItemImage(ctx context.Context, itemName string, category entity.ItemCategory) (string, error) {
	prompt := fmt.Sprintf(`Draw a Chibi style (cute doll), 2D vector art illustration of: %s.
Theme: Blackpink K-pop style, black and pink color palette.
Style: Cute, sticker-like, white background, simple lines, kawaii.
Category: %s.`, itemName, category)

	resp, err := c.generate(ctx, c.imageModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return fmt.Sprintf("data:%s;base64,%s", p.InlineData.MimeType, p.InlineData.Data), nil
			}
		}
	}
	return "", fmt.Errorf("%w: no image in response", entity.ErrProviderUnavailable)
}

func (c *Client) generate(ctx context.Context, model string, request generateRequest) (*generateResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", entity.ErrProviderUnavailable)
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal provider request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", entity.ErrProviderUnavailable, err)
	}
	if decoded.Error != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrProviderUnavailable, decoded.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", entity.ErrProviderUnavailable, resp.StatusCode)
	}
	return &decoded, nil
}

func firstText(resp *generateResponse) string {
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}
