package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	config "github.com/maheshrc27/dronepost/configs"
	"github.com/maheshrc27/dronepost/internal/models"
	"github.com/maheshrc27/dronepost/internal/transfer"
)

const geminiGenerateURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash-exp:generateContent"

type ContentGenerator interface {
	GenerateContentIdeas(ctx context.Context, theme string, count int) ([]string, error)
	GenerateVideoScript(ctx context.Context, idea, duration string) (*models.Script, error)
	GenerateCaption(ctx context.Context, idea, platform string) (string, error)
	GenerateDroneTips(ctx context.Context, skillLevel string) ([]string, error)
	AnalyzeTrends(ctx context.Context) (*transfer.TrendAnalysis, error)
}

type geminiGenerator struct {
	cfg    config.Config
	client *http.Client
}

// NewContentGenerator returns the Gemini-backed generator, or the mock when
// mock mode is requested or no API key is configured.
func NewContentGenerator(cfg config.Config, useMock bool) ContentGenerator {
	if useMock {
		return NewMockContentGenerator()
	}
	if cfg.GoogleAIKey == "" {
		log.Println("Warning: no Google AI API key found, using mock content generator")
		return NewMockContentGenerator()
	}
	return &geminiGenerator{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *geminiGenerator) GenerateContentIdeas(ctx context.Context, theme string, count int) ([]string, error) {
	prompt := fmt.Sprintf(`Generate %d viral drone video content ideas. Focus on:
- Trending drone cinematography techniques
- Popular drone locations
- Engaging storytelling with aerial footage
- Social media friendly concepts

Theme: %s

Return as a numbered list with brief descriptions.`, count, theme)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseListResponse(text), nil
}

func (g *geminiGenerator) GenerateVideoScript(ctx context.Context, idea, duration string) (*models.Script, error) {
	prompt := fmt.Sprintf(`Create a drone video script for this idea: "%s"

Duration: %s

Include:
1. Opening shot description
2. Key drone movements and angles
3. Story progression
4. Closing shot
5. Suggested background music type
6. Hashtags for social media

Format as JSON with keys: opening, movements, story, closing, music, hashtags`, idea, duration)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var script models.Script
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &script); err != nil {
		// Model did not honor the JSON format, keep the raw text.
		return &models.Script{Raw: text}, nil
	}
	return &script, nil
}

func (g *geminiGenerator) GenerateCaption(ctx context.Context, idea, platform string) (string, error) {
	prompt := fmt.Sprintf(`Create an engaging %s caption for this drone video:

%s

Include:
- Hook to grab attention
- Relevant emojis
- Call to action
- Popular hashtags for drone content

Keep it under 200 characters for TikTok, under 300 for Instagram.`, platform, idea)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *geminiGenerator) GenerateDroneTips(ctx context.Context, skillLevel string) ([]string, error) {
	prompt := fmt.Sprintf(`Generate 5 practical drone flying tips for %s pilots.
Focus on safety, technique, and getting better shots.`, skillLevel)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseListResponse(text), nil
}

func (g *geminiGenerator) AnalyzeTrends(ctx context.Context) (*transfer.TrendAnalysis, error) {
	prompt := `Analyze current trends in drone content on social media. Include:
1. Popular types of drone shots
2. Trending locations
3. Common editing styles
4. Viral music choices
5. Best posting times

Return as JSON with trend analysis.`

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis transfer.TrendAnalysis
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &analysis); err != nil {
		return &transfer.TrendAnalysis{Analysis: text}, nil
	}
	return &analysis, nil
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := transfer.GeminiRequest{
		Contents: []transfer.GeminiContent{
			{Parts: []transfer.GeminiPart{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiGenerateURL+"?key="+g.cfg.GoogleAIKey, bytes.NewBuffer(jsonData))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var result transfer.GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("Gemini returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// parseListResponse extracts items from a numbered or bulleted list.
func parseListResponse(text string) []string {
	var items []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !unicode.IsDigit(rune(line[0])) && !strings.HasPrefix(line, "-") {
			continue
		}

		clean := line
		head := line
		if len(head) > 5 {
			head = head[:5]
		}
		if i := strings.Index(head, "."); i >= 0 {
			clean = strings.TrimSpace(line[i+1:])
		} else if i := strings.Index(head, ")"); i >= 0 {
			clean = strings.TrimSpace(line[i+1:])
		} else if strings.HasPrefix(line, "-") {
			clean = strings.TrimSpace(line[1:])
		}

		if clean != "" {
			items = append(items, clean)
		}
	}
	return items
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
