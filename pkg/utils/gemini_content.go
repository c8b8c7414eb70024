package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"atchub/internal/models/db_models"
)

// GeminiContentClient implements ContentClientInterface on Google's Gemini models.
type GeminiContentClient struct {
	client *genai.Client
	model  string
}

func NewGeminiContentClient(apiKey, model string) (ContentClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiContentClient{
		client: client,
		model:  model,
	}, nil
}

// generateJSON runs a JSON-mode completion and unmarshals the answer into out.
func (c *GeminiContentClient) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.4)
	m.SetTopP(0.8)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	content, err := firstPart(resp)
	if err != nil {
		return err
	}
	if !json.Valid([]byte(content)) {
		return fmt.Errorf("gemini: not valid json")
	}
	return json.Unmarshal([]byte(content), out)
}

// generateText runs a plain-text completion.
func (c *GeminiContentClient) generateText(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return firstPart(resp)
}

func firstPart(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiContentClient) FetchFleetCatalogue(ctx context.Context) ([]db_models.FleetShip, error) {
	var ships []db_models.FleetShip
	if err := c.generateJSON(ctx, FleetCataloguePrompt, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

func (c *GeminiContentClient) FetchMemberDirectory(ctx context.Context) ([]db_models.Member, error) {
	var members []db_models.Member
	if err := c.generateJSON(ctx, MemberDirectoryPrompt, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *GeminiContentClient) FetchOperationsLog(ctx context.Context) ([]db_models.Operation, error) {
	var ops []db_models.Operation
	if err := c.generateJSON(ctx, OperationsLogPrompt, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func (c *GeminiContentClient) FetchDashboardSummary(ctx context.Context) (*db_models.DashboardSummary, error) {
	var summary db_models.DashboardSummary
	if err := c.generateJSON(ctx, DashboardSummaryPrompt, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *GeminiContentClient) FetchServerStatus(ctx context.Context) (db_models.ServerStatusValue, error) {
	raw, err := c.generateText(ctx, ServerStatusPrompt)
	if err != nil {
		return "", err
	}
	status, ok := ParseServerStatus(raw)
	if !ok {
		return "", fmt.Errorf("gemini: unrecognized server status %q", raw)
	}
	return status, nil
}

func (c *GeminiContentClient) GenerateShipBlurb(ctx context.Context, model string, role string) string {
	blurb, err := c.generateText(ctx, ShipBlurbPrompt(model, role))
	if err != nil || blurb == "" {
		log.Printf("Ship blurb generation failed, using fallback: %v", err)
		return FallbackShipBlurb
	}
	return blurb
}

func (c *GeminiContentClient) GenerateChatReply(ctx context.Context, tail []db_models.ChatMessage, roster []db_models.Member, localCallsign string) (*db_models.ChatMessage, error) {
	author := PickReplyAuthor(roster, localCallsign)
	if author == nil {
		return nil, nil
	}

	text, err := c.generateText(ctx, ChatReplyPrompt(author.Callsign, localCallsign, TranscriptTail(tail, 5)))
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	return &db_models.ChatMessage{
		Callsign:  author.Callsign,
		Message:   text,
		IsUser:    false,
		Timestamp: DisplayTimestamp(time.Now()),
		AvatarURL: author.AvatarURL,
	}, nil
}

func (c *GeminiContentClient) SearchMediaClips(ctx context.Context, query string) ([]string, error) {
	var urls []string
	if err := c.generateJSON(ctx, MediaClipsPrompt(query), &urls); err != nil {
		return nil, err
	}
	return urls, nil
}
