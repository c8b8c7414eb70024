package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"atchub/internal/models/db_models"
)

// OpenAIContentClient implements ContentClientInterface using OpenAI chat models.
type OpenAIContentClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIContentClient(apiKey, model string) ContentClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIContentClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIContentClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// completeJSON asks for a JSON answer and unmarshals it into out. OpenAI's
// JSON response mode rejects top-level arrays, so fenced plain completions
// are stripped and validated instead.
func (c *OpenAIContentClient) completeJSON(ctx context.Context, prompt string, out interface{}) error {
	content, err := c.complete(ctx, prompt)
	if err != nil {
		return err
	}
	content = StripCodeFences(content)
	if !json.Valid([]byte(content)) {
		return fmt.Errorf("openai: not valid json")
	}
	return json.Unmarshal([]byte(content), out)
}

func (c *OpenAIContentClient) FetchFleetCatalogue(ctx context.Context) ([]db_models.FleetShip, error) {
	var ships []db_models.FleetShip
	if err := c.completeJSON(ctx, FleetCataloguePrompt, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

func (c *OpenAIContentClient) FetchMemberDirectory(ctx context.Context) ([]db_models.Member, error) {
	var members []db_models.Member
	if err := c.completeJSON(ctx, MemberDirectoryPrompt, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *OpenAIContentClient) FetchOperationsLog(ctx context.Context) ([]db_models.Operation, error) {
	var ops []db_models.Operation
	if err := c.completeJSON(ctx, OperationsLogPrompt, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func (c *OpenAIContentClient) FetchDashboardSummary(ctx context.Context) (*db_models.DashboardSummary, error) {
	var summary db_models.DashboardSummary
	if err := c.completeJSON(ctx, DashboardSummaryPrompt, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *OpenAIContentClient) FetchServerStatus(ctx context.Context) (db_models.ServerStatusValue, error) {
	raw, err := c.complete(ctx, ServerStatusPrompt)
	if err != nil {
		return "", err
	}
	status, ok := ParseServerStatus(raw)
	if !ok {
		return "", fmt.Errorf("openai: unrecognized server status %q", raw)
	}
	return status, nil
}

func (c *OpenAIContentClient) GenerateShipBlurb(ctx context.Context, model string, role string) string {
	blurb, err := c.complete(ctx, ShipBlurbPrompt(model, role))
	if err != nil || blurb == "" {
		log.Printf("Ship blurb generation failed, using fallback: %v", err)
		return FallbackShipBlurb
	}
	return blurb
}

func (c *OpenAIContentClient) GenerateChatReply(ctx context.Context, tail []db_models.ChatMessage, roster []db_models.Member, localCallsign string) (*db_models.ChatMessage, error) {
	author := PickReplyAuthor(roster, localCallsign)
	if author == nil {
		return nil, nil
	}

	text, err := c.complete(ctx, ChatReplyPrompt(author.Callsign, localCallsign, TranscriptTail(tail, 5)))
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

func (c *OpenAIContentClient) SearchMediaClips(ctx context.Context, query string) ([]string, error) {
	var urls []string
	if err := c.completeJSON(ctx, MediaClipsPrompt(query), &urls); err != nil {
		return nil, err
	}
	return urls, nil
}
