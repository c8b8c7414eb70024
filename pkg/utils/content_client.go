package utils

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"atchub/internal/models/db_models"
)

// FallbackShipBlurb is returned whenever blurb generation fails; enrichment
// must never block or fail the ship insert.
const FallbackShipBlurb = "A versatile vessel ready for a variety of tasks."

// ContentClientInterface is the generative content provider behind every
// screen that shows synthesized org data. Implementations must treat the
// passed context's deadline as the overall call budget.
type ContentClientInterface interface {
	FetchFleetCatalogue(ctx context.Context) ([]db_models.FleetShip, error)
	FetchMemberDirectory(ctx context.Context) ([]db_models.Member, error)
	FetchOperationsLog(ctx context.Context) ([]db_models.Operation, error)
	FetchDashboardSummary(ctx context.Context) (*db_models.DashboardSummary, error)
	FetchServerStatus(ctx context.Context) (db_models.ServerStatusValue, error)
	// GenerateShipBlurb never fails: on provider error it returns FallbackShipBlurb.
	GenerateShipBlurb(ctx context.Context, model string, role string) string
	// GenerateChatReply returns (nil, nil) when no roster member other than
	// localCallsign exists to speak.
	GenerateChatReply(ctx context.Context, tail []db_models.ChatMessage, roster []db_models.Member, localCallsign string) (*db_models.ChatMessage, error)
	SearchMediaClips(ctx context.Context, query string) ([]string, error)
}

// AvatarURLFor derives the deterministic placeholder avatar for a callsign.
func AvatarURLFor(callsign string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/100/100", callsign)
}

// ShipImageURLFor derives the deterministic placeholder image for a ship model.
func ShipImageURLFor(model string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/200", strings.ReplaceAll(model, " ", "-"))
}

// DisplayTimestamp is the transcript display form of a send time.
func DisplayTimestamp(t time.Time) string {
	return t.Format("15:04")
}

// SystemFallbackReply is appended to the transcript when reply generation fails.
func SystemFallbackReply() *db_models.ChatMessage {
	return &db_models.ChatMessage{
		Callsign:  "System",
		Message:   "Sorry, comms are scrambled right now. Try again later.",
		IsUser:    false,
		Timestamp: DisplayTimestamp(time.Now()),
		AvatarURL: AvatarURLFor("System"),
	}
}

// PickReplyAuthor selects a uniformly random roster member other than the
// local callsign, or nil when none exists.
func PickReplyAuthor(roster []db_models.Member, localCallsign string) *db_models.Member {
	others := make([]db_models.Member, 0, len(roster))
	for _, m := range roster {
		if m.Callsign != localCallsign {
			others = append(others, m)
		}
	}
	if len(others) == 0 {
		return nil
	}
	picked := others[rand.Intn(len(others))]
	return &picked
}

// TranscriptTail renders the last n transcript messages as prompt context.
func TranscriptTail(tail []db_models.ChatMessage, n int) string {
	if len(tail) > n {
		tail = tail[len(tail)-n:]
	}
	lines := make([]string, 0, len(tail))
	for _, msg := range tail {
		if msg.GifURL != "" {
			lines = append(lines, fmt.Sprintf("%s: [sent a GIF]", msg.Callsign))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Callsign, msg.Message))
	}
	return strings.Join(lines, "\n")
}

// ParseServerStatus maps raw provider text onto a known status keyword.
// Exact match is preferred; otherwise the first keyword contained in the
// response wins, tolerating providers that pad the answer with prose.
func ParseServerStatus(raw string) (db_models.ServerStatusValue, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	for _, status := range db_models.KnownServerStatuses() {
		if text == string(status) {
			return status, true
		}
	}
	for _, status := range db_models.KnownServerStatuses() {
		if strings.Contains(text, string(status)) {
			return status, true
		}
	}
	return "", false
}

// StripCodeFences removes a markdown ```json fence if the model wrapped its
// JSON answer in one.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```json")
		out = strings.TrimPrefix(out, "```")
		if idx := strings.LastIndex(out, "```"); idx >= 0 {
			out = out[:idx]
		}
	}
	return strings.TrimSpace(out)
}

// Prompt texts shared by all providers.

const FleetCataloguePrompt = `Generate a list of 10 ships for a Star Citizen organization's fleet.
Include ship name, model (e.g., Aegis Hammerhead, Anvil Carrack), role (Capital, Explorer, Fighter, Industrial, Support),
status (In Service, Under Repair, On Mission), and a short, one-sentence description of its primary function or capabilities.
Use https://picsum.photos/seed/{model-with-dashes}/400/200 as imageUrl.
Return a JSON array only, no markdown. Each element must match exactly:
{"name":"string","model":"string","role":"Capital|Explorer|Fighter|Industrial|Support","status":"In Service|Under Repair|On Mission","imageUrl":"string","description":"string"}`

const MemberDirectoryPrompt = `Generate a list of 15 diverse members for a Star Citizen organization.
Include callsign, a realistic real name, a list of 1-3 primary roles (e.g., Pilot, Gunner, Medic, Engineer, Miner, Trader),
status (Online/Offline), and a preferred contact method (like a Discord handle, e.g., 'User#1234').
Use https://picsum.photos/seed/{callsign}/100/100 as avatarUrl.
Return a JSON array only, no markdown. Each element must match exactly:
{"callsign":"string","realName":"string","primaryRoles":["string"],"status":"Online|Offline","avatarUrl":"string","preferredContact":"string"}`

const OperationsLogPrompt = `Generate a list of 5 recent or current operations for a Star Citizen organization.
Include operation name, a brief objective, status (Active, Completed, Planned), and a list of 3-4 key personnel callsigns.
Return a JSON array only, no markdown. Each element must match exactly:
{"name":"string","objective":"string","status":"Active|Completed|Planned","keyPersonnel":["string"]}`

const DashboardSummaryPrompt = `Generate dashboard data for a Star Citizen gaming organization named 'ATC'.
- The announcement should be about a new capital ship acquisition.
- Stats should be realistic for a medium-sized org.
- The upcoming event should be a combat operation with a date formatted as 'YYYY-MM-DD HH:MM UEE'.
Return a JSON object only, no markdown, matching exactly:
{"announcement":{"title":"string","content":"string"},"stats":{"totalMembers":0,"totalShips":0,"activeOperations":0},"upcomingEvent":{"title":"string","description":"string","date":"string"}}`

const ServerStatusPrompt = `What is the current live server status for the game Star Citizen?
The status will be one of the following keywords: 'operational', 'degraded_performance', 'partial_outage', 'major_outage', or 'under_maintenance'.
Respond with only the single status keyword in lowercase. Do not add any explanation or other text.`

func ShipBlurbPrompt(model, role string) string {
	return fmt.Sprintf(`Generate a brief, one-sentence marketing description for a Star Citizen ship with the model %q intended for a %q role.`, model, role)
}

func ChatReplyPrompt(authorCallsign, localCallsign, history string) string {
	return fmt.Sprintf(`You are a member of a Star Citizen gaming organization called ATC. Your callsign is %q.
The following is a chat conversation with another member, %q.
Keep your response brief, in-character, and relevant to the conversation and the world of Star Citizen.
If the last message was a GIF, react to it appropriately.
Do not break character. Do not use your real name. Behave like a gamer talking to a friend in their org.

Conversation History:
%s

%s:`, authorCallsign, localCallsign, history, authorCallsign)
}

func MediaClipsPrompt(query string) string {
	return fmt.Sprintf(`Generate a list of 12 diverse, high-quality GIF URLs from a public source like Giphy or Tenor related to the search term: %q.
The URLs must be direct links to the GIF file (e.g., ending in .gif).
Return a JSON array of URL strings only, no markdown.`, query)
}
