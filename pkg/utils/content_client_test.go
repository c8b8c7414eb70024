package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atchub/internal/models/db_models"
)

func TestParseServerStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want db_models.ServerStatusValue
		ok   bool
	}{
		{"operational", db_models.ServerOperational, true},
		{"  Operational \n", db_models.ServerOperational, true},
		{"the status is: degraded_performance today", db_models.ServerDegraded, true},
		{"major_outage", db_models.ServerMajorOutage, true},
		{"everything is fine", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseServerStatus(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw: %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw: %q", tc.raw)
	}
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
	assert.Equal(t, `[1,2]`, StripCodeFences("  [1,2]  "))
}

func TestTranscriptTail_KeepsLastNAndRendersGifs(t *testing.T) {
	tail := []db_models.ChatMessage{
		{Callsign: "Recker", Message: "first"},
		{Callsign: "Nova", Message: "second"},
		{Callsign: "Recker", GifURL: "https://example.com/o7.gif"},
	}

	rendered := TranscriptTail(tail, 2)
	assert.Equal(t, "Nova: second\nRecker: [sent a GIF]", rendered)

	assert.Equal(t, "Recker: first\nNova: second\nRecker: [sent a GIF]", TranscriptTail(tail, 10))
}

func TestPickReplyAuthor_ExcludesLocalCallsign(t *testing.T) {
	roster := []db_models.Member{
		{Callsign: "Recker"},
		{Callsign: "Nova"},
	}

	for i := 0; i < 20; i++ {
		picked := PickReplyAuthor(roster, "Recker")
		require.NotNil(t, picked)
		assert.Equal(t, "Nova", picked.Callsign)
	}

	assert.Nil(t, PickReplyAuthor([]db_models.Member{{Callsign: "Recker"}}, "Recker"))
	assert.Nil(t, PickReplyAuthor(nil, "Recker"))
}

func TestPlaceholderURLs(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/Recker/100/100", AvatarURLFor("Recker"))
	assert.Equal(t, "https://picsum.photos/seed/Aegis-Hammerhead/400/200", ShipImageURLFor("Aegis Hammerhead"))
}

func TestSystemFallbackReply(t *testing.T) {
	reply := SystemFallbackReply()
	assert.Equal(t, "System", reply.Callsign)
	assert.False(t, reply.IsUser)
	assert.NotEmpty(t, reply.Message)
}
