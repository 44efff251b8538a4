package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCannedResponse(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"pomodoro keyword", "tell me about the pomodoro technique", "Pomodoro Technique is excellent"},
		{"timer keyword", "how do I set a Timer?", "Pomodoro Technique is excellent"},
		{"memory keyword", "any tips for memory?", "memory retention"},
		{"schedule keyword", "help me build a schedule", "effective study schedule"},
		{"focus keyword", "I can't focus today", "To improve focus"},
		{"technique keyword", "what study technique should I use", "proven study techniques"},
		{"no keyword", "hello there", "What specific area would you like help with?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := CannedResponse(tt.message)
			require.Contains(t, reply, tt.contains)
		})
	}
}

func TestCannedResponsePriorityOrder(t *testing.T) {
	// pomodoro is checked before memory
	reply := CannedResponse("does pomodoro help my memory?")
	require.Contains(t, reply, "Pomodoro Technique is excellent")
	require.NotContains(t, reply, "memory retention")
}

func TestExtractLinks(t *testing.T) {
	links := ExtractLinks("I want to try the Pomodoro method")
	require.Len(t, links, 1)
	require.Equal(t, "Pomodoro Technique - Wikipedia", links[0].Title)
	require.Equal(t, "https://en.wikipedia.org/wiki/Pomodoro_Technique", links[0].URL)
}

func TestExtractLinksIndependent(t *testing.T) {
	links := ExtractLinks("compare spaced repetition with active recall and pomodoro")
	require.Len(t, links, 3)

	titles := make([]string, 0, len(links))
	for _, l := range links {
		titles = append(titles, l.Title)
	}
	require.Contains(t, strings.Join(titles, "|"), "Spaced Repetition")
	require.Contains(t, strings.Join(titles, "|"), "Active Recall")
}

func TestExtractLinksNone(t *testing.T) {
	links := ExtractLinks("how is the weather?")
	require.Empty(t, links)
}
