package services

import (
	"strings"

	"doppelx/models"
)

// keyword-triggered canned replies, checked in order; the first category
// whose keyword appears in the message wins.
var cannedResponses = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"pomodoro", "timer"},
		reply: `The Pomodoro Technique is excellent for focused study sessions. Here's how it works:
- Study for 25 minutes
- Take a 5-minute break
- Repeat 4 times, then take a longer 15-30 minute break

This technique helps maintain focus and prevents burnout. You can use the "Study With Me" section in the app to try it out!`,
	},
	{
		keywords: []string{"memory", "remember"},
		reply: `For better memory retention, try these techniques:
1. Spaced Repetition: Review material at increasing intervals (1 day, 3 days, 1 week)
2. Active Recall: Test yourself instead of re-reading
3. Elaboration: Connect new information to what you already know
4. Visualization: Create mental images of concepts

These techniques are proven to improve long-term retention significantly.`,
	},
	{
		keywords: []string{"schedule", "time"},
		reply: `To create an effective study schedule:
1. Identify your peak focus hours (morning, afternoon, or evening)
2. Schedule difficult subjects during peak hours
3. Use the Scheduler section to plan your day
4. Include regular breaks (every 25-30 minutes)
5. Aim for 4-6 hours of focused study per day

The Digital Doppelgänger can analyze your schedule and suggest optimizations!`,
	},
	{
		keywords: []string{"focus", "concentrate"},
		reply: `To improve focus:
1. Eliminate distractions (phone, social media)
2. Use the Pomodoro Technique
3. Create a dedicated study space
4. Get adequate sleep (7-8 hours)
5. Stay hydrated and eat healthy snacks
6. Take regular breaks to recharge

The "Study With Me" section has timers to help you stay focused!`,
	},
	{
		keywords: []string{"technique", "method"},
		reply: `Here are some proven study techniques:
1. Pomodoro Technique: 25-min focused sessions
2. Feynman Technique: Explain concepts simply
3. Active Recall: Test yourself regularly
4. Spaced Repetition: Review at intervals
5. Mind Mapping: Visual organization
6. Interleaving: Mix different subjects

Check the Digital Doppelgänger section to see which techniques work best for you!`,
	},
}

const fallbackResponse = `I'm here to help with your study questions! I can provide advice on:
- Study techniques (Pomodoro, Spaced Repetition, Active Recall)
- Time management and scheduling
- Focus and concentration tips
- Memory improvement strategies
- Exam preparation

What specific area would you like help with?`

// CannedResponse picks the built-in reply for a user message.
func CannedResponse(message string) string {
	lower := strings.ToLower(message)
	for _, candidate := range cannedResponses {
		for _, keyword := range candidate.keywords {
			if strings.Contains(lower, keyword) {
				return candidate.reply
			}
		}
	}
	return fallbackResponse
}

var referenceLinks = []struct {
	phrase string
	link   models.ChatLink
}{
	{"pomodoro", models.ChatLink{Title: "Pomodoro Technique - Wikipedia", URL: "https://en.wikipedia.org/wiki/Pomodoro_Technique"}},
	{"spaced repetition", models.ChatLink{Title: "Spaced Repetition - Research", URL: "https://en.wikipedia.org/wiki/Spaced_repetition"}},
	{"active recall", models.ChatLink{Title: "Active Recall Study Method", URL: "https://www.usa.edu/blog/active-recall-study-method/"}},
}

// ExtractLinks scans the user's raw message for phrases worth a reference
// link. Matches are independent; a message can earn several links.
func ExtractLinks(message string) []models.ChatLink {
	lower := strings.ToLower(message)
	links := []models.ChatLink{}
	for _, ref := range referenceLinks {
		if strings.Contains(lower, ref.phrase) {
			links = append(links, ref.link)
		}
	}
	return links
}
