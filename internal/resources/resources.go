// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package resources holds the bundled support content: comfort messages,
// coping tips, helpline contacts, and crisis phrase patterns.
package resources

import (
	"regexp"
	"strings"
)

// =============================================================================
// COMFORT MESSAGES
// =============================================================================

// ComfortMessages is the fixed ordered list the landing rotator cycles
// through. Order matters: "reset" always returns to the first entry.
var ComfortMessages = []string{
	"You don't have to carry this alone.",
	"It's okay to not be okay today.",
	"Small steps still count as moving forward.",
	"Your feelings are valid, whatever they are.",
	"Breathe. This moment will pass.",
	"Asking for help is a sign of strength.",
	"You've made it through every hard day so far.",
}

// =============================================================================
// COPING TIPS
// =============================================================================

// Tip is one entry in the resources overlay.
type Tip struct {
	Title string
	Body  string
}

// CopingTips is the static tip list shown in the resources overlay.
// No remote fetch; all content ships with the binary.
var CopingTips = []Tip{
	{
		Title: "Box breathing",
		Body:  "Breathe in for 4 counts, hold for 4, out for 4, hold for 4. Repeat four times.",
	},
	{
		Title: "5-4-3-2-1 grounding",
		Body:  "Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste.",
	},
	{
		Title: "One small action",
		Body:  "Pick one tiny thing - a glass of water, a short walk, opening a window - and do just that.",
	},
	{
		Title: "Reach out",
		Body:  "Message one person you trust. You don't need the right words; \"today is hard\" is enough.",
	},
}

// =============================================================================
// HELPLINES
// =============================================================================

// helplines maps country codes to helpline contact strings.
// Mirrors the backend's table so the overlay works offline.
var helplines = map[string]string{
	"IN": "+91-8888817666",
	"US": "988 / 1-800-273-8255",
	"UK": "Samaritans / 116 123",
}

// defaultHelplineCountry is used when the configured country is unknown.
const defaultHelplineCountry = "US"

// Helpline returns the helpline contact for a country code, falling back
// to the US entry for unknown codes.
func Helpline(countryCode string) string {
	if line, ok := helplines[strings.ToUpper(countryCode)]; ok {
		return line
	}
	return helplines[defaultHelplineCountry]
}

// Helplines returns all bundled helpline entries as country/contact pairs,
// in a stable order for display.
func Helplines() [][2]string {
	return [][2]string{
		{"IN", helplines["IN"]},
		{"US", helplines["US"]},
		{"UK", helplines["UK"]},
	}
}

// =============================================================================
// CRISIS DETECTION
// =============================================================================

// crisisPatterns match phrases that indicate the user may be in crisis.
// Same patterns the backend pre-checks; applied locally so the UI can
// surface a helpline even when the backend is unreachable.
var crisisPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bkill myself\b`),
	regexp.MustCompile(`(?i)\bi want to die\b`),
	regexp.MustCompile(`(?i)\bsuicid(e|al)?\b`),
	regexp.MustCompile(`(?i)\bi can't go on\b`),
	regexp.MustCompile(`(?i)\bending it all\b`),
	regexp.MustCompile(`(?i)\bwant to end my life\b`),
}

// DetectCrisis reports whether the text matches any crisis phrase.
func DetectCrisis(text string) bool {
	if text == "" {
		return false
	}
	for _, rgx := range crisisPatterns {
		if rgx.MatchString(text) {
			return true
		}
	}
	return false
}

// =============================================================================
// LANDING COPY
// =============================================================================

// Tagline is the one-line description shown on the landing view.
const Tagline = "A private, supportive companion for heavy days."

// LandingCopy is the static informational text on the landing view.
var LandingCopy = []string{
	"Empath listens without judgment and never diagnoses.",
	"Conversations stay on this device until you send a message.",
	"Guided stories: \"A quiet morning\", \"After the storm\", \"Small victories\".",
}
