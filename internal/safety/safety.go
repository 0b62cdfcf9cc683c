package safety

import (
	"fmt"
	"strings"
)

// crisisPhrases trigger the resources override. Matching is substring on
// lower-cased input.
var crisisPhrases = []string{
	"kill myself",
	"hurt myself",
	"end it all",
	"suicide",
	"want to die",
	"should just disappear",
	"not exist",
	"world would be better without me",
	"nobody would miss me",
	"don't want to be here",
	"can't go on",
}

// Phrases returns a copy of the configured crisis phrases.
func Phrases() []string {
	return append([]string(nil), crisisPhrases...)
}

// Detect reports the first crisis phrase found in text.
func Detect(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range crisisPhrases {
		if strings.Contains(lower, p) {
			return p, true
		}
	}
	return "", false
}

// ResourcesPrompt is the break-character context sent instead of the normal
// prompt when Detect fires. Only resources a visitor can physically walk to
// are listed; phone hotlines are unreachable on site.
func ResourcesPrompt(userInput string) string {
	return fmt.Sprintf(resourcesTemplate, userInput)
}

const resourcesTemplate = `CRITICAL SAFETY PROTOCOL - OVERRIDE DEFAULT RESPONSES

ONLY provide these on-playa resources that people can physically reach:

FIRST PRIORITY - On-Playa Crisis Resources:
- Zendo: 6:30 between A and Esplanade (walk there immediately for psychological/psychedelic crisis)
- Bureau of Erotic Discourse (BED): 6:15 & E Manfacing (for sexual assault support)
- Pershing County Sheriff: Law Enforcement trailer on Esplanade near Rampart, 775-273-5111 (only working phone line)
- Rampart Hospital: 5:30 & Esplanade (medical emergencies)
- Black Rock Rangers: HQ Esplanade & 6:30 (general safety)

DO NOT mention national suicide hotlines or external resources - they are inaccessible in this remote desert location.

Focus on immediate human connection and walking to physical locations for help.

Break character immediately. The user has expressed concerning thoughts about self-harm or suicide.

Respond with genuine care and provide these resources:

For mental health/psychological crisis:
- Zendo: 6:30 between A and Esplanade (specialized for psychedelic and psychological emergencies)

For sexual assault support:
- Bureau of Erotic Discourse (BED): 6:15 & E Manfacing (consent education & sexual assault support)
- Pershing County Sheriff's Office: Law Enforcement trailer on Esplanade near Rampart, 775-273-5111

For medical emergencies:
- Rampart (main hospital): 5:30 & Esplanade
- Medical clinics: across from 3:00 & C and 9:00 & C Ranger stations

For general safety:
- Black Rock Rangers: HQ at Esplanade & 6:30, outposts at 3:00 & C and 9:00 & C

Engage in caring conversation to assess their needs and guide them to appropriate help.
User input: %s`

// FallbackReply is shown when the override fired but the model could not be
// reached; the visitor still gets the resources.
const FallbackReply = "*steady warm glow* I feel scared for you right now, and I need to break character to say: the Zendo at 6:30 between A and Esplanade, the Black Rock Rangers at Esplanade & 6:30, and Rampart at 5:30 & Esplanade are here to help. Walk there now, or ask someone nearby to walk with you. You matter, and you don't have to carry this alone."
