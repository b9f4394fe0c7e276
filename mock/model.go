package mock_generator

import "encoding/json"

// MockAnswer is one canned model answer. Delay is in milliseconds.
type MockAnswer struct {
	Answer json.RawMessage `json:"answer"`
	Delay  int             `json:"delay"`
}

const defaultTranscript = "In this video we set up a home media server step by step. " +
	"First install the server package, then open the dashboard on port 8096 and add your library folders. " +
	"If the library scan stalls, check the folder permissions and restart the service."

var defaultAnswers = map[string]string{
	"specific_details":   `{"subject":"Home media server","key_details":["Dashboard on port 8096","Library folders added from the dashboard"],"steps":["Install the server package","Open the dashboard","Add library folders"]}`,
	"topic_keyword":      `{"topic":"Setting up a home media server","primary_keyword":"home media server setup","secondary_keywords":["media server dashboard","media library scan"],"search_intent":"informational"}`,
	"intro":              `{"heading":"Introduction","content":"Want every movie you own on every screen at home? A home media server setup takes less than an hour."}`,
	"refine_intro":       `{"heading":"Introduction","content":"A home media server setup puts your whole library on every screen in under an hour. Here is how."}`,
	"guide":              `{"heading":"Step-by-step guide","content":"1. Install the server package.\n2. Open the dashboard on port 8096.\n3. Add your library folders."}`,
	"issue_troubleshoot": `{"heading":"Troubleshooting","content":"If the library scan stalls, check folder permissions and restart the service."}`,
	"conclusion":         `{"heading":"Conclusion","content":"Your home media server setup is done and your library is ready to stream."}`,
	"cta":                `{"heading":"Next steps","content":"Share your setup in the comments."}`,
	"customization_tips": `{"heading":"Customization tips","content":"Add separate libraries for kids and enable hardware transcoding if your CPU supports it."}`,
	"domain_aligned":     `{"heading":"Get more from your server","content":"Browse our guides for more home server projects."}`,
	"rewrite_blog":       `{"Title":"Home Media Server Setup in Under an Hour","Polished_Blog":"# Home Media Server Setup in Under an Hour\n\nA home media server setup puts your whole library on every screen."}`,
}
