package intent

import (
	"regexp"
	"strings"
)

var quotedNamePattern = regexp.MustCompile(`["']([^"']+)["']`)

// typeMapping is walked in order; the first matching entry wins.
type typeMapping struct {
	pattern       *regexp.Regexp
	processorType string
}

var processorTypeMappings = []typeMapping{
	{regexp.MustCompile(`(?i)getfile|get\s+file`), "org.apache.nifi.processors.standard.GetFile"},
	{regexp.MustCompile(`(?i)putfile|put\s+file`), "org.apache.nifi.processors.standard.PutFile"},
	{regexp.MustCompile(`(?i)gethttp|get\s+http`), "org.apache.nifi.processors.standard.GetHTTP"},
	{regexp.MustCompile(`(?i)puthttp|put\s+http`), "org.apache.nifi.processors.standard.PutHTTP"},
	{regexp.MustCompile(`(?i)kafka.*consume|consume.*kafka`), "org.apache.nifi.processors.kafka.pubsub.ConsumeKafka_2_6"},
	{regexp.MustCompile(`(?i)kafka.*publish|publish.*kafka`), "org.apache.nifi.processors.kafka.pubsub.PublishKafka_2_6"},
	{regexp.MustCompile(`(?i)jolt|transform.*json`), "org.apache.nifi.processors.standard.JoltTransformJSON"},
	{regexp.MustCompile(`(?i)route.*attribute`), "org.apache.nifi.processors.standard.RouteOnAttribute"},
}

var searchTermPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)search\s+for\s+(.+)`),
	regexp.MustCompile(`(?i)find\s+(.+)`),
	regexp.MustCompile(`(?i)look\s+for\s+(.+)`),
}

var groupReferencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)in\s+(?:the\s+)?(.+?)\s+(?:process\s+)?group`),
	regexp.MustCompile(`(?i)(?:process\s+)?group\s+(?:called\s+|named\s+)?(.+)`),
}

// reservedGroupNames are group references that mean "the default group"
// rather than a named one.
var reservedGroupNames = map[string]struct{}{
	"root":    {},
	"main":    {},
	"default": {},
}

// extractParameters pulls structured fields out of the raw query.
// Matching is case-insensitive and captured values keep their original
// casing. Extraction order matters: the quoted-name step runs first and the
// group-reference heuristic last, so a group reference overwrites a quoted
// group name when both are present.
func extractParameters(query string, it Intent) Parameters {
	params := NewParameters()

	// Names in quotes, assigned by the winning intent's semantic category.
	if m := quotedNamePattern.FindStringSubmatch(query); m != nil {
		name := m[1]
		switch it {
		case IntentCreateProcessGroup, IntentStartProcessGroup, IntentStopProcessGroup:
			params.ProcessGroupName = name
		case IntentCreateProcessor, IntentStartProcessor, IntentStopProcessor:
			params.ProcessorName = name
		case IntentCreateTemplate, IntentInstantiateTemplate:
			params.TemplateName = name
		}
	}

	for _, mapping := range processorTypeMappings {
		if mapping.pattern.MatchString(query) {
			params.ProcessorType = mapping.processorType
			break
		}
	}

	if it == IntentSearchComponents {
		for _, pattern := range searchTermPatterns {
			if m := pattern.FindStringSubmatch(query); m != nil {
				params.SearchQuery = strings.TrimSpace(m[1])
				break
			}
		}
	}

	// Group references run independently of intent. The first matching
	// pattern ends the walk even when its captured name is reserved.
	for _, pattern := range groupReferencePatterns {
		if m := pattern.FindStringSubmatch(query); m != nil {
			name := strings.Trim(strings.TrimSpace(m[1]), `"'`)
			if _, reserved := reservedGroupNames[strings.ToLower(name)]; !reserved {
				params.ProcessGroupName = name
			}
			break
		}
	}

	return params
}
