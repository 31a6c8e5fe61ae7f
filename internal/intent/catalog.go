package intent

import (
	"regexp"
	"strings"
)

// catalogIntent couples one intent with its ordered match patterns.
// Catalog iteration order is significant: when two intents score equally
// the earlier entry wins.
type catalogIntent struct {
	intent   Intent
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// catalog enumerates every intent that the pattern matcher can score.
// Intents with no reliable textual signature (delete-processor,
// configure-processor, delete-connection) are reachable through the
// classifier only.
var catalog = []catalogIntent{
	// Process group operations
	{IntentListProcessGroups, compileAll(
		`list.*process\s*groups?`,
		`show.*process\s*groups?`,
		`get.*process\s*groups?`,
		`what.*process\s*groups?`,
	)},
	{IntentCreateProcessGroup, compileAll(
		`create.*process\s*group`,
		`make.*process\s*group`,
		`add.*process\s*group`,
		`new.*process\s*group`,
	)},
	{IntentDeleteProcessGroup, compileAll(
		`delete.*process\s*group`,
		`remove.*process\s*group`,
		`drop.*process\s*group`,
	)},
	{IntentStartProcessGroup, compileAll(
		`start.*process\s*group`,
		`run.*process\s*group`,
		`begin.*process\s*group`,
	)},
	{IntentStopProcessGroup, compileAll(
		`stop.*process\s*group`,
		`halt.*process\s*group`,
		`pause.*process\s*group`,
	)},

	// Processor operations
	{IntentListProcessors, compileAll(
		`list.*processors?`,
		`show.*processors?`,
		`get.*processors?`,
		`what.*processors?`,
	)},
	{IntentCreateProcessor, compileAll(
		`create.*processor`,
		`make.*processor`,
		`add.*processor`,
		`new.*processor`,
	)},
	{IntentStartProcessor, compileAll(
		`start.*processor`,
		`run.*processor`,
		`begin.*processor`,
	)},
	{IntentStopProcessor, compileAll(
		`stop.*processor`,
		`halt.*processor`,
		`pause.*processor`,
	)},

	// Connection operations
	{IntentListConnections, compileAll(
		`list.*connections?`,
		`show.*connections?`,
		`get.*connections?`,
	)},
	{IntentCreateConnection, compileAll(
		`create.*connection`,
		`connect.*`,
		`link.*`,
	)},

	// Template operations
	{IntentListTemplates, compileAll(
		`list.*templates?`,
		`show.*templates?`,
		`get.*templates?`,
	)},
	{IntentCreateTemplate, compileAll(
		`create.*template`,
		`make.*template`,
		`save.*template`,
	)},
	{IntentInstantiateTemplate, compileAll(
		`instantiate.*template`,
		`use.*template`,
		`apply.*template`,
	)},

	// Search
	{IntentSearchComponents, compileAll(
		`search.*`,
		`find.*`,
		`look\s+for.*`,
	)},

	// Status and monitoring
	{IntentGetStatus, compileAll(
		`status`,
		`health`,
		`how.*doing`,
		`what.*status`,
	)},
	{IntentGetFlowStatus, compileAll(
		`flow.*status`,
		`pipeline.*status`,
		`dataflow.*status`,
	)},
	{IntentMonitorFlow, compileAll(
		`monitor.*flow`,
		`watch.*flow`,
		`track.*flow`,
	)},

	// Documentation
	{IntentGetDocumentation, compileAll(
		`help.*`,
		`documentation.*`,
		`docs.*`,
		`how.*use`,
		`what.*is`,
	)},
	{IntentGetProcessorInfo, compileAll(
		`.*processor.*info`,
		`.*processor.*documentation`,
		`what.*does.*processor`,
	)},

	// General
	{IntentHelp, compileAll(
		`help`,
		`usage`,
		`commands?`,
		`what.*can.*do`,
	)},
}

// allIntents lists every supported intent tag in catalog order, including
// tags the pattern matcher cannot score.
var allIntents = []Intent{
	IntentListProcessGroups,
	IntentCreateProcessGroup,
	IntentDeleteProcessGroup,
	IntentStartProcessGroup,
	IntentStopProcessGroup,
	IntentListProcessors,
	IntentCreateProcessor,
	IntentDeleteProcessor,
	IntentStartProcessor,
	IntentStopProcessor,
	IntentConfigureProcessor,
	IntentListConnections,
	IntentCreateConnection,
	IntentDeleteConnection,
	IntentListTemplates,
	IntentCreateTemplate,
	IntentInstantiateTemplate,
	IntentSearchComponents,
	IntentGetStatus,
	IntentGetFlowStatus,
	IntentMonitorFlow,
	IntentGetDocumentation,
	IntentGetProcessorInfo,
	IntentHelp,
	IntentUnknown,
}

var intentExamples = map[Intent][]string{
	IntentListProcessGroups: {
		"List all process groups",
		"Show me the process groups",
		"What process groups are available?",
	},
	IntentCreateProcessGroup: {
		"Create a process group called 'Data Processing'",
		"Make a new process group named 'ETL Pipeline'",
		"Add a process group for data transformation",
	},
	IntentListProcessors: {
		"List processors in the main process group",
		"Show me all processors",
		"What processors are running?",
	},
	IntentCreateProcessor: {
		"Create a GetFile processor",
		"Add a new Kafka consumer processor",
		"Make a processor to read files",
	},
	IntentStartProcessor: {
		"Start the GetFile processor",
		"Run all processors in the ETL group",
		"Begin processing data",
	},
	IntentStopProcessor: {
		"Stop the data processing flow",
		"Halt all processors",
		"Pause the ETL pipeline",
	},
	IntentSearchComponents: {
		"Search for GetFile processors",
		"Find all Kafka-related components",
		"Look for processors with 'transform' in the name",
	},
	IntentGetStatus: {
		"What's the status of my flow?",
		"How is NiFi doing?",
		"Show me the system health",
	},
	IntentGetDocumentation: {
		"What is the GetFile processor?",
		"Help me understand how to use RouteOnAttribute",
		"Show documentation for JoltTransformJSON",
	},
}

// SupportedIntents returns every intent tag in catalog order.
func SupportedIntents() []Intent {
	out := make([]Intent, len(allIntents))
	copy(out, allIntents)
	return out
}

// Catalog returns the static introspection view of the intent catalog:
// one entry per supported tag with a description and example queries.
func Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(allIntents))
	for _, it := range allIntents {
		entries = append(entries, CatalogEntry{
			Intent:      it,
			Description: describe(it),
			Examples:    intentExamples[it],
		})
	}
	return entries
}

func describe(it Intent) string {
	words := strings.Split(string(it), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
