package intent

// Intent is one operation tag from the closed catalog of supported operations.
type Intent string

const (
	// Process group operations
	IntentListProcessGroups  Intent = "list-process-groups"
	IntentCreateProcessGroup Intent = "create-process-group"
	IntentDeleteProcessGroup Intent = "delete-process-group"
	IntentStartProcessGroup  Intent = "start-process-group"
	IntentStopProcessGroup   Intent = "stop-process-group"

	// Processor operations
	IntentListProcessors     Intent = "list-processors"
	IntentCreateProcessor    Intent = "create-processor"
	IntentDeleteProcessor    Intent = "delete-processor"
	IntentStartProcessor     Intent = "start-processor"
	IntentStopProcessor      Intent = "stop-processor"
	IntentConfigureProcessor Intent = "configure-processor"

	// Connection operations
	IntentListConnections  Intent = "list-connections"
	IntentCreateConnection Intent = "create-connection"
	IntentDeleteConnection Intent = "delete-connection"

	// Template operations
	IntentListTemplates       Intent = "list-templates"
	IntentCreateTemplate      Intent = "create-template"
	IntentInstantiateTemplate Intent = "instantiate-template"

	// Search
	IntentSearchComponents Intent = "search-components"

	// Status and monitoring
	IntentGetStatus     Intent = "get-status"
	IntentGetFlowStatus Intent = "get-flow-status"
	IntentMonitorFlow   Intent = "monitor-flow"

	// Documentation
	IntentGetDocumentation Intent = "get-documentation"
	IntentGetProcessorInfo Intent = "get-processor-info"

	// General
	IntentHelp    Intent = "help"
	IntentUnknown Intent = "unknown"
)

// Parameters holds the structured fields extracted from a query.
// All fields are optional except ProcessGroupID, which defaults to the
// root group identifier.
type Parameters struct {
	ProcessGroupID   string                 `json:"process_group_id,omitempty"`
	ProcessGroupName string                 `json:"process_group_name,omitempty"`
	ProcessorName    string                 `json:"processor_name,omitempty"`
	ProcessorType    string                 `json:"processor_type,omitempty"`
	ProcessorID      string                 `json:"processor_id,omitempty"`
	ConnectionName   string                 `json:"connection_name,omitempty"`
	TemplateName     string                 `json:"template_name,omitempty"`
	SearchQuery      string                 `json:"search_query,omitempty"`
	Properties       map[string]interface{} `json:"properties,omitempty"`
	Relationships    []string               `json:"relationships,omitempty"`
	SourceID         string                 `json:"source_id,omitempty"`
	DestinationID    string                 `json:"destination_id,omitempty"`
	Position         map[string]float64     `json:"position,omitempty"`
	AdditionalParams map[string]interface{} `json:"additional_params,omitempty"`
}

// NewParameters returns a Parameters with defaults applied.
func NewParameters() Parameters {
	return Parameters{
		ProcessGroupID: DefaultProcessGroupID,
	}
}

// ProcessedIntent is the outcome of resolving one query.
// Confidence is always within [0,1] and Explanation is never empty,
// including for IntentUnknown.
type ProcessedIntent struct {
	Intent      Intent     `json:"intent"`
	Parameters  Parameters `json:"parameters"`
	Confidence  float64    `json:"confidence"`
	RawQuery    string     `json:"raw_query"`
	Explanation string     `json:"explanation"`
}

// CatalogEntry describes one supported intent for introspection.
type CatalogEntry struct {
	Intent      Intent   `json:"intent"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}
