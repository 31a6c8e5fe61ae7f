package dispatch

// Log prefixes
const (
	LogPrefixDispatch = "internal.dispatch.Dispatch"
)

// Validation messages
const (
	ErrMsgNotInitialized        = "NiFi client not initialized"
	ErrMsgGroupNameRequired     = "Process group name is required"
	ErrMsgProcessorTypeRequired = "Processor type is required"
	ErrMsgEndpointIDsRequired   = "Source and destination IDs are required"
	ErrMsgTemplateNameRequired  = "Template name is required"
	ErrMsgSearchQueryRequired   = "Search query is required"
)

// defaultRelationship is used when a connection request names none.
const defaultRelationship = "success"
