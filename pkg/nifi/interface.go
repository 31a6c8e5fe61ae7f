package nifi

import "context"

// INiFi defines the interface for the NiFi REST API client.
// Implementations are safe for concurrent use.
type INiFi interface {
	// Authenticate obtains a bearer token when credentials are configured.
	Authenticate(ctx context.Context) error

	// HealthCheck reports whether the NiFi instance is reachable.
	HealthCheck(ctx context.Context) bool

	// System and status
	GetSystemDiagnostics(ctx context.Context) (map[string]interface{}, error)
	GetControllerStatus(ctx context.Context) (map[string]interface{}, error)

	// Process groups
	GetProcessGroups(ctx context.Context, parentGroupID string) ([]ProcessGroup, error)
	CreateProcessGroup(ctx context.Context, parentGroupID, name string, position *Position) (*ProcessGroup, error)
	DeleteProcessGroup(ctx context.Context, groupID string, version int) error
	StartProcessGroup(ctx context.Context, groupID string) error
	StopProcessGroup(ctx context.Context, groupID string) error

	// Processors
	GetProcessors(ctx context.Context, groupID string) ([]Processor, error)
	CreateProcessor(ctx context.Context, groupID, processorType, name string, position *Position, properties map[string]interface{}) (*Processor, error)
	StartProcessor(ctx context.Context, processorID string, version int) error
	StopProcessor(ctx context.Context, processorID string, version int) error

	// Connections
	GetConnections(ctx context.Context, groupID string) ([]Connection, error)
	CreateConnection(ctx context.Context, groupID, sourceID, destinationID string, relationships []string, name string) (*Connection, error)

	// Templates
	GetTemplates(ctx context.Context) ([]Template, error)
	CreateTemplate(ctx context.Context, groupID, name, description string) (*Template, error)
	InstantiateTemplate(ctx context.Context, groupID, templateID string, originX, originY float64) (map[string]interface{}, error)

	// Search and documentation
	SearchComponents(ctx context.Context, query string) (SearchResults, error)
	GetProcessorTypes(ctx context.Context) ([]map[string]interface{}, error)
	GetProcessorDocumentation(ctx context.Context, processorType string) (map[string]interface{}, error)
}

// New creates a new NiFi client with the given configuration
func New(cfg Config) (INiFi, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newNiFiImpl(cfg), nil
}
