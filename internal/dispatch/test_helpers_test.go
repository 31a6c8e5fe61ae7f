package dispatch

import (
	"context"

	"nifi-nlp-gateway/pkg/nifi"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockNiFi is a call-counting NiFi client double. Override the function
// fields a test cares about; everything else returns zero values.
type mockNiFi struct {
	calls int

	getProcessGroupsFunc   func(parentGroupID string) ([]nifi.ProcessGroup, error)
	createProcessGroupFunc func(parentGroupID, name string) (*nifi.ProcessGroup, error)
	getProcessorsFunc      func(groupID string) ([]nifi.Processor, error)
	createProcessorFunc    func(groupID, processorType, name string) (*nifi.Processor, error)
	getConnectionsFunc     func(groupID string) ([]nifi.Connection, error)
	getTemplatesFunc       func() ([]nifi.Template, error)
	searchComponentsFunc   func(query string) (nifi.SearchResults, error)
	diagnosticsFunc        func() (map[string]interface{}, error)
	controllerStatusFunc   func() (map[string]interface{}, error)
	startProcessGroupErr   error
	stopProcessGroupErr    error
}

var _ nifi.INiFi = (*mockNiFi)(nil)

func (m *mockNiFi) Authenticate(ctx context.Context) error { m.calls++; return nil }
func (m *mockNiFi) HealthCheck(ctx context.Context) bool   { m.calls++; return true }

func (m *mockNiFi) GetSystemDiagnostics(ctx context.Context) (map[string]interface{}, error) {
	m.calls++
	if m.diagnosticsFunc != nil {
		return m.diagnosticsFunc()
	}
	return map[string]interface{}{}, nil
}

func (m *mockNiFi) GetControllerStatus(ctx context.Context) (map[string]interface{}, error) {
	m.calls++
	if m.controllerStatusFunc != nil {
		return m.controllerStatusFunc()
	}
	return map[string]interface{}{}, nil
}

func (m *mockNiFi) GetProcessGroups(ctx context.Context, parentGroupID string) ([]nifi.ProcessGroup, error) {
	m.calls++
	if m.getProcessGroupsFunc != nil {
		return m.getProcessGroupsFunc(parentGroupID)
	}
	return nil, nil
}

func (m *mockNiFi) CreateProcessGroup(ctx context.Context, parentGroupID, name string, position *nifi.Position) (*nifi.ProcessGroup, error) {
	m.calls++
	if m.createProcessGroupFunc != nil {
		return m.createProcessGroupFunc(parentGroupID, name)
	}
	return &nifi.ProcessGroup{ID: "pg-1", Name: name}, nil
}

func (m *mockNiFi) DeleteProcessGroup(ctx context.Context, groupID string, version int) error {
	m.calls++
	return nil
}

func (m *mockNiFi) StartProcessGroup(ctx context.Context, groupID string) error {
	m.calls++
	return m.startProcessGroupErr
}

func (m *mockNiFi) StopProcessGroup(ctx context.Context, groupID string) error {
	m.calls++
	return m.stopProcessGroupErr
}

func (m *mockNiFi) GetProcessors(ctx context.Context, groupID string) ([]nifi.Processor, error) {
	m.calls++
	if m.getProcessorsFunc != nil {
		return m.getProcessorsFunc(groupID)
	}
	return nil, nil
}

func (m *mockNiFi) CreateProcessor(ctx context.Context, groupID, processorType, name string, position *nifi.Position, properties map[string]interface{}) (*nifi.Processor, error) {
	m.calls++
	if m.createProcessorFunc != nil {
		return m.createProcessorFunc(groupID, processorType, name)
	}
	return &nifi.Processor{ID: "proc-1", Name: name, Type: processorType}, nil
}

func (m *mockNiFi) StartProcessor(ctx context.Context, processorID string, version int) error {
	m.calls++
	return nil
}

func (m *mockNiFi) StopProcessor(ctx context.Context, processorID string, version int) error {
	m.calls++
	return nil
}

func (m *mockNiFi) GetConnections(ctx context.Context, groupID string) ([]nifi.Connection, error) {
	m.calls++
	if m.getConnectionsFunc != nil {
		return m.getConnectionsFunc(groupID)
	}
	return nil, nil
}

func (m *mockNiFi) CreateConnection(ctx context.Context, groupID, sourceID, destinationID string, relationships []string, name string) (*nifi.Connection, error) {
	m.calls++
	return &nifi.Connection{ID: "conn-1"}, nil
}

func (m *mockNiFi) GetTemplates(ctx context.Context) ([]nifi.Template, error) {
	m.calls++
	if m.getTemplatesFunc != nil {
		return m.getTemplatesFunc()
	}
	return nil, nil
}

func (m *mockNiFi) CreateTemplate(ctx context.Context, groupID, name, description string) (*nifi.Template, error) {
	m.calls++
	return &nifi.Template{ID: "tpl-1", Name: name}, nil
}

func (m *mockNiFi) InstantiateTemplate(ctx context.Context, groupID, templateID string, originX, originY float64) (map[string]interface{}, error) {
	m.calls++
	return map[string]interface{}{}, nil
}

func (m *mockNiFi) SearchComponents(ctx context.Context, query string) (nifi.SearchResults, error) {
	m.calls++
	if m.searchComponentsFunc != nil {
		return m.searchComponentsFunc(query)
	}
	return nifi.SearchResults{}, nil
}

func (m *mockNiFi) GetProcessorTypes(ctx context.Context) ([]map[string]interface{}, error) {
	m.calls++
	return nil, nil
}

func (m *mockNiFi) GetProcessorDocumentation(ctx context.Context, processorType string) (map[string]interface{}, error) {
	m.calls++
	return map[string]interface{}{"type": processorType}, nil
}
