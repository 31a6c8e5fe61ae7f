package nifi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// GetSystemDiagnostics fetches JVM and storage diagnostics.
func (n *nifiImpl) GetSystemDiagnostics(ctx context.Context) (map[string]interface{}, error) {
	return n.doRequest(ctx, http.MethodGet, "/system-diagnostics", nil, nil, true)
}

// GetControllerStatus fetches the flow controller status summary.
func (n *nifiImpl) GetControllerStatus(ctx context.Context) (map[string]interface{}, error) {
	return n.doRequest(ctx, http.MethodGet, "/flow/status", nil, nil, true)
}

// GetProcessGroups lists child process groups of the given parent group.
func (n *nifiImpl) GetProcessGroups(ctx context.Context, parentGroupID string) ([]ProcessGroup, error) {
	resp, err := n.doRequest(ctx, http.MethodGet, "/flow/process-groups/"+parentGroupID, nil, nil, true)
	if err != nil {
		return nil, err
	}

	groups := []ProcessGroup{}
	for _, entry := range flowEntries(resp, "processGroups") {
		component := asMap(entry["component"])
		snapshot := asMap(asMap(entry["status"])["aggregateSnapshot"])

		groups = append(groups, ProcessGroup{
			ID:            asString(component["id"]),
			Name:          asString(component["name"]),
			Comments:      asString(component["comments"]),
			FlowFileCount: asInt(snapshot["flowFilesQueued"]),
			FlowFileSize:  int64(asInt(snapshot["bytesQueued"])),
			RunningCount:  asInt(snapshot["runningCount"]),
			StoppedCount:  asInt(snapshot["stoppedCount"]),
			InvalidCount:  asInt(snapshot["invalidCount"]),
			DisabledCount: asInt(snapshot["disabledCount"]),
		})
	}

	return groups, nil
}

// CreateProcessGroup creates a new process group under the parent group.
func (n *nifiImpl) CreateProcessGroup(ctx context.Context, parentGroupID, name string, position *Position) (*ProcessGroup, error) {
	if position == nil {
		position = &Position{}
	}

	payload := map[string]interface{}{
		"revision": map[string]interface{}{"version": 0},
		"component": map[string]interface{}{
			"name":     name,
			"position": position,
		},
	}

	resp, err := n.doRequest(ctx, http.MethodPost,
		fmt.Sprintf("/process-groups/%s/process-groups", parentGroupID), nil, payload, false)
	if err != nil {
		return nil, err
	}

	component := asMap(resp["component"])
	return &ProcessGroup{
		ID:       asString(component["id"]),
		Name:     asString(component["name"]),
		Comments: asString(component["comments"]),
	}, nil
}

// DeleteProcessGroup deletes a process group at the given revision version.
func (n *nifiImpl) DeleteProcessGroup(ctx context.Context, groupID string, version int) error {
	params := url.Values{}
	params.Set("version", fmt.Sprintf("%d", version))

	_, err := n.doRequest(ctx, http.MethodDelete, "/process-groups/"+groupID, params, nil, false)
	return err
}

// StartProcessGroup schedules all processors in the group to run.
func (n *nifiImpl) StartProcessGroup(ctx context.Context, groupID string) error {
	return n.updateProcessGroupState(ctx, groupID, "RUNNING")
}

// StopProcessGroup stops all processors in the group.
func (n *nifiImpl) StopProcessGroup(ctx context.Context, groupID string) error {
	return n.updateProcessGroupState(ctx, groupID, "STOPPED")
}

func (n *nifiImpl) updateProcessGroupState(ctx context.Context, groupID, state string) error {
	payload := map[string]interface{}{
		"id":    groupID,
		"state": state,
	}

	_, err := n.doRequest(ctx, http.MethodPut, "/flow/process-groups/"+groupID, nil, payload, false)
	return err
}

// GetProcessors lists processors inside the given process group.
func (n *nifiImpl) GetProcessors(ctx context.Context, groupID string) ([]Processor, error) {
	resp, err := n.doRequest(ctx, http.MethodGet, "/flow/process-groups/"+groupID, nil, nil, true)
	if err != nil {
		return nil, err
	}

	processors := []Processor{}
	for _, entry := range flowEntries(resp, "processors") {
		component := asMap(entry["component"])
		status := asMap(entry["status"])

		var validationErrors []string
		for _, v := range asList(component["validationErrors"]) {
			validationErrors = append(validationErrors, asString(v))
		}

		var relationships []string
		for name := range asMap(component["relationships"]) {
			relationships = append(relationships, name)
		}

		processors = append(processors, Processor{
			ID:               asString(component["id"]),
			Name:             asString(component["name"]),
			Type:             asString(component["type"]),
			State:            asString(component["state"]),
			RunStatus:        asString(status["runStatus"]),
			Comments:         asString(component["comments"]),
			ValidationErrors: validationErrors,
			Properties:       asMap(asMap(component["config"])["properties"]),
			Relationships:    relationships,
		})
	}

	return processors, nil
}

// CreateProcessor creates a new processor of the given type inside the group.
func (n *nifiImpl) CreateProcessor(ctx context.Context, groupID, processorType, name string, position *Position, properties map[string]interface{}) (*Processor, error) {
	if position == nil {
		position = &Position{}
	}
	if properties == nil {
		properties = map[string]interface{}{}
	}

	payload := map[string]interface{}{
		"revision": map[string]interface{}{"version": 0},
		"component": map[string]interface{}{
			"type":     processorType,
			"name":     name,
			"position": position,
			"config": map[string]interface{}{
				"properties": properties,
			},
		},
	}

	resp, err := n.doRequest(ctx, http.MethodPost,
		fmt.Sprintf("/process-groups/%s/processors", groupID), nil, payload, false)
	if err != nil {
		return nil, err
	}

	component := asMap(resp["component"])
	return &Processor{
		ID:         asString(component["id"]),
		Name:       asString(component["name"]),
		Type:       asString(component["type"]),
		State:      asString(component["state"]),
		Comments:   asString(component["comments"]),
		Properties: asMap(asMap(component["config"])["properties"]),
	}, nil
}

// StartProcessor transitions a processor to RUNNING.
func (n *nifiImpl) StartProcessor(ctx context.Context, processorID string, version int) error {
	return n.updateProcessorState(ctx, processorID, "RUNNING", version)
}

// StopProcessor transitions a processor to STOPPED.
func (n *nifiImpl) StopProcessor(ctx context.Context, processorID string, version int) error {
	return n.updateProcessorState(ctx, processorID, "STOPPED", version)
}

func (n *nifiImpl) updateProcessorState(ctx context.Context, processorID, state string, version int) error {
	payload := map[string]interface{}{
		"revision": map[string]interface{}{"version": version},
		"component": map[string]interface{}{
			"id":    processorID,
			"state": state,
		},
	}

	_, err := n.doRequest(ctx, http.MethodPut, "/processors/"+processorID, nil, payload, false)
	return err
}

// GetConnections lists connections inside the given process group.
func (n *nifiImpl) GetConnections(ctx context.Context, groupID string) ([]Connection, error) {
	resp, err := n.doRequest(ctx, http.MethodGet, "/flow/process-groups/"+groupID, nil, nil, true)
	if err != nil {
		return nil, err
	}

	connections := []Connection{}
	for _, entry := range flowEntries(resp, "connections") {
		component := asMap(entry["component"])
		snapshot := asMap(asMap(entry["status"])["aggregateSnapshot"])
		source := asMap(component["source"])
		destination := asMap(component["destination"])

		connections = append(connections, Connection{
			ID:              asString(component["id"]),
			Name:            asString(component["name"]),
			SourceID:        asString(source["id"]),
			SourceName:      asString(source["name"]),
			DestinationID:   asString(destination["id"]),
			DestinationName: asString(destination["name"]),
			FlowFileCount:   asInt(snapshot["flowFilesQueued"]),
			FlowFileSize:    int64(asInt(snapshot["bytesQueued"])),
		})
	}

	return connections, nil
}

// CreateConnection links two components over the given relationships.
func (n *nifiImpl) CreateConnection(ctx context.Context, groupID, sourceID, destinationID string, relationships []string, name string) (*Connection, error) {
	if name == "" {
		name = fmt.Sprintf("Connection_%s_to_%s", sourceID, destinationID)
	}

	payload := map[string]interface{}{
		"revision": map[string]interface{}{"version": 0},
		"component": map[string]interface{}{
			"name":                  name,
			"source":                map[string]interface{}{"id": sourceID, "groupId": groupID},
			"destination":           map[string]interface{}{"id": destinationID, "groupId": groupID},
			"selectedRelationships": relationships,
		},
	}

	resp, err := n.doRequest(ctx, http.MethodPost,
		fmt.Sprintf("/process-groups/%s/connections", groupID), nil, payload, false)
	if err != nil {
		return nil, err
	}

	component := asMap(resp["component"])
	return &Connection{
		ID:            asString(component["id"]),
		Name:          asString(component["name"]),
		SourceID:      asString(asMap(component["source"])["id"]),
		DestinationID: asString(asMap(component["destination"])["id"]),
	}, nil
}

// GetTemplates lists all templates known to the instance.
func (n *nifiImpl) GetTemplates(ctx context.Context) ([]Template, error) {
	resp, err := n.doRequest(ctx, http.MethodGet, "/flow/templates", nil, nil, true)
	if err != nil {
		return nil, err
	}

	templates := []Template{}
	for _, entry := range asList(resp["templates"]) {
		info := asMap(asMap(entry)["template"])

		templates = append(templates, Template{
			ID:              asString(info["id"]),
			Name:            asString(info["name"]),
			Description:     asString(info["description"]),
			Timestamp:       asString(info["timestamp"]),
			EncodingVersion: asString(info["encodingVersion"]),
		})
	}

	return templates, nil
}

// CreateTemplate snapshots a process group into a template.
func (n *nifiImpl) CreateTemplate(ctx context.Context, groupID, name, description string) (*Template, error) {
	payload := map[string]interface{}{
		"name":        name,
		"description": description,
		"snippetId":   groupID,
	}

	resp, err := n.doRequest(ctx, http.MethodPost, "/process-groups/root/templates", nil, payload, false)
	if err != nil {
		return nil, err
	}

	info := asMap(resp["template"])
	return &Template{
		ID:          asString(info["id"]),
		Name:        asString(info["name"]),
		Description: asString(info["description"]),
		Timestamp:   asString(info["timestamp"]),
	}, nil
}

// InstantiateTemplate places a template's components into a process group.
func (n *nifiImpl) InstantiateTemplate(ctx context.Context, groupID, templateID string, originX, originY float64) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"templateId": templateID,
		"originX":    originX,
		"originY":    originY,
	}

	return n.doRequest(ctx, http.MethodPost,
		fmt.Sprintf("/process-groups/%s/template-instance", groupID), nil, payload, false)
}

// SearchComponents runs a flow-wide component search.
func (n *nifiImpl) SearchComponents(ctx context.Context, query string) (SearchResults, error) {
	params := url.Values{}
	params.Set("q", query)

	resp, err := n.doRequest(ctx, http.MethodGet, "/flow/search-results", params, nil, true)
	if err != nil {
		return nil, err
	}

	buckets := map[string]string{
		"processors":            "processorResults",
		"process_groups":        "processGroupResults",
		"connections":           "connectionResults",
		"input_ports":           "inputPortResults",
		"output_ports":          "outputPortResults",
		"remote_process_groups": "remoteProcessGroupResults",
		"funnels":               "funnelResults",
	}

	results := SearchResults{}
	searchResults := asMap(resp["searchResultsDTO"])
	if len(searchResults) == 0 {
		searchResults = resp
	}
	for name, key := range buckets {
		matches := []map[string]interface{}{}
		for _, entry := range asList(searchResults[key]) {
			matches = append(matches, asMap(entry))
		}
		results[name] = matches
	}

	return results, nil
}

// GetProcessorTypes lists all processor types installed on the instance.
func (n *nifiImpl) GetProcessorTypes(ctx context.Context) ([]map[string]interface{}, error) {
	resp, err := n.doRequest(ctx, http.MethodGet, "/flow/processor-types", nil, nil, true)
	if err != nil {
		return nil, err
	}

	types := []map[string]interface{}{}
	for _, entry := range asList(resp["processorTypes"]) {
		types = append(types, asMap(entry))
	}
	return types, nil
}

// GetProcessorDocumentation looks up documentation for a processor type,
// falling back to the type listing when the extension repository has none.
func (n *nifiImpl) GetProcessorDocumentation(ctx context.Context, processorType string) (map[string]interface{}, error) {
	parts := strings.Split(processorType, ".")
	bundleGroup := "org.apache.nifi"
	if len(parts) > 2 {
		bundleGroup = strings.Join(parts[:len(parts)-2], ".")
	}
	typeName := parts[len(parts)-1]

	endpoint := fmt.Sprintf("/extension-repository/%s/nifi-standard-processors/%s/extensions/%s/docs",
		bundleGroup, DefaultBundleVersion, typeName)

	docs, err := n.doRequest(ctx, http.MethodGet, endpoint, nil, nil, true)
	if err == nil {
		return docs, nil
	}
	if _, ok := err.(*APIError); !ok {
		return nil, err
	}

	types, err := n.GetProcessorTypes(ctx)
	if err != nil {
		return nil, err
	}
	for _, pt := range types {
		if asString(pt["type"]) == processorType {
			return pt, nil
		}
	}
	return map[string]interface{}{}, nil
}

// flowEntries extracts the named component list from a process-group flow response.
func flowEntries(resp map[string]interface{}, key string) []map[string]interface{} {
	flow := asMap(asMap(resp["processGroupFlow"])["flow"])

	entries := []map[string]interface{}{}
	for _, entry := range asList(flow[key]) {
		entries = append(entries, asMap(entry))
	}
	return entries
}

func asMap(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func asList(v interface{}) []interface{} {
	if l, ok := v.([]interface{}); ok {
		return l
	}
	return nil
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}
