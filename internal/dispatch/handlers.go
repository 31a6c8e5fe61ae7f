package dispatch

import (
	"context"
	"fmt"
	"strings"

	"nifi-nlp-gateway/internal/intent"
)

// Process group operations

func (d *dispatcher) listProcessGroups(ctx context.Context, params intent.Parameters) (Result, error) {
	groupID := groupIDOf(params)

	groups, err := d.client.GetProcessGroups(ctx, groupID)
	if err != nil {
		return Result{}, err
	}

	message := fmt.Sprintf("Found %d process group(s)", len(groups))
	if len(groups) == 0 {
		message = fmt.Sprintf("No process groups found in '%s'", groupID)
	}

	return Result{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"process_groups": groups,
			"count":          len(groups),
		},
	}, nil
}

func (d *dispatcher) createProcessGroup(ctx context.Context, params intent.Parameters) (Result, error) {
	if params.ProcessGroupName == "" {
		return failed(ErrMsgGroupNameRequired), nil
	}

	group, err := d.client.CreateProcessGroup(ctx, groupIDOf(params), params.ProcessGroupName, positionOf(params))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Created process group '%s'", params.ProcessGroupName),
		Data: map[string]interface{}{
			"process_group": group,
		},
	}, nil
}

func (d *dispatcher) startProcessGroup(ctx context.Context, params intent.Parameters) (Result, error) {
	groupID := groupIDOf(params)

	if err := d.client.StartProcessGroup(ctx, groupID); err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Started process group '%s'", groupID),
		Data: map[string]interface{}{
			"process_group_id": groupID,
		},
	}, nil
}

func (d *dispatcher) stopProcessGroup(ctx context.Context, params intent.Parameters) (Result, error) {
	groupID := groupIDOf(params)

	if err := d.client.StopProcessGroup(ctx, groupID); err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Stopped process group '%s'", groupID),
		Data: map[string]interface{}{
			"process_group_id": groupID,
		},
	}, nil
}

// Processor operations

func (d *dispatcher) listProcessors(ctx context.Context, params intent.Parameters) (Result, error) {
	groupID := groupIDOf(params)

	processors, err := d.client.GetProcessors(ctx, groupID)
	if err != nil {
		return Result{}, err
	}

	message := fmt.Sprintf("Found %d processor(s)", len(processors))
	if len(processors) == 0 {
		message = fmt.Sprintf("No processors found in '%s'", groupID)
	}

	return Result{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"processors": processors,
			"count":      len(processors),
		},
	}, nil
}

func (d *dispatcher) createProcessor(ctx context.Context, params intent.Parameters) (Result, error) {
	if params.ProcessorType == "" {
		return failed(ErrMsgProcessorTypeRequired), nil
	}

	name := params.ProcessorName
	if name == "" {
		parts := strings.Split(params.ProcessorType, ".")
		name = "New " + parts[len(parts)-1]
	}

	processor, err := d.client.CreateProcessor(ctx, groupIDOf(params), params.ProcessorType, name, positionOf(params), params.Properties)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Created processor '%s' of type '%s'", name, params.ProcessorType),
		Data: map[string]interface{}{
			"processor": processor,
		},
	}, nil
}

// Connection operations

func (d *dispatcher) listConnections(ctx context.Context, params intent.Parameters) (Result, error) {
	groupID := groupIDOf(params)

	connections, err := d.client.GetConnections(ctx, groupID)
	if err != nil {
		return Result{}, err
	}

	message := fmt.Sprintf("Found %d connection(s)", len(connections))
	if len(connections) == 0 {
		message = fmt.Sprintf("No connections found in '%s'", groupID)
	}

	return Result{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"connections": connections,
			"count":       len(connections),
		},
	}, nil
}

func (d *dispatcher) createConnection(ctx context.Context, params intent.Parameters) (Result, error) {
	if params.SourceID == "" || params.DestinationID == "" {
		return failed(ErrMsgEndpointIDsRequired), nil
	}

	relationships := params.Relationships
	if len(relationships) == 0 {
		relationships = []string{defaultRelationship}
	}

	connection, err := d.client.CreateConnection(ctx, groupIDOf(params), params.SourceID, params.DestinationID, relationships, params.ConnectionName)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Created connection from '%s' to '%s'", params.SourceID, params.DestinationID),
		Data: map[string]interface{}{
			"connection": connection,
		},
	}, nil
}

// Template operations

func (d *dispatcher) listTemplates(ctx context.Context, params intent.Parameters) (Result, error) {
	templates, err := d.client.GetTemplates(ctx)
	if err != nil {
		return Result{}, err
	}

	message := fmt.Sprintf("Found %d template(s)", len(templates))
	if len(templates) == 0 {
		message = "No templates found"
	}

	return Result{
		Success: true,
		Message: message,
		Data: map[string]interface{}{
			"templates": templates,
			"count":     len(templates),
		},
	}, nil
}

func (d *dispatcher) createTemplate(ctx context.Context, params intent.Parameters) (Result, error) {
	if params.TemplateName == "" {
		return failed(ErrMsgTemplateNameRequired), nil
	}

	description := ""
	if v, ok := params.AdditionalParams["description"].(string); ok {
		description = v
	}

	template, err := d.client.CreateTemplate(ctx, groupIDOf(params), params.TemplateName, description)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Created template '%s'", params.TemplateName),
		Data: map[string]interface{}{
			"template": template,
		},
	}, nil
}

// Search

func (d *dispatcher) searchComponents(ctx context.Context, params intent.Parameters) (Result, error) {
	if params.SearchQuery == "" {
		return failed(ErrMsgSearchQueryRequired), nil
	}

	results, err := d.client.SearchComponents(ctx, params.SearchQuery)
	if err != nil {
		return Result{}, err
	}

	total := results.Total()

	return Result{
		Success: true,
		Message: fmt.Sprintf("Found %d component(s) matching '%s'", total, params.SearchQuery),
		Data: map[string]interface{}{
			"search_results": results,
			"total_count":    total,
		},
	}, nil
}

// Status operations

func (d *dispatcher) getStatus(ctx context.Context, params intent.Parameters) (Result, error) {
	diagnostics, err := d.client.GetSystemDiagnostics(ctx)
	if err != nil {
		return Result{}, err
	}

	controllerStatus, err := d.client.GetControllerStatus(ctx)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: "Retrieved NiFi system status",
		Data: map[string]interface{}{
			"system_diagnostics": diagnostics,
			"controller_status":  controllerStatus,
		},
	}, nil
}

func (d *dispatcher) getFlowStatus(ctx context.Context, params intent.Parameters) (Result, error) {
	status, err := d.client.GetControllerStatus(ctx)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: "Retrieved flow status",
		Data: map[string]interface{}{
			"flow_status": status,
		},
	}, nil
}

// Documentation

func (d *dispatcher) getDocumentation(ctx context.Context, params intent.Parameters) (Result, error) {
	if params.ProcessorType == "" {
		return d.getHelp(ctx, params)
	}

	docs, err := d.client.GetProcessorDocumentation(ctx, params.ProcessorType)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Retrieved documentation for %s", params.ProcessorType),
		Data: map[string]interface{}{
			"documentation": docs,
		},
	}, nil
}

func (d *dispatcher) getProcessorInfo(ctx context.Context, params intent.Parameters) (Result, error) {
	if params.ProcessorType != "" {
		docs, err := d.client.GetProcessorDocumentation(ctx, params.ProcessorType)
		if err != nil {
			return Result{}, err
		}

		return Result{
			Success: true,
			Message: fmt.Sprintf("Retrieved information for %s", params.ProcessorType),
			Data: map[string]interface{}{
				"processor_info": docs,
			},
		}, nil
	}

	types, err := d.client.GetProcessorTypes(ctx)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf("Found %d processor types", len(types)),
		Data: map[string]interface{}{
			"processor_types": types,
		},
	}, nil
}

func (d *dispatcher) getHelp(ctx context.Context, params intent.Parameters) (Result, error) {
	examples := map[string][]string{}
	for _, entry := range intent.Catalog() {
		if len(entry.Examples) > 0 {
			examples[string(entry.Intent)] = entry.Examples
		}
	}

	return Result{
		Success: true,
		Message: "Here are some example queries you can use:",
		Data: map[string]interface{}{
			"examples":          examples,
			"supported_intents": intent.SupportedIntents(),
		},
	}, nil
}
