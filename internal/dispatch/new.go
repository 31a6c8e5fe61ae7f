package dispatch

import (
	"context"

	"nifi-nlp-gateway/internal/intent"
	"nifi-nlp-gateway/pkg/log"
	"nifi-nlp-gateway/pkg/nifi"
)

type handlerFunc func(ctx context.Context, params intent.Parameters) (Result, error)

type dispatcher struct {
	client   nifi.INiFi
	l        log.Logger
	handlers map[intent.Intent]handlerFunc
}

var _ Dispatcher = (*dispatcher)(nil)

// New creates a Dispatcher over the given NiFi client. client may be nil
// until the backend connection is established; dispatching in that state
// produces a not-initialized failure envelope.
func New(l log.Logger, client nifi.INiFi) Dispatcher {
	d := &dispatcher{
		client: client,
		l:      l,
	}

	d.handlers = map[intent.Intent]handlerFunc{
		intent.IntentListProcessGroups:  d.listProcessGroups,
		intent.IntentCreateProcessGroup: d.createProcessGroup,
		intent.IntentStartProcessGroup:  d.startProcessGroup,
		intent.IntentStopProcessGroup:   d.stopProcessGroup,

		intent.IntentListProcessors:  d.listProcessors,
		intent.IntentCreateProcessor: d.createProcessor,

		intent.IntentListConnections:  d.listConnections,
		intent.IntentCreateConnection: d.createConnection,

		intent.IntentListTemplates:  d.listTemplates,
		intent.IntentCreateTemplate: d.createTemplate,

		intent.IntentSearchComponents: d.searchComponents,

		intent.IntentGetStatus:     d.getStatus,
		intent.IntentGetFlowStatus: d.getFlowStatus,

		intent.IntentGetDocumentation: d.getDocumentation,
		intent.IntentGetProcessorInfo: d.getProcessorInfo,

		intent.IntentHelp: d.getHelp,

		// Operations that need name-to-id resolution the backend flow does
		// not provide yet.
		intent.IntentDeleteProcessGroup:  placeholder("Delete process group operation not fully implemented"),
		intent.IntentStartProcessor:      placeholder("Start processor operation not fully implemented"),
		intent.IntentStopProcessor:       placeholder("Stop processor operation not fully implemented"),
		intent.IntentInstantiateTemplate: placeholder("Instantiate template operation not fully implemented"),
	}

	return d
}
