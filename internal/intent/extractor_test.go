package intent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractParameters(t *testing.T) {
	t.Run("Quoted Name By Intent Category", func(t *testing.T) {
		params := extractParameters("create a processor called 'File Reader'", IntentCreateProcessor)
		require.Equal(t, "File Reader", params.ProcessorName)
		require.Empty(t, params.ProcessGroupName)

		params = extractParameters("instantiate the 'Daily ETL' template", IntentInstantiateTemplate)
		require.Equal(t, "Daily ETL", params.TemplateName)

		params = extractParameters(`stop the "Ingest" process group`, IntentStopProcessGroup)
		require.Equal(t, "Ingest", params.ProcessGroupName)
	})

	t.Run("Processor Type Table First Match Wins", func(t *testing.T) {
		params := extractParameters("create a getfile processor", IntentCreateProcessor)
		require.Equal(t, "org.apache.nifi.processors.standard.GetFile", params.ProcessorType)

		params = extractParameters("add a processor to consume from kafka", IntentCreateProcessor)
		require.Equal(t, "org.apache.nifi.processors.kafka.pubsub.ConsumeKafka_2_6", params.ProcessorType)

		params = extractParameters("route on attribute", IntentCreateProcessor)
		require.Equal(t, "org.apache.nifi.processors.standard.RouteOnAttribute", params.ProcessorType)

		params = extractParameters("list processors", IntentListProcessors)
		require.Empty(t, params.ProcessorType)
	})

	t.Run("Search Term Only For Search Intent", func(t *testing.T) {
		params := extractParameters("find kafka sources", IntentSearchComponents)
		require.Equal(t, "kafka sources", params.SearchQuery)

		params = extractParameters("find kafka sources", IntentListProcessors)
		require.Empty(t, params.SearchQuery)
	})

	t.Run("Group Reference Discards Reserved Names", func(t *testing.T) {
		params := extractParameters("list processors in the main process group", IntentListProcessors)
		require.Empty(t, params.ProcessGroupName)
		require.Equal(t, DefaultProcessGroupID, params.ProcessGroupID)

		params = extractParameters("list processors in the root group", IntentListProcessors)
		require.Empty(t, params.ProcessGroupName)
	})

	t.Run("Group Reference Sets Name", func(t *testing.T) {
		params := extractParameters("list processors in the Staging process group", IntentListProcessors)
		require.Equal(t, "Staging", params.ProcessGroupName)
	})

	t.Run("Group Reference Overwrites Quoted Name", func(t *testing.T) {
		// Quoted-name extraction runs first; the group-reference heuristic
		// runs last and wins.
		params := extractParameters("start 'Ingest' in the Staging process group", IntentStartProcessGroup)
		require.Equal(t, "Staging", params.ProcessGroupName)
	})

	t.Run("Defaults", func(t *testing.T) {
		params := extractParameters("do something", IntentUnknown)
		require.Equal(t, DefaultProcessGroupID, params.ProcessGroupID)
		require.Empty(t, params.ProcessorName)
		require.Empty(t, params.TemplateName)
		require.Empty(t, params.SearchQuery)
	})
}
