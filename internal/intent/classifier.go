package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nifi-nlp-gateway/pkg/llmprovider"
	"nifi-nlp-gateway/pkg/log"
)

// Classifier resolves a query through an external text-generation provider.
type Classifier interface {
	Classify(ctx context.Context, query string) (ProcessedIntent, error)
}

// LLMClassifier builds a schema-constrained prompt from the intent catalog
// and parses the provider's structured response. Parse failures never
// propagate: they degrade to an unknown result with zero confidence.
type LLMClassifier struct {
	provider llmprovider.Provider
	l        log.Logger
}

var _ Classifier = (*LLMClassifier)(nil)

// NewClassifier creates an LLMClassifier over the given provider.
func NewClassifier(provider llmprovider.Provider, l log.Logger) *LLMClassifier {
	return &LLMClassifier{
		provider: provider,
		l:        l,
	}
}

// classifierResponse mirrors the JSON schema the system prompt demands.
type classifierResponse struct {
	Intent      string     `json:"intent"`
	Parameters  Parameters `json:"parameters"`
	Confidence  *float64   `json:"confidence"`
	Explanation string     `json:"explanation"`
}

// Classify sends the query to the provider and parses the structured reply.
// The returned error covers provider transport failures only; malformed
// output is converted to an unknown result and a nil error.
func (c *LLMClassifier) Classify(ctx context.Context, query string) (ProcessedIntent, error) {
	resp, err := c.provider.GenerateResponse(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "system", Content: buildSystemPrompt()},
			{Role: "user", Content: fmt.Sprintf("Analyze this NiFi query and extract the intent and parameters: %q", query)},
		},
		Temperature: classifierTemperature,
		MaxTokens:   classifierMaxTokens,
	})
	if err != nil {
		return ProcessedIntent{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	return c.parseResponse(ctx, resp, query), nil
}

func (c *LLMClassifier) parseResponse(ctx context.Context, response, query string) ProcessedIntent {
	text := stripCodeFences(response)

	unknown := func(reason string) ProcessedIntent {
		return ProcessedIntent{
			Intent:      IntentUnknown,
			Parameters:  NewParameters(),
			Confidence:  0.0,
			RawQuery:    query,
			Explanation: fmt.Sprintf("%s: %s", explanationParseFailure, reason),
		}
	}

	var parsed classifierResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return unknown(err.Error())
	}

	it, ok := lookupIntent(parsed.Intent)
	if !ok {
		c.l.Warnf(ctx, "%s: unknown intent tag %q in classifier response", LogPrefixClassify, parsed.Intent)
		return unknown(fmt.Sprintf("unknown intent tag %q", parsed.Intent))
	}

	confidence := classifierDefaultConfidence
	if parsed.Confidence != nil {
		confidence = *parsed.Confidence
	}
	if confidence < 0 || confidence > 1 {
		c.l.Warnf(ctx, "%s: classifier confidence %f out of range", LogPrefixClassify, confidence)
		return unknown(fmt.Sprintf("confidence %f out of range", confidence))
	}

	params := parsed.Parameters
	if params.ProcessGroupID == "" {
		params.ProcessGroupID = DefaultProcessGroupID
	}

	return ProcessedIntent{
		Intent:      it,
		Parameters:  params,
		Confidence:  confidence,
		RawQuery:    query,
		Explanation: parsed.Explanation,
	}
}

// stripCodeFences removes markdown code blocks the model may wrap its JSON in.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}

func lookupIntent(tag string) (Intent, bool) {
	for _, it := range allIntents {
		if string(it) == tag {
			return it, true
		}
	}
	return IntentUnknown, false
}

// buildSystemPrompt enumerates the catalog and the strict JSON output schema.
func buildSystemPrompt() string {
	var sb strings.Builder
	for _, it := range allIntents {
		fmt.Fprintf(&sb, "- %s: %s\n", it, describe(it))
	}

	return fmt.Sprintf(`You are an expert Apache NiFi assistant that processes natural language queries and extracts structured intent and parameters for NiFi operations.

Available NiFi Intents:
%s
Your task is to analyze user queries and return a JSON response with the following structure:
{
    "intent": "one of the available intents",
    "parameters": {
        "process_group_id": "root or specific group ID",
        "process_group_name": "name if mentioned",
        "processor_name": "processor name if mentioned",
        "processor_type": "full processor class name if identifiable",
        "processor_id": "processor ID if mentioned",
        "connection_name": "connection name if mentioned",
        "template_name": "template name if mentioned",
        "search_query": "search terms if applicable",
        "properties": {},
        "relationships": [],
        "source_id": "source component ID if mentioned",
        "destination_id": "destination component ID if mentioned",
        "position": {"x": 0, "y": 0},
        "additional_params": {}
    },
    "confidence": 0.0-1.0,
    "explanation": "Brief explanation of the extracted intent"
}

Common NiFi processor types:
- GetFile: org.apache.nifi.processors.standard.GetFile
- PutFile: org.apache.nifi.processors.standard.PutFile
- GetHTTP: org.apache.nifi.processors.standard.GetHTTP
- PutHTTP: org.apache.nifi.processors.standard.PutHTTP
- ConsumeKafka: org.apache.nifi.processors.kafka.pubsub.ConsumeKafka_2_6
- PublishKafka: org.apache.nifi.processors.kafka.pubsub.PublishKafka_2_6
- JoltTransformJSON: org.apache.nifi.processors.standard.JoltTransformJSON
- RouteOnAttribute: org.apache.nifi.processors.standard.RouteOnAttribute

Be precise and extract as much relevant information as possible from the query. Respond with JSON only.`, sb.String())
}
