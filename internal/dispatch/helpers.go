package dispatch

import (
	"nifi-nlp-gateway/internal/intent"
	"nifi-nlp-gateway/pkg/nifi"
)

// groupIDOf resolves the target process group, falling back to the root
// group when the parameters carry no id.
func groupIDOf(params intent.Parameters) string {
	if params.ProcessGroupID == "" {
		return nifi.RootGroupID
	}
	return params.ProcessGroupID
}

func positionOf(params intent.Parameters) *nifi.Position {
	if params.Position == nil {
		return nil
	}
	return &nifi.Position{
		X: params.Position["x"],
		Y: params.Position["y"],
	}
}
