package seed

import "strings"

// Edge is an inferred relationship between a source and a target record id.
type Edge struct {
	SourceID string
	TargetID string
}

// Inferrer proposes edges between two entity lists. The seed pipeline treats
// it as a black box so the matching strategy can be swapped without touching
// the rest of the pipeline.
type Inferrer interface {
	InferEdges(sources, targets []Record) []Edge
}

// SubstringInferrer links a source to a target when any of the source's
// free-text fields contains the target's name, case-insensitively. It is a
// heuristic: substring collisions create false positives and paraphrased
// mentions are missed, both accepted.
type SubstringInferrer struct {
	// SourceFields are the free-text fields scanned on the source record.
	SourceFields []string
	// TargetNameFields are tried in order; the first non-empty one is the
	// target's name.
	TargetNameFields []string
}

// NewSubstringInferrer builds an inferrer scanning the given source fields
// against the usual name fields.
func NewSubstringInferrer(sourceFields ...string) *SubstringInferrer {
	return &SubstringInferrer{
		SourceFields:     sourceFields,
		TargetNameFields: []string{"nom", "name"},
	}
}

// InferEdges returns one edge per (source, target) pair whose texts match.
func (m *SubstringInferrer) InferEdges(sources, targets []Record) []Edge {
	edges := []Edge{}
	for _, src := range sources {
		srcID := idString(src)
		if srcID == "" {
			continue
		}
		haystack := m.sourceText(src)
		if haystack == "" {
			continue
		}
		for _, tgt := range targets {
			tgtID := idString(tgt)
			if tgtID == "" {
				continue
			}
			name := m.targetName(tgt)
			if name == "" {
				continue
			}
			if strings.Contains(haystack, strings.ToLower(name)) {
				edges = append(edges, Edge{SourceID: srcID, TargetID: tgtID})
			}
		}
	}
	return edges
}

func (m *SubstringInferrer) sourceText(rec Record) string {
	parts := []string{}
	for _, field := range m.SourceFields {
		if s, ok := rec[field].(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func (m *SubstringInferrer) targetName(rec Record) string {
	for _, field := range m.TargetNameFields {
		if s, ok := rec[field].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
