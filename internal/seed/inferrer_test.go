package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstringInferrer_CaseInsensitiveMatch(t *testing.T) {
	inferrer := NewSubstringInferrer("description")

	projects := []Record{
		{"id": "p1", "description": "A REST API written in python with FastAPI"},
		{"id": "p2", "description": "Mobile app built with Flutter"},
	}
	technologies := []Record{
		{"id": "t1", "nom": "Python"},
		{"id": "t2", "nom": "Neo4j"},
	}

	edges := inferrer.InferEdges(projects, technologies)
	assert.Equal(t, []Edge{{SourceID: "p1", TargetID: "t1"}}, edges)
}

func TestSubstringInferrer_MultipleSourceFields(t *testing.T) {
	inferrer := NewSubstringInferrer("nom", "description")

	certs := []Record{
		{"id": "c1", "nom": "AWS Certified Developer", "description": "Cloud fundamentals"},
	}
	skills := []Record{
		{"id": "s1", "nom": "AWS"},
		{"id": "s2", "nom": "Cloud"},
		{"id": "s3", "nom": "Kubernetes"},
	}

	edges := inferrer.InferEdges(certs, skills)
	assert.Len(t, edges, 2)
	assert.Contains(t, edges, Edge{SourceID: "c1", TargetID: "s1"})
	assert.Contains(t, edges, Edge{SourceID: "c1", TargetID: "s2"})
}

func TestSubstringInferrer_NameFieldFallback(t *testing.T) {
	inferrer := NewSubstringInferrer("description")

	sources := []Record{{"id": "p1", "description": "built with docker"}}
	targets := []Record{{"id": "t1", "name": "Docker"}}

	edges := inferrer.InferEdges(sources, targets)
	assert.Len(t, edges, 1)
}

func TestSubstringInferrer_SkipsRecordsWithoutIDOrName(t *testing.T) {
	inferrer := NewSubstringInferrer("description")

	sources := []Record{
		{"description": "uses go everywhere"},
		{"id": "p1"},
		{"id": "p2", "description": "uses go everywhere"},
	}
	targets := []Record{
		{"id": "t1"},
		{"nom": "Go"},
		{"id": "t2", "nom": "Go"},
	}

	edges := inferrer.InferEdges(sources, targets)
	assert.Equal(t, []Edge{{SourceID: "p2", TargetID: "t2"}}, edges)
}

func TestSubstringInferrer_NoMatches(t *testing.T) {
	inferrer := NewSubstringInferrer("description")

	edges := inferrer.InferEdges(
		[]Record{{"id": "p1", "description": "nothing relevant"}},
		[]Record{{"id": "t1", "nom": "Rust"}},
	)
	assert.Empty(t, edges)
}
