package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset_JSONLSkipsMalformedLines(t *testing.T) {
	path := writeDataset(t, "skills.jsonl", `{"id": "s1", "nom": "Go"}
not json at all
{"id": "s2", "nom": "Python"}

{"id": "s3", "nom": "Docker"}`)

	records, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Go", records[0]["nom"])
	assert.Equal(t, "s3", records[2]["id"])
}

func TestLoadDataset_JSONArray(t *testing.T) {
	path := writeDataset(t, "technologies.json", `[{"id": "t1", "nom": "React"}, {"id": "t2", "nom": "Neo4j"}]`)

	records, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Neo4j", records[1]["nom"])
}

func TestLoadDataset_SingleJSONObject(t *testing.T) {
	path := writeDataset(t, "infos.json", `{"id": "p1", "nom": "Doe", "prenom": "Jane"}`)

	records, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Doe", records[0]["nom"])
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}

func TestNormalize_CreatedAt(t *testing.T) {
	rec := Normalize(Record{"id": "x1", "created_at": "2024-03-01T10:30:00Z"})
	created, ok := rec["created_at"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, created.Year())
	assert.Equal(t, time.March, created.Month())

	// Unparseable timestamps are replaced, not kept as strings.
	rec = Normalize(Record{"id": "x2", "created_at": "01/03/2024"})
	_, ok = rec["created_at"].(time.Time)
	assert.True(t, ok)

	rec = Normalize(Record{"id": "x3"})
	_, ok = rec["created_at"].(time.Time)
	assert.True(t, ok)
}

func TestNormalize_StampsMissingID(t *testing.T) {
	rec := Normalize(Record{"nom": "orphan"})
	assert.NotEmpty(t, idString(rec))

	rec = Normalize(Record{"id": "keep-me", "nom": "kept"})
	assert.Equal(t, "keep-me", idString(rec))
}

func TestFlatten_KeepsPrimitivesOnly(t *testing.T) {
	props := Flatten(Record{
		"id":          "p1",
		"nom":         "Portfolio",
		"status":      "done",
		"ects":        float64(30),
		"active":      true,
		"images":      []any{"a.png", "b.png"},
		"contact":     map[string]any{"mail": "x@y.z"},
		"description": "site",
	})

	assert.Equal(t, "p1", props["mongo_id"])
	assert.Equal(t, "Portfolio", props["nom"])
	assert.Equal(t, true, props["active"])
	assert.NotContains(t, props, "images")
	assert.NotContains(t, props, "contact")
	assert.NotContains(t, props, "id")
}

func TestIDString_NumericID(t *testing.T) {
	assert.Equal(t, "42", idString(Record{"id": float64(42)}))
	assert.Equal(t, "", idString(Record{}))
}
