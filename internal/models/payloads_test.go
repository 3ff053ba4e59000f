package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProjectCreate_DocumentDefaults(t *testing.T) {
	doc := ProjectCreate{Nom: "Portfolio"}.Document()

	assert.Equal(t, "Portfolio", doc["nom"])
	// Nil slices are stored as empty arrays so list fields never come back null.
	assert.Equal(t, []string{}, doc["images"])
	assert.Equal(t, []string{}, doc["collaborateurs"])
	// Absent dates stay null; date_fin null means ongoing.
	assert.Nil(t, doc["date_fin"])
}

func TestProjectUpdate_SetFieldsPartial(t *testing.T) {
	set := ProjectUpdate{
		Nom:     strPtr("Renamed"),
		DateFin: strPtr("2024-06-01"),
	}.SetFields()

	assert.Equal(t, "Renamed", set["nom"])
	assert.Equal(t, "2024-06-01", set["date_fin"])
	assert.NotContains(t, set, "description")
	assert.NotContains(t, set, "images")
}

func TestProjectUpdate_SetFieldsEmpty(t *testing.T) {
	assert.Empty(t, ProjectUpdate{}.SetFields())
}

func TestProjectUpdate_RelationIDsNotPersisted(t *testing.T) {
	ids := []string{"a", "b"}
	set := ProjectUpdate{PersonIDs: &ids, TechnologyIDs: &ids, SkillIDs: &ids}.SetFields()

	// Relation ids live only in the graph.
	assert.Empty(t, set)
}

func TestProjectUpdate_ClearListField(t *testing.T) {
	empty := []string{}
	set := ProjectUpdate{Images: &empty}.SetFields()

	assert.Equal(t, []string{}, set["images"])
}

func TestPersonalInfoUpdate_SetFieldsContact(t *testing.T) {
	set := PersonalInfoUpdate{
		Contact: &Contact{Mail: "jane@example.com"},
	}.SetFields()

	assert.Equal(t, Contact{Mail: "jane@example.com"}, set["contact"])
	assert.NotContains(t, set, "nom")
}

func TestEducationUpdate_SetFieldsYears(t *testing.T) {
	start := 2021
	set := EducationUpdate{StartYear: &start}.SetFields()

	assert.Equal(t, 2021, set["start_year"])
	assert.NotContains(t, set, "end_year")
}

func TestCertificationUpdate_SetFieldsIgnoresRelations(t *testing.T) {
	ids := []string{"s1"}
	set := CertificationUpdate{
		Nom:               strPtr("AWS"),
		ValidatesSkillIDs: &ids,
	}.SetFields()

	assert.Equal(t, "AWS", set["nom"])
	assert.Len(t, set, 1)
}
