package models

import "go.mongodb.org/mongo-driver/bson"

// Create payloads carry the full field set plus relation-id lists. Relation
// ids are replicated to the graph, never persisted in the document store.
// Update payloads use pointer fields: only supplied fields change, and a
// relation list is rebuilt only when it is present in the payload.

type PersonalInfoCreate struct {
	Nom         string  `json:"nom" binding:"required"`
	Prenom      string  `json:"prenom" binding:"required"`
	Contact     Contact `json:"contact"`
	Description string  `json:"description"`
}

func (p PersonalInfoCreate) Document() bson.M {
	return bson.M{
		"nom":         p.Nom,
		"prenom":      p.Prenom,
		"contact":     p.Contact,
		"description": p.Description,
	}
}

type PersonalInfoUpdate struct {
	Nom         *string  `json:"nom"`
	Prenom      *string  `json:"prenom"`
	Contact     *Contact `json:"contact"`
	Description *string  `json:"description"`
}

func (p PersonalInfoUpdate) SetFields() bson.M {
	set := bson.M{}
	setString(set, "nom", p.Nom)
	setString(set, "prenom", p.Prenom)
	if p.Contact != nil {
		set["contact"] = *p.Contact
	}
	setString(set, "description", p.Description)
	return set
}

type ProjectCreate struct {
	Nom            string   `json:"nom" binding:"required"`
	DateDebut      *string  `json:"date_debut"`
	DateFin        *string  `json:"date_fin"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	Entreprise     string   `json:"entreprise"`
	Collaborateurs []string `json:"collaborateurs"`
	LienGithub     string   `json:"lien_github"`
	Status         string   `json:"status"`

	PersonIDs     []string `json:"person_ids"`
	TechnologyIDs []string `json:"technology_ids"`
	SkillIDs      []string `json:"skill_ids"`
}

func (p ProjectCreate) Document() bson.M {
	return bson.M{
		"nom":            p.Nom,
		"date_debut":     p.DateDebut,
		"date_fin":       p.DateFin,
		"description":    p.Description,
		"images":         emptyIfNil(p.Images),
		"entreprise":     p.Entreprise,
		"collaborateurs": emptyIfNil(p.Collaborateurs),
		"lien_github":    p.LienGithub,
		"status":         p.Status,
	}
}

type ProjectUpdate struct {
	Nom            *string   `json:"nom"`
	DateDebut      *string   `json:"date_debut"`
	DateFin        *string   `json:"date_fin"`
	Description    *string   `json:"description"`
	Images         *[]string `json:"images"`
	Entreprise     *string   `json:"entreprise"`
	Collaborateurs *[]string `json:"collaborateurs"`
	LienGithub     *string   `json:"lien_github"`
	Status         *string   `json:"status"`

	PersonIDs     *[]string `json:"person_ids"`
	TechnologyIDs *[]string `json:"technology_ids"`
	SkillIDs      *[]string `json:"skill_ids"`
}

func (p ProjectUpdate) SetFields() bson.M {
	set := bson.M{}
	setString(set, "nom", p.Nom)
	setString(set, "date_debut", p.DateDebut)
	setString(set, "date_fin", p.DateFin)
	setString(set, "description", p.Description)
	setStrings(set, "images", p.Images)
	setString(set, "entreprise", p.Entreprise)
	setStrings(set, "collaborateurs", p.Collaborateurs)
	setString(set, "lien_github", p.LienGithub)
	setString(set, "status", p.Status)
	return set
}

type ExperienceCreate struct {
	Nom         string  `json:"nom" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Company     string  `json:"company"`
	TypeDePoste string  `json:"type_de_poste"`
	DateDebut   *string `json:"date_debut"`
	DateFin     *string `json:"date_fin"`
	Role        string  `json:"role"`

	SkillIDs   []string `json:"skill_ids"`
	ProjectIDs []string `json:"project_ids"`
}

func (e ExperienceCreate) Document() bson.M {
	return bson.M{
		"nom":           e.Nom,
		"description":   e.Description,
		"image":         e.Image,
		"company":       e.Company,
		"type_de_poste": e.TypeDePoste,
		"date_debut":    e.DateDebut,
		"date_fin":      e.DateFin,
		"role":          e.Role,
	}
}

type ExperienceUpdate struct {
	Nom         *string `json:"nom"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Company     *string `json:"company"`
	TypeDePoste *string `json:"type_de_poste"`
	DateDebut   *string `json:"date_debut"`
	DateFin     *string `json:"date_fin"`
	Role        *string `json:"role"`

	SkillIDs   *[]string `json:"skill_ids"`
	ProjectIDs *[]string `json:"project_ids"`
}

func (e ExperienceUpdate) SetFields() bson.M {
	set := bson.M{}
	setString(set, "nom", e.Nom)
	setString(set, "description", e.Description)
	setString(set, "image", e.Image)
	setString(set, "company", e.Company)
	setString(set, "type_de_poste", e.TypeDePoste)
	setString(set, "date_debut", e.DateDebut)
	setString(set, "date_fin", e.DateFin)
	setString(set, "role", e.Role)
	return set
}

type EducationCreate struct {
	SchoolName  string `json:"school_name" binding:"required"`
	Degree      string `json:"degree" binding:"required"`
	Description string `json:"description"`
	StartYear   *int   `json:"start_year"`
	EndYear     *int   `json:"end_year"`
	Grade       string `json:"grade"`
}

func (e EducationCreate) Document() bson.M {
	return bson.M{
		"school_name": e.SchoolName,
		"degree":      e.Degree,
		"description": e.Description,
		"start_year":  e.StartYear,
		"end_year":    e.EndYear,
		"grade":       e.Grade,
	}
}

type EducationUpdate struct {
	SchoolName  *string `json:"school_name"`
	Degree      *string `json:"degree"`
	Description *string `json:"description"`
	StartYear   *int    `json:"start_year"`
	EndYear     *int    `json:"end_year"`
	Grade       *string `json:"grade"`
}

func (e EducationUpdate) SetFields() bson.M {
	set := bson.M{}
	setString(set, "school_name", e.SchoolName)
	setString(set, "degree", e.Degree)
	setString(set, "description", e.Description)
	if e.StartYear != nil {
		set["start_year"] = *e.StartYear
	}
	if e.EndYear != nil {
		set["end_year"] = *e.EndYear
	}
	setString(set, "grade", e.Grade)
	return set
}

type SkillCreate struct {
	Nom         string `json:"nom" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (s SkillCreate) Document() bson.M {
	return bson.M{
		"nom":         s.Nom,
		"category":    s.Category,
		"description": s.Description,
	}
}

type SkillUpdate struct {
	Nom         *string `json:"nom"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

func (s SkillUpdate) SetFields() bson.M {
	set := bson.M{}
	setString(set, "nom", s.Nom)
	setString(set, "category", s.Category)
	setString(set, "description", s.Description)
	return set
}

type TechnologyCreate struct {
	Nom   string `json:"nom" binding:"required"`
	Image string `json:"image"`
}

func (t TechnologyCreate) Document() bson.M {
	return bson.M{
		"nom":   t.Nom,
		"image": t.Image,
	}
}

type TechnologyUpdate struct {
	Nom   *string `json:"nom"`
	Image *string `json:"image"`
}

func (t TechnologyUpdate) SetFields() bson.M {
	set := bson.M{}
	setString(set, "nom", t.Nom)
	setString(set, "image", t.Image)
	return set
}

type CertificationCreate struct {
	Nom           string  `json:"nom" binding:"required"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	ObtentionDate *string `json:"obtention_date"`

	ValidatesSkillIDs      []string `json:"validates_skill_ids"`
	ValidatesTechnologyIDs []string `json:"validates_technology_ids"`
}

func (c CertificationCreate) Document() bson.M {
	return bson.M{
		"nom":            c.Nom,
		"image":          c.Image,
		"description":    c.Description,
		"obtention_date": c.ObtentionDate,
	}
}

type CertificationUpdate struct {
	Nom           *string `json:"nom"`
	Image         *string `json:"image"`
	Description   *string `json:"description"`
	ObtentionDate *string `json:"obtention_date"`

	ValidatesSkillIDs      *[]string `json:"validates_skill_ids"`
	ValidatesTechnologyIDs *[]string `json:"validates_technology_ids"`
}

func (c CertificationUpdate) SetFields() bson.M {
	set := bson.M{}
	setString(set, "nom", c.Nom)
	setString(set, "image", c.Image)
	setString(set, "description", c.Description)
	setString(set, "obtention_date", c.ObtentionDate)
	return set
}

type HobbyCreate struct {
	Nom         string `json:"nom" binding:"required"`
	Description string `json:"description"`
}

func (h HobbyCreate) Document() bson.M {
	return bson.M{
		"nom":         h.Nom,
		"description": h.Description,
	}
}

type HobbyUpdate struct {
	Nom         *string `json:"nom"`
	Description *string `json:"description"`
}

func (h HobbyUpdate) SetFields() bson.M {
	set := bson.M{}
	setString(set, "nom", h.Nom)
	setString(set, "description", h.Description)
	return set
}

type ContactMessageCreate struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func setString(set bson.M, key string, val *string) {
	if val != nil {
		set[key] = *val
	}
}

func setStrings(set bson.M, key string, val *[]string) {
	if val != nil {
		set[key] = emptyIfNil(*val)
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
