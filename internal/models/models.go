package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is the structured contact block embedded in a personal-info record.
type Contact struct {
	Linkedin string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Tel      string `json:"tel,omitempty" bson:"tel,omitempty"`
	Mail     string `json:"mail,omitempty" bson:"mail,omitempty"`
}

// PersonalInfo is the single profile document. At most one instance is
// expected; an empty collection is a valid state.
type PersonalInfo struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nom         string             `json:"nom" bson:"nom"`
	Prenom      string             `json:"prenom" bson:"prenom"`
	Contact     Contact            `json:"contact" bson:"contact"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

// Project dates are ISO calendar date strings; a null date_fin means the
// project is ongoing.
type Project struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nom            string             `json:"nom" bson:"nom"`
	DateDebut      *string            `json:"date_debut" bson:"date_debut"`
	DateFin        *string            `json:"date_fin" bson:"date_fin"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Images         []string           `json:"images" bson:"images"`
	Entreprise     string             `json:"entreprise,omitempty" bson:"entreprise,omitempty"`
	Collaborateurs []string           `json:"collaborateurs" bson:"collaborateurs"`
	LienGithub     string             `json:"lien_github,omitempty" bson:"lien_github,omitempty"`
	Status         string             `json:"status,omitempty" bson:"status,omitempty"`
}

// ProjectDetail is a project enriched with the technology and skill names
// reachable through the graph.
type ProjectDetail struct {
	Project
	Technologies []string `json:"technologies"`
	Skills       []string `json:"skills"`
}

type Experience struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nom         string             `json:"nom" bson:"nom"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Company     string             `json:"company,omitempty" bson:"company,omitempty"`
	TypeDePoste string             `json:"type_de_poste,omitempty" bson:"type_de_poste,omitempty"`
	DateDebut   *string            `json:"date_debut" bson:"date_debut"`
	DateFin     *string            `json:"date_fin" bson:"date_fin"`
	Role        string             `json:"role,omitempty" bson:"role,omitempty"`
}

type Education struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SchoolName  string             `json:"school_name" bson:"school_name"`
	Degree      string             `json:"degree" bson:"degree"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	StartYear   *int               `json:"start_year" bson:"start_year"`
	EndYear     *int               `json:"end_year" bson:"end_year"`
	Grade       string             `json:"grade,omitempty" bson:"grade,omitempty"`
}

type Skill struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nom         string             `json:"nom" bson:"nom"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

type Technology struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nom   string             `json:"nom" bson:"nom"`
	Image string             `json:"image,omitempty" bson:"image,omitempty"`
}

type Certification struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nom           string             `json:"nom" bson:"nom"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	ObtentionDate *string            `json:"obtention_date" bson:"obtention_date"`
}

type Hobby struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nom         string             `json:"nom" bson:"nom"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

// ContactMessage is an append-only contact form submission.
type ContactMessage struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// GlobalPortfolio aggregates every collection into one payload for the
// presentation client.
type GlobalPortfolio struct {
	InfosPersonnels  []PersonalInfo  `json:"infos_personnels"`
	Projets          []Project       `json:"projets"`
	Experiences      []Experience    `json:"experiences"`
	ParcoursScolaire []Education     `json:"parcours_scolaire"`
	Certifications   []Certification `json:"certifications"`
	Skills           []Skill         `json:"skills"`
	Technologies     []Technology    `json:"technologies"`
	Hobbies          []Hobby         `json:"hobbies"`
}
