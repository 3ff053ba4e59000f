package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	apperrors "portfolio-backend/pkg/errors"
)

// Canonical collection names. The source datasets went through several
// renames (infos vs personal_infos vs infos_personnels); this set is the one
// the whole codebase uses.
const (
	CollectionPersonalInfos  = "personal_infos"
	CollectionProjects       = "projects"
	CollectionExperiences    = "experiences"
	CollectionEducations     = "educations"
	CollectionCertifications = "certifications"
	CollectionSkills         = "skills"
	CollectionTechnologies   = "technologies"
	CollectionHobbies        = "hobbies"
	CollectionContacts       = "contacts"
)

const connectTimeout = 10 * time.Second

// Mongo is an owned document-store handle, constructed once at process start
// and injected into everything that needs it.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo dials MongoDB and verifies the connection with a ping.
func NewMongo(ctx context.Context, url, dbName string) (*Mongo, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, apperrors.NewStoreConnectionFailed(url, err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, apperrors.NewStoreConnectionFailed(url, err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Database returns the underlying database handle.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Collection returns a named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close releases the client connection.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
