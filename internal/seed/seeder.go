package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/store"
	"portfolio-backend/pkg/logger"
)

// Dataset binds a document-store collection, its graph label and its
// candidate dataset files (first existing one wins).
type Dataset struct {
	Collection string
	Label      string
	Files      []string
}

// Datasets is the fixed seed order. Person first, so the hub step can find it.
var Datasets = []Dataset{
	{store.CollectionPersonalInfos, graph.LabelPerson, []string{"infos_personnels.jsonl", "personal_infos.jsonl", "personal_infos.json"}},
	{store.CollectionProjects, graph.LabelProject, []string{"projets.jsonl", "projects.jsonl", "projects.json"}},
	{store.CollectionExperiences, graph.LabelExperience, []string{"experiences.jsonl", "experiences.json"}},
	{store.CollectionEducations, graph.LabelEducation, []string{"parcours_scolaire.jsonl", "educations.jsonl", "educations.json"}},
	{store.CollectionCertifications, graph.LabelCertification, []string{"certifications.jsonl", "certifications.json"}},
	{store.CollectionSkills, graph.LabelSkill, []string{"skills.jsonl", "skills.json"}},
	{store.CollectionTechnologies, graph.LabelTechnology, []string{"technologies.jsonl", "technologies.json"}},
	{store.CollectionHobbies, graph.LabelHobby, []string{"hobbies.jsonl", "hobbies.json"}},
	{store.CollectionContacts, graph.LabelContact, []string{"contacts.jsonl", "contacts.json"}},
}

// InferencePair applies one matcher between two seeded entity lists and
// materializes the result under one relation type.
type InferencePair struct {
	SourceLabel string
	TargetLabel string
	RelType     string
	Matcher     Inferrer
}

// DefaultInferencePairs is the fixed enrichment set: project descriptions
// against technology and skill names, experience descriptions against skill
// names, certification names/descriptions against skill and technology names.
func DefaultInferencePairs() []InferencePair {
	return []InferencePair{
		{graph.LabelProject, graph.LabelTechnology, graph.RelUsesTech, NewSubstringInferrer("description")},
		{graph.LabelProject, graph.LabelSkill, graph.RelRequiresSkill, NewSubstringInferrer("description")},
		{graph.LabelExperience, graph.LabelSkill, graph.RelGainedSkill, NewSubstringInferrer("description")},
		{graph.LabelCertification, graph.LabelSkill, graph.RelValidates, NewSubstringInferrer("nom", "description")},
		{graph.LabelCertification, graph.LabelTechnology, graph.RelValidates, NewSubstringInferrer("nom", "description")},
	}
}

// Summary reports what a seed run did.
type Summary struct {
	Documents map[string]int
	Nodes     int64
	Edges     int64
}

// Seeder reconstructs both stores from the dataset directory. Every phase
// starts with a full purge, which is what makes re-running idempotent.
type Seeder struct {
	mongo       *store.Mongo
	graph       *graph.Repository
	datasetsDir string
	pairs       []InferencePair
	logger      *zap.Logger
}

// NewSeeder builds a seeder with the default inference pairs.
func NewSeeder(mongo *store.Mongo, graphRepo *graph.Repository, datasetsDir string) *Seeder {
	return &Seeder{
		mongo:       mongo,
		graph:       graphRepo,
		datasetsDir: datasetsDir,
		pairs:       DefaultInferencePairs(),
		logger:      logger.Get(),
	}
}

// Run executes the full pipeline: purge + load MongoDB, purge the graph,
// recreate nodes, hub edges, inferred edges, category grouping.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{Documents: map[string]int{}}

	s.logger.Info("Step 1: Loading datasets into MongoDB...")
	loaded, err := s.seedMongo(ctx, summary)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Step 2: Purging the graph...")
	if err := s.graph.PurgeAll(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Step 3: Creating constraints...")
	if err := s.graph.EnsureConstraints(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Step 4: Creating graph nodes...")
	for _, ds := range Datasets {
		records := loaded[ds.Label]
		batch := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			batch = append(batch, Flatten(rec))
		}
		if err := s.graph.CreateNodes(ctx, ds.Label, batch); err != nil {
			return nil, err
		}
	}

	if personID := firstID(loaded[graph.LabelPerson]); personID != "" {
		s.logger.Info("Step 5: Creating hub edges", zap.String("person_id", personID))
		if err := s.graph.CreateHubEdges(ctx, personID); err != nil {
			return nil, err
		}
	} else {
		s.logger.Warn("No person record found, skipping hub edges")
	}

	s.logger.Info("Step 6: Inferring relationships...")
	for _, pair := range s.pairs {
		edges := pair.Matcher.InferEdges(loaded[pair.SourceLabel], loaded[pair.TargetLabel])
		graphEdges := make([]graph.Edge, 0, len(edges))
		for _, e := range edges {
			graphEdges = append(graphEdges, graph.Edge{
				FromLabel: pair.SourceLabel,
				FromID:    e.SourceID,
				Type:      pair.RelType,
				ToLabel:   pair.TargetLabel,
				ToID:      e.TargetID,
			})
		}
		if err := s.graph.CreateEdges(ctx, graphEdges); err != nil {
			return nil, err
		}
		s.logger.Info("Relationships inferred",
			zap.String("relation", pair.RelType),
			zap.String("from", pair.SourceLabel),
			zap.String("to", pair.TargetLabel),
			zap.Int("count", len(graphEdges)),
		)
	}

	s.logger.Info("Step 7: Grouping skills by category...")
	if err := s.graph.GroupSkillsByCategory(ctx); err != nil {
		return nil, err
	}

	nodes, edges, err := s.graph.CountNodesAndEdges(ctx)
	if err != nil {
		return nil, err
	}
	summary.Nodes = nodes
	summary.Edges = edges

	return summary, nil
}

// seedMongo purges each collection and bulk-inserts its dataset, returning
// the loaded records keyed by graph label for the graph phase. A missing
// dataset file leaves its collection empty; it is not an error.
func (s *Seeder) seedMongo(ctx context.Context, summary *Summary) (map[string][]Record, error) {
	loaded := map[string][]Record{}

	for _, ds := range Datasets {
		col := s.mongo.Collection(ds.Collection)
		if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
			return nil, fmt.Errorf("failed to purge collection %s: %w", ds.Collection, err)
		}

		var records []Record
		for _, filename := range ds.Files {
			path := filepath.Join(s.datasetsDir, filename)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			recs, err := LoadDataset(path)
			if err != nil {
				s.logger.Warn("Failed to load dataset file",
					zap.String("file", path),
					zap.Error(err),
				)
				continue
			}
			if len(recs) > 0 {
				records = recs
				s.logger.Info("Dataset loaded",
					zap.String("file", path),
					zap.Int("count", len(recs)),
				)
				break
			}
		}

		loaded[ds.Label] = records
		summary.Documents[ds.Collection] = len(records)

		if len(records) == 0 {
			s.logger.Warn("No dataset found, collection left empty", zap.String("collection", ds.Collection))
			continue
		}

		docs := make([]any, 0, len(records))
		for _, rec := range records {
			docs = append(docs, rec)
		}
		if _, err := col.InsertMany(ctx, docs); err != nil {
			return nil, fmt.Errorf("failed to insert into %s: %w", ds.Collection, err)
		}
		s.logger.Info("Documents inserted",
			zap.String("collection", ds.Collection),
			zap.Int("count", len(records)),
		)
	}

	return loaded, nil
}

func firstID(records []Record) string {
	if len(records) == 0 {
		return ""
	}
	return idString(records[0])
}
