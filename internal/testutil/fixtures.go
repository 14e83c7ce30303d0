package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/brightforge/studiohub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// SeedHero inserts a hero document with representative content.
func (f *Fixtures) SeedHero(ctx context.Context) models.HeroContent {
	f.t.Helper()

	now := time.Now().UTC()
	hero := models.HeroContent{
		ID:          primitive.NewObjectID(),
		Headline1:   "We craft digital",
		Headline2:   "experiences",
		Description: "A studio for ambitious brands.",
		PrimaryCTA:  models.CTA{Text: "Start a project", Href: "/contact"},
		SecondaryCTA: models.CTA{
			Text: "See our work",
			Href: "/work",
		},
		UpdatedAt: &now,
	}

	if _, err := f.db.Collection("hero_content").InsertOne(ctx, hero); err != nil {
		f.t.Fatalf("failed to seed hero content: %v", err)
	}
	return hero
}

// SeedAbout inserts an about document with representative content.
func (f *Fixtures) SeedAbout(ctx context.Context) models.AboutContent {
	f.t.Helper()

	now := time.Now().UTC()
	about := models.AboutContent{
		ID:             primitive.NewObjectID(),
		Label:          "About us",
		Title:          "A team of",
		TitleHighlight: "makers",
		Paragraphs:     []string{"<p>We design and build.</p>"},
		GraphicText:    "10+",
		GraphicSubtext: "years shipping",
		Images:         []string{"/img/studio.jpg"},
		PartnerLogos:   []string{"/img/partner-one.svg"},
		UpdatedAt:      &now,
	}

	if _, err := f.db.Collection("about_content").InsertOne(ctx, about); err != nil {
		f.t.Fatalf("failed to seed about content: %v", err)
	}
	return about
}

// CreateProject inserts a project with the given id, title, and order.
func (f *Fixtures) CreateProject(ctx context.Context, id int, title string, order int) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	project := models.Project{
		ID:          id,
		Title:       title,
		Category:    "Web",
		Description: "Test project description",
		Year:        now.Year(),
		Image:       "/img/project.jpg",
		Tech:        []string{"Go", "MongoDB"},
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, project); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateMember inserts a team member with the given id and name.
func (f *Fixtures) CreateMember(ctx context.Context, id int, name string) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	member := models.Member{
		ID:        id,
		Name:      name,
		Role:      "Engineer",
		Image:     "/img/member.jpg",
		CreatedAt: now,
		UpdatedAt: &now,
	}

	if _, err := f.db.Collection("members").InsertOne(ctx, member); err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

// SeedServices inserts a services document with two categories and three
// services so id allocation and category lookups have something to chew on.
func (f *Fixtures) SeedServices(ctx context.Context) models.ServicesDocument {
	f.t.Helper()

	now := time.Now().UTC()
	doc := models.ServicesDocument{
		ID:      primitive.NewObjectID(),
		Version: 1,
		Categories: []models.ServiceCategory{
			{
				ID:    "engineering",
				Title: "Engineering",
				Services: []models.Service{
					{ID: 1, Title: "Web apps", Description: "Full-stack builds", Icon: "code", Featured: true},
					{ID: 2, Title: "Mobile", Description: "iOS and Android", Icon: "mobile"},
				},
			},
			{
				ID:    "design",
				Title: "Design",
				Services: []models.Service{
					{ID: 3, Title: "Brand", Description: "Identity systems", Icon: "design"},
				},
			},
		},
		UpdatedAt: &now,
	}

	if _, err := f.db.Collection("services").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to seed services: %v", err)
	}
	return doc
}
