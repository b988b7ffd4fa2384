package project

import (
	"context"

	"github.com/devfolio/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the slice of the project collection the service needs. The
// mongo-backed generic repository satisfies it; tests substitute an
// in-memory fake.
type Store interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Insert(ctx context.Context, doc *models.Project) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// scalar form fields written verbatim; list and date fields are handled
// separately because they need parsing.
var scalarFields = []string{"title", "summary", "repoLink", "liveLink", "githubUrl", "liveUrl"}

var listFields = []string{"techStack", "technologies", "links"}
