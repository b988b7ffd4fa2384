package auth

import (
	"context"
	"errors"

	"github.com/devfolio/core/internal/models"
	"github.com/devfolio/core/internal/pkg/jwt"
	"github.com/devfolio/core/internal/pkg/repo"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// AdminStore is the slice of the admin collection the service needs.
type AdminStore interface {
	FindOne(ctx context.Context, filter bson.M) (*models.Admin, error)
}

type Service struct {
	admins AdminStore
}

func NewService(admins AdminStore) *Service {
	return &Service{admins: admins}
}

// Login verifies the credential pair and issues a bearer token. Reads the
// admin collection and nothing else; no session state is kept server-side.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.admins.FindOne(ctx, bson.M{"username": username})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return jwt.Sign(admin.ID.Hex(), admin.Username, admin.Role)
}
