package response

import (
	"errors"

	"github.com/devfolio/core/internal/database"
	"github.com/devfolio/core/internal/pkg/apperr"
	"github.com/devfolio/core/internal/pkg/repo"
	"github.com/gin-gonic/gin"
)

// Error maps a service error onto the HTTP taxonomy: validation → 400,
// missing record → 404, unreachable store → 503, anything else → 500.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, repo.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, database.ErrUnreachable):
		Unavailable(c, "database connection failed")
	default:
		InternalError(c, err)
	}
}
