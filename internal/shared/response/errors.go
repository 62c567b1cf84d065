package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-library-backend/internal/shared/repository"
)

// FromError translates a repository failure to its HTTP equivalent: unique
// violations become 409s, other constraint violations 400s, anything else
// is a 500.
func FromError(c *gin.Context, err error) {
	var cv *repository.ConstraintViolation
	if errors.As(err, &cv) {
		if cv.Code == "23505" {
			Conflict(c, err.Error())
			return
		}
		BadRequest(c, err.Error())
		return
	}
	InternalServerError(c, err.Error())
}
