package auth

import (
	"errors"

	"github.com/devfolio/core/internal/database"
	"github.com/devfolio/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.login)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil || dto.Username == "" || dto.Password == "" {
		response.BadRequest(c, "username and password required")
		return
	}

	token, err := h.svc.Login(c.Request.Context(), dto.Username, dto.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(c)
		case errors.Is(err, database.ErrUnreachable):
			response.Unavailable(c, "database connection failed")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, loginResponse{Token: token})
}
