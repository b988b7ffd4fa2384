package certificate

import (
	"github.com/devfolio/core/internal/pkg/formdata"
	"github.com/devfolio/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/certificates")

	g.GET("", h.list)
	g.POST("", authMW, h.create)
	g.PUT("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	image, err := singleFile(c, "image")
	if err != nil {
		response.Error(c, err)
		return
	}

	cert, err := h.svc.Create(c.Request.Context(), image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cert)
}

func (h *Handler) update(c *gin.Context) {
	image, err := singleFile(c, "image")
	if err != nil {
		response.Error(c, err)
		return
	}

	cert, err := h.svc.Update(c.Request.Context(), c.Param("id"), image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cert)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "certificate deleted")
}

func singleFile(c *gin.Context, field string) (*formdata.File, error) {
	_, fileHeaders := formdata.Parse(c.Request)
	return formdata.SingleFile(fileHeaders, field)
}
