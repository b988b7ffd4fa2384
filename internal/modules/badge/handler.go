package badge

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
	g := rg.Group("/badges")

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
	fields, fileHeaders := formdata.Parse(c.Request)
	image, err := formdata.SingleFile(fileHeaders, "image")
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.svc.Create(c.Request.Context(), fields, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, b)
}

func (h *Handler) update(c *gin.Context) {
	fields, fileHeaders := formdata.Parse(c.Request)
	image, err := formdata.SingleFile(fileHeaders, "image")
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.svc.Update(c.Request.Context(), c.Param("id"), fields, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "badge deleted")
}
