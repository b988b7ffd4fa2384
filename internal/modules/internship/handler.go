package internship

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
	g := rg.Group("/internships")

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
	cert, err := formdata.SingleFile(fileHeaders, "certificate")
	if err != nil {
		response.Error(c, err)
		return
	}

	in, err := h.svc.Create(c.Request.Context(), fields, cert)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, in)
}

func (h *Handler) update(c *gin.Context) {
	fields, fileHeaders := formdata.Parse(c.Request)
	cert, err := formdata.SingleFile(fileHeaders, "certificate")
	if err != nil {
		response.Error(c, err)
		return
	}

	in, err := h.svc.Update(c.Request.Context(), c.Param("id"), fields, cert)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, in)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "internship deleted")
}
