package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/service"
	"github.com/maxviazov/studio-backoffice/pkg/response"
)

// ResourceHandler serves the list and single-record endpoints of one resource.
type ResourceHandler[T any] struct {
	name string
	svc  service.Lister[T]
}

func NewResourceHandler[T any](name string, svc service.Lister[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{name: name, svc: svc}
}

func (h *ResourceHandler[T]) Mount(r *gin.RouterGroup) {
	g := r.Group("/" + h.name)
	{
		g.GET("", h.list)
		g.GET("/:id", h.getByID)
	}
}

func (h *ResourceHandler[T]) list(c *gin.Context) {
	params := listquery.ParamsFromValues(c.Request.URL.Query())
	res, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *ResourceHandler[T]) getByID(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, item)
}
