package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/registry-dev/registry/internal/store"
	"gorm.io/gorm"
)

// TypeHandler serves the read-only reference data: project and publication
// types have no write routes.
type TypeHandler struct {
	projectTypes     *store.ProjectTypeStore
	publicationTypes *store.PublicationTypeStore
}

func NewTypeHandler(db *gorm.DB) *TypeHandler {
	return &TypeHandler{
		projectTypes:     store.NewProjectTypeStore(db),
		publicationTypes: store.NewPublicationTypeStore(db),
	}
}

func (h *TypeHandler) ListProjectTypes(ctx *gin.Context) {
	types, err := h.projectTypes.List(ctx.Request.Context())

	if err != nil {
		respondStoreError(ctx, err, "Project type not found")
		return
	}

	ctx.JSON(http.StatusOK, types)
}

func (h *TypeHandler) ListPublicationTypes(ctx *gin.Context) {
	types, err := h.publicationTypes.List(ctx.Request.Context())

	if err != nil {
		respondStoreError(ctx, err, "Publication type not found")
		return
	}

	ctx.JSON(http.StatusOK, types)
}
