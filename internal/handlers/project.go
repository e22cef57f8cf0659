package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/registry-dev/registry/internal/models"
	"github.com/registry-dev/registry/internal/store"
	"github.com/registry-dev/registry/internal/utils"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projects *store.ProjectStore
	types    *store.ProjectTypeStore
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projects: store.NewProjectStore(db),
		types:    store.NewProjectTypeStore(db),
	}
}

type projectRequest struct {
	StartDate   optDate   `json:"startDate"`
	EndDate     optDate   `json:"endDate"`
	Description optString `json:"description"`
	WebsiteURL  optString `json:"websiteUrl"`
	TypeID      optInt    `json:"typeId"`
	TypeName    optString `json:"typeName"`
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	projects, err := h.projects.List(ctx.Request.Context())

	if err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) ListByType(ctx *gin.Context) {
	typeID, err := utils.GetIDParam(ctx, "typeId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type id"})
		return
	}

	if _, err := h.types.Get(ctx.Request.Context(), typeID); err != nil {
		respondStoreError(ctx, err, "Project type not found")
		return
	}

	projects, err := h.projects.ListByType(ctx.Request.Context(), typeID)

	if err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	project, err := h.projects.Get(ctx.Request.Context(), id, false)

	if err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var req projectRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if !req.StartDate.dateOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "startDate is required and must be a valid date"})
		return
	}

	if !req.Description.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "description is required and must be a non-empty string"})
		return
	}

	var endDate *time.Time

	if req.EndDate.set && !req.EndDate.null {
		if req.EndDate.invalid {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be a valid date (or null)"})
			return
		}
		endDate = &req.EndDate.value
	}

	if endDate != nil && endDate.Before(req.StartDate.value) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "endDate cannot be earlier than startDate"})
		return
	}

	if req.WebsiteURL.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "websiteUrl must be a string (or null / omit it)"})
		return
	}

	typeID, ok := h.resolveType(ctx, req, true)

	if !ok {
		return
	}

	project := models.Project{
		StartDate:   req.StartDate.value,
		EndDate:     endDate,
		Description: req.Description.trimmed(),
		WebsiteURL:  req.WebsiteURL.clean(),
		TypeID:      typeID,
	}

	created, err := h.projects.Create(ctx.Request.Context(), &project)

	if err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	var req projectRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if req.StartDate.set && !req.StartDate.dateOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be a valid date"})
		return
	}

	if req.EndDate.set && !req.EndDate.null && req.EndDate.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be a valid date (or null)"})
		return
	}

	if req.Description.set && !req.Description.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "description must be a non-empty string"})
		return
	}

	if req.WebsiteURL.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "websiteUrl must be a string (or null)"})
		return
	}

	existing, err := h.projects.Get(ctx.Request.Context(), id, false)

	if err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	// The date-order rule holds for the values the row would end up with,
	// not just the submitted delta.
	finalStart := existing.StartDate
	if req.StartDate.set {
		finalStart = req.StartDate.value
	}

	finalEnd := existing.EndDate
	if req.EndDate.set {
		if req.EndDate.null {
			finalEnd = nil
		} else {
			finalEnd = &req.EndDate.value
		}
	}

	if finalEnd != nil && finalEnd.Before(finalStart) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "endDate cannot be earlier than startDate"})
		return
	}

	var ch store.ProjectChanges

	if req.StartDate.set {
		ch.StartDate = &req.StartDate.value
	}

	if req.EndDate.set {
		ch.EndDate = store.Optional[time.Time]{Set: true, Value: finalEnd}
	}

	if req.Description.set {
		description := req.Description.trimmed()
		ch.Description = &description
	}

	if req.WebsiteURL.set {
		ch.WebsiteURL = store.Optional[string]{Set: true, Value: req.WebsiteURL.clean()}
	}

	if req.TypeID.set || req.TypeName.set {
		typeID, ok := h.resolveType(ctx, req, false)
		if !ok {
			return
		}
		ch.TypeID = &typeID
	}

	project, err := h.projects.Update(ctx.Request.Context(), id, ch)

	if err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	if err := h.projects.Delete(ctx.Request.Context(), id); err != nil {
		respondStoreError(ctx, err, "Project not found")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// resolveType turns the typeId/typeName pair into a live ProjectType id.
// Exactly one of the two forms may be supplied; on create one is mandatory.
// Responds on failure and reports ok=false.
func (h *ProjectHandler) resolveType(ctx *gin.Context, req projectRequest, required bool) (uint, bool) {
	hasTypeID := req.TypeID.set
	hasTypeName := req.TypeName.set

	if required && !hasTypeID && !hasTypeName {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Either typeId or typeName is required"})
		return 0, false
	}

	if hasTypeID && hasTypeName {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Provide only one of typeId or typeName (not both)"})
		return 0, false
	}

	if hasTypeID {
		if !req.TypeID.intOK() || req.TypeID.value <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "typeId must be an integer"})
			return 0, false
		}

		t, err := h.types.Get(ctx.Request.Context(), uint(req.TypeID.value))

		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid typeId (not found)"})
			} else {
				respondStoreError(ctx, err, "Project type not found")
			}
			return 0, false
		}

		return t.ID, true
	}

	if !req.TypeName.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "typeName must be a non-empty string"})
		return 0, false
	}

	t, err := h.types.GetByName(ctx.Request.Context(), req.TypeName.trimmed())

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid typeName (not found)"})
		} else {
			respondStoreError(ctx, err, "Project type not found")
		}
		return 0, false
	}

	return t.ID, true
}
