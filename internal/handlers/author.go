package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/registry-dev/registry/internal/models"
	"github.com/registry-dev/registry/internal/store"
	"github.com/registry-dev/registry/internal/utils"
	"gorm.io/gorm"
)

type AuthorHandler struct {
	authors *store.AuthorStore
}

func NewAuthorHandler(db *gorm.DB) *AuthorHandler {
	return &AuthorHandler{authors: store.NewAuthorStore(db)}
}

type authorRequest struct {
	FullName optString `json:"fullName"`
	Email    optString `json:"email"`
	Orcid    optString `json:"orcid"`
}

func (h *AuthorHandler) List(ctx *gin.Context) {
	authors, err := h.authors.List(ctx.Request.Context())

	if err != nil {
		respondStoreError(ctx, err, "Author not found")
		return
	}

	ctx.JSON(http.StatusOK, authors)
}

func (h *AuthorHandler) Get(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author id"})
		return
	}

	author, err := h.authors.Get(ctx.Request.Context(), id, false)

	if err != nil {
		respondStoreError(ctx, err, "Author not found")
		return
	}

	ctx.JSON(http.StatusOK, author)
}

func (h *AuthorHandler) Create(ctx *gin.Context) {
	var req authorRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if !req.FullName.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "fullName is required"})
		return
	}

	if req.Email.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email must be a string (or null)"})
		return
	}

	if req.Orcid.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "orcid must be a string (or null)"})
		return
	}

	author := models.Author{
		FullName: req.FullName.trimmed(),
		Email:    req.Email.clean(),
		Orcid:    req.Orcid.clean(),
	}

	created, err := h.authors.Create(ctx.Request.Context(), &author)

	if err != nil {
		respondStoreError(ctx, err, "Author not found")
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (h *AuthorHandler) Update(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author id"})
		return
	}

	var req authorRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if req.FullName.set && !req.FullName.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "fullName must be a non-empty string"})
		return
	}

	if req.Email.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email must be a string (or null)"})
		return
	}

	if req.Orcid.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "orcid must be a string (or null)"})
		return
	}

	var ch store.AuthorChanges

	if req.FullName.set {
		name := req.FullName.trimmed()
		ch.FullName = &name
	}

	if req.Email.set {
		ch.Email = store.Optional[string]{Set: true, Value: req.Email.clean()}
	}

	if req.Orcid.set {
		ch.Orcid = store.Optional[string]{Set: true, Value: req.Orcid.clean()}
	}

	author, err := h.authors.Update(ctx.Request.Context(), id, ch)

	if err != nil {
		respondStoreError(ctx, err, "Author not found")
		return
	}

	ctx.JSON(http.StatusOK, author)
}

func (h *AuthorHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author id"})
		return
	}

	if err := h.authors.Delete(ctx.Request.Context(), id); err != nil {
		respondStoreError(ctx, err, "Author not found")
		return
	}

	ctx.Status(http.StatusNoContent)
}
