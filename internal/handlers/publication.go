package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/registry-dev/registry/internal/models"
	"github.com/registry-dev/registry/internal/store"
	"github.com/registry-dev/registry/internal/utils"
	"gorm.io/gorm"
)

type PublicationHandler struct {
	publications *store.PublicationStore
	types        *store.PublicationTypeStore
	authors      *store.AuthorStore
}

func NewPublicationHandler(db *gorm.DB) *PublicationHandler {
	return &PublicationHandler{
		publications: store.NewPublicationStore(db),
		types:        store.NewPublicationTypeStore(db),
		authors:      store.NewAuthorStore(db),
	}
}

type publicationRequest struct {
	Year        optInt        `json:"year"`
	Title       optString     `json:"title"`
	Description optString     `json:"description"`
	TypeID      optInt        `json:"typeId"`
	Authors     optAuthorList `json:"authors"`
}

func (h *PublicationHandler) List(ctx *gin.Context) {
	pubs, err := h.publications.List(ctx.Request.Context())

	if err != nil {
		respondStoreError(ctx, err, "Publication not found")
		return
	}

	ctx.JSON(http.StatusOK, pubs)
}

func (h *PublicationHandler) ListByType(ctx *gin.Context) {
	typeID, err := utils.GetIDParam(ctx, "typeId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type id"})
		return
	}

	if _, err := h.types.Get(ctx.Request.Context(), typeID); err != nil {
		respondStoreError(ctx, err, "Publication type not found")
		return
	}

	pubs, err := h.publications.ListByType(ctx.Request.Context(), typeID)

	if err != nil {
		respondStoreError(ctx, err, "Publication not found")
		return
	}

	ctx.JSON(http.StatusOK, pubs)
}

func (h *PublicationHandler) Get(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publication id"})
		return
	}

	pub, err := h.publications.Get(ctx.Request.Context(), id, false)

	if err != nil {
		respondStoreError(ctx, err, "Publication not found")
		return
	}

	ctx.JSON(http.StatusOK, pub)
}

func (h *PublicationHandler) Create(ctx *gin.Context) {
	var req publicationRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if !req.Year.intOK() || req.Year.value == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year is required and must be an integer"})
		return
	}

	if !req.Title.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title is required and must be a non-empty string"})
		return
	}

	if req.Description.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "description must be a string (or null / omit)"})
		return
	}

	if !req.TypeID.intOK() || req.TypeID.value <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "typeId is required and must be an integer"})
		return
	}

	if req.Authors.set && req.Authors.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "authors must be an array of { authorId: int, order?: int }"})
		return
	}

	links := buildAuthorLinks(req.Authors.items)

	typeID := uint(req.TypeID.value)

	if _, err := h.types.Get(ctx.Request.Context(), typeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid typeId (not found)"})
		} else {
			respondStoreError(ctx, err, "Publication type not found")
		}
		return
	}

	if !h.checkAuthorsExist(ctx, links) {
		return
	}

	pub := models.Publication{
		Year:        req.Year.value,
		Title:       req.Title.trimmed(),
		Description: req.Description.clean(),
		TypeID:      typeID,
	}

	created, err := h.publications.Create(ctx.Request.Context(), &pub, links)

	if err != nil {
		respondStoreError(ctx, err, "Publication not found")
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (h *PublicationHandler) Update(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publication id"})
		return
	}

	var req publicationRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if req.Year.set && (!req.Year.intOK() || req.Year.value == 0) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	if req.Title.set && !req.Title.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title must be a non-empty string"})
		return
	}

	if req.Description.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "description must be a string (or null)"})
		return
	}

	if req.TypeID.set && (!req.TypeID.intOK() || req.TypeID.value <= 0) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "typeId must be an integer"})
		return
	}

	if req.Authors.set && req.Authors.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "authors must be an array of { authorId: int, order?: int }"})
		return
	}

	if _, err := h.publications.Get(ctx.Request.Context(), id, false); err != nil {
		respondStoreError(ctx, err, "Publication not found")
		return
	}

	var ch store.PublicationChanges

	if req.Year.set {
		ch.Year = &req.Year.value
	}

	if req.Title.set {
		title := req.Title.trimmed()
		ch.Title = &title
	}

	if req.Description.set {
		ch.Description = store.Optional[string]{Set: true, Value: req.Description.clean()}
	}

	if req.TypeID.set {
		typeID := uint(req.TypeID.value)

		if _, err := h.types.Get(ctx.Request.Context(), typeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid typeId (not found)"})
			} else {
				respondStoreError(ctx, err, "Publication type not found")
			}
			return
		}

		ch.TypeID = &typeID
	}

	// A present authors array, even an empty one, replaces the whole link
	// set. Omitting the field leaves the existing links untouched.
	if req.Authors.set {
		links := buildAuthorLinks(req.Authors.items)

		if !h.checkAuthorsExist(ctx, links) {
			return
		}

		ch.Authors = &links
	}

	pub, err := h.publications.Update(ctx.Request.Context(), id, ch)

	if err != nil {
		respondStoreError(ctx, err, "Publication not found")
		return
	}

	ctx.JSON(http.StatusOK, pub)
}

func (h *PublicationHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publication id"})
		return
	}

	if err := h.publications.Delete(ctx.Request.Context(), id); err != nil {
		respondStoreError(ctx, err, "Publication not found")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// buildAuthorLinks assigns each entry its submitted order, falling back to
// the 1-based position in the array.
func buildAuthorLinks(items []authorLinkInput) []store.AuthorLink {
	links := make([]store.AuthorLink, 0, len(items))

	for i, a := range items {
		order := i + 1
		if a.Order != nil {
			order = *a.Order
		}
		links = append(links, store.AuthorLink{AuthorID: uint(a.AuthorID), Order: order})
	}

	return links
}

// checkAuthorsExist verifies every distinct referenced author resolves to a
// live row; the whole operation is rejected before any write otherwise.
// Responds on failure.
func (h *PublicationHandler) checkAuthorsExist(ctx *gin.Context, links []store.AuthorLink) bool {
	if len(links) == 0 {
		return true
	}

	distinct := []uint{}
	seen := map[uint]bool{}

	for _, l := range links {
		if seen[l.AuthorID] {
			continue
		}
		seen[l.AuthorID] = true
		distinct = append(distinct, l.AuthorID)
	}

	n, err := h.authors.CountLive(ctx.Request.Context(), distinct)

	if err != nil {
		respondStoreError(ctx, err, "Author not found")
		return false
	}

	if n != int64(len(distinct)) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "One or more authorId are invalid (not found)"})
		return false
	}

	return true
}
