package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/registry-dev/registry/internal/models"
	"github.com/registry-dev/registry/internal/store"
	"github.com/registry-dev/registry/internal/utils"
	"gorm.io/gorm"
)

type LibraryHandler struct {
	items *store.LibraryStore
}

func NewLibraryHandler(db *gorm.DB) *LibraryHandler {
	return &LibraryHandler{items: store.NewLibraryStore(db)}
}

type libraryItemRequest struct {
	Author       optString `json:"author"`
	Title        optString `json:"title"`
	Organization optString `json:"organization"`
}

func (h *LibraryHandler) List(ctx *gin.Context) {
	items, err := h.items.List(ctx.Request.Context())

	if err != nil {
		respondStoreError(ctx, err, "Item not found")
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *LibraryHandler) Get(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	item, err := h.items.Get(ctx.Request.Context(), id, false)

	if err != nil {
		respondStoreError(ctx, err, "Item not found")
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (h *LibraryHandler) Create(ctx *gin.Context) {
	var req libraryItemRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if !req.Author.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "author is required and must be a non-empty string"})
		return
	}

	if !req.Title.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title is required and must be a non-empty string"})
		return
	}

	if req.Organization.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "organization must be a string or null"})
		return
	}

	item := models.ELibraryItem{
		Author:       req.Author.trimmed(),
		Title:        req.Title.trimmed(),
		Organization: req.Organization.clean(),
	}

	created, err := h.items.Create(ctx.Request.Context(), &item)

	if err != nil {
		respondStoreError(ctx, err, "Item not found")
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (h *LibraryHandler) Update(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req libraryItemRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if req.Author.set && !req.Author.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "author must be a non-empty string"})
		return
	}

	if req.Title.set && !req.Title.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title must be a non-empty string"})
		return
	}

	if req.Organization.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "organization must be a string or null"})
		return
	}

	var ch store.LibraryItemChanges

	if req.Author.set {
		author := req.Author.trimmed()
		ch.Author = &author
	}

	if req.Title.set {
		title := req.Title.trimmed()
		ch.Title = &title
	}

	if req.Organization.set {
		ch.Organization = store.Optional[string]{Set: true, Value: req.Organization.clean()}
	}

	item, err := h.items.Update(ctx.Request.Context(), id, ch)

	if err != nil {
		respondStoreError(ctx, err, "Item not found")
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (h *LibraryHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if err := h.items.Delete(ctx.Request.Context(), id); err != nil {
		respondStoreError(ctx, err, "Item not found")
		return
	}

	ctx.Status(http.StatusNoContent)
}
