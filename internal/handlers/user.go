package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/registry-dev/registry/internal/store"
	"github.com/registry-dev/registry/internal/utils"
	"gorm.io/gorm"
)

type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{users: store.NewUserStore(db)}
}

type userRequest struct {
	Name   optString     `json:"name"`
	Emails optStringList `json:"emails"`
	Phones optStringList `json:"phones"`
}

func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.users.List(ctx.Request.Context())

	if err != nil {
		respondStoreError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := h.users.Get(ctx.Request.Context(), id, false)

	if err != nil {
		respondStoreError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var req userRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if !req.Name.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name is required and must be a non-empty string"})
		return
	}

	// A null array is tolerated on create and means "no entries"; only a
	// non-array value is rejected.
	if req.Emails.set && !req.Emails.null && req.Emails.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "emails must be an array of strings"})
		return
	}

	if req.Phones.set && !req.Phones.null && req.Phones.invalid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "phones must be an array of strings"})
		return
	}

	user, err := h.users.Create(ctx.Request.Context(), req.Name.trimmed(), req.Emails.items, req.Phones.items)

	if err != nil {
		respondStoreError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req userRequest

	if !bindJSON(ctx, &req) {
		return
	}

	if req.Name.set && !req.Name.requiredOK() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name must be a non-empty string"})
		return
	}

	if req.Emails.set && (req.Emails.null || req.Emails.invalid) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "emails must be an array of strings"})
		return
	}

	if req.Phones.set && (req.Phones.null || req.Phones.invalid) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "phones must be an array of strings"})
		return
	}

	var ch store.UserChanges

	if req.Name.set {
		name := req.Name.trimmed()
		ch.Name = &name
	}

	if req.Emails.set {
		emails := req.Emails.cleaned()
		ch.Emails = &emails
	}

	if req.Phones.set {
		phones := req.Phones.cleaned()
		ch.Phones = &phones
	}

	user, err := h.users.Update(ctx.Request.Context(), id, ch)

	if err != nil {
		respondStoreError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if err := h.users.Delete(ctx.Request.Context(), id); err != nil {
		respondStoreError(ctx, err, "User not found")
		return
	}

	ctx.Status(http.StatusNoContent)
}
