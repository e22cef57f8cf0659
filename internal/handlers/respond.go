package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/registry-dev/registry/internal/store"
	"github.com/rs/zerolog/log"
)

// bindJSON decodes the request body into dest. An empty body is fine (the
// field types report everything as omitted); malformed JSON is answered here.
func bindJSON(ctx *gin.Context, dest interface{}) bool {
	if err := ctx.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return false
	}
	return true
}

// respondStoreError translates a store error into the uniform response shape:
// 404 with the entity message, 409 with the offending fields, 500 otherwise.
// Internal detail is logged, never returned.
func respondStoreError(ctx *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}

	var conflict *store.ConflictError
	if errors.As(err, &conflict) {
		ctx.JSON(http.StatusConflict, gin.H{
			"error":  "Unique constraint failed",
			"fields": conflict.Fields,
		})
		return
	}

	log.Error().Err(err).Str("path", ctx.FullPath()).Msg("unexpected store error")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
