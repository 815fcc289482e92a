package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const jsonContentType = "application/json; charset=utf-8"

// Every response uses the {data, meta?} / {error, fields?} envelope.

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func newMeta(page, limit int, total int64) Meta {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Meta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func parsePagination(c *gin.Context) (page, limit int) {
	page, limit = 1, defaultPageLimit
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// Only the default first-page render is cached, so a single key per view is
// enough for the mutation handlers to invalidate.
func cacheablePage(page, limit int) bool {
	return page == 1 && limit == defaultPageLimit
}

// serveListFromCache replays a cached list render; it reports whether the
// response was written.
func serveListFromCache(c *gin.Context, view string, page, limit int) bool {
	if !cacheablePage(page, limit) {
		return false
	}
	cached, ok := services.GetCachedView(c.Request.Context(), view, currentUserID(c))
	if !ok {
		return false
	}
	c.Data(http.StatusOK, jsonContentType, cached)
	return true
}

// respondCachedPage writes the {data, meta} envelope and stores the rendered
// payload under the view's cache key when the pagination is cacheable.
func respondCachedPage(c *gin.Context, view string, page, limit int, data any, meta Meta) {
	payload, err := json.Marshal(gin.H{"data": data, "meta": meta})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if cacheablePage(page, limit) {
		services.SetCachedView(c.Request.Context(), view, currentUserID(c), payload)
	}
	c.Data(http.StatusOK, jsonContentType, payload)
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// respondValidation reports which fields failed and why, distinct from
// not-found and authorization failures.
func respondValidation(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fmt.Sprintf("failed %q validation", fe.Tag())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondServiceError maps service sentinels to the uniform status codes and
// collapses anything unexpected into an opaque 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrWrongTarget):
		respondError(c, http.StatusForbidden, "wrong target")
	case errors.Is(err, services.ErrAlreadyProcessed):
		respondError(c, http.StatusGone, "already processed")
	case errors.Is(err, services.ErrRequestExpired):
		respondError(c, http.StatusGone, "request expired")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}
