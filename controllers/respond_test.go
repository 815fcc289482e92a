package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/plans"+query, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	page, limit := parsePagination(testContext(t, ""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}

func TestParsePagination(t *testing.T) {
	page, limit := parsePagination(testContext(t, "?page=3&limit=50"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)
}

func TestParsePaginationCapsLimit(t *testing.T) {
	_, limit := parsePagination(testContext(t, "?limit=5000"))
	assert.Equal(t, 100, limit)
}

func TestParsePaginationRejectsGarbage(t *testing.T) {
	page, limit := parsePagination(testContext(t, "?page=-2&limit=abc"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}

func TestCacheablePage(t *testing.T) {
	assert.True(t, cacheablePage(1, defaultPageLimit))
	assert.False(t, cacheablePage(2, defaultPageLimit))
	assert.False(t, cacheablePage(1, 50))
}

func TestServeListFromCacheMiss(t *testing.T) {
	c := testContext(t, "")
	c.Set("userID", uint(1))

	// nothing cached, and non-default pagination never consults the cache
	assert.False(t, serveListFromCache(c, services.ViewPlans, 1, defaultPageLimit))
	assert.False(t, serveListFromCache(c, services.ViewPlans, 2, defaultPageLimit))
}

func TestRespondCachedPageEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/plans", nil)
	c.Set("userID", uint(1))

	respondCachedPage(c, services.ViewPlans, 1, defaultPageLimit, []string{"a"}, newMeta(1, defaultPageLimit, 1))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, jsonContentType, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":["a"],"meta":{"page":1,"limit":20,"total":1,"totalPages":1}}`, w.Body.String())
}

func TestNewMeta(t *testing.T) {
	meta := newMeta(2, 20, 45)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	assert.Equal(t, 0, newMeta(1, 20, 0).TotalPages)
	assert.Equal(t, 1, newMeta(1, 20, 20).TotalPages)
}
