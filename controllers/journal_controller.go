package controllers

import (
	"net/http"
	"time"

	"healthtrack/services"

	"github.com/gin-gonic/gin"
)

type journalRequest struct {
	Body    string     `json:"body" binding:"required,max=10000"`
	NotedAt *time.Time `json:"noted_at"`
	Tags    []string   `json:"tags" binding:"dive,max=64"`
}

func (r journalRequest) input() services.JournalInput {
	notedAt := time.Now()
	if r.NotedAt != nil {
		notedAt = *r.NotedAt
	}
	return services.JournalInput{Body: r.Body, NotedAt: notedAt, Tags: r.Tags}
}

func ListJournalEntries(c *gin.Context) {
	page, limit := parsePagination(c)
	if serveListFromCache(c, services.ViewJournal, page, limit) {
		return
	}
	entries, total, err := services.ListJournalEntries(currentUserID(c), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCachedPage(c, services.ViewJournal, page, limit, entries, newMeta(page, limit, total))
}

func GetJournalEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entry, err := services.GetJournalEntry(currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, entry)
}

func CreateJournalEntry(c *gin.Context) {
	var body journalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	entry, err := services.CreateJournalEntry(userID, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.EmitUsage(userID, "journal.created")
	services.InvalidateViews(userID, services.ViewJournal)
	respondData(c, http.StatusCreated, entry)
}

func UpdateJournalEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body journalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, err)
		return
	}

	userID := currentUserID(c)
	entry, err := services.UpdateJournalEntry(userID, id, body.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewJournal)
	respondData(c, http.StatusOK, entry)
}

func DeleteJournalEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	if err := services.DeleteJournalEntry(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	services.InvalidateViews(userID, services.ViewJournal)
	respondData(c, http.StatusOK, gin.H{"id": id})
}
