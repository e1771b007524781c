// README: Fixed deck payloads: root message, health, summary, voices, timeline.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridedeck/internal/modules/content"
)

type DeckHandler struct{}

func NewDeckHandler() *DeckHandler {
	return &DeckHandler{}
}

func (h *DeckHandler) Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"message": content.RootMessage})
}

func (h *DeckHandler) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

func (h *DeckHandler) Summary(c *gin.Context) {
	writeJSON(c, http.StatusOK, content.GetSummary())
}

func (h *DeckHandler) Voices(c *gin.Context) {
	writeJSON(c, http.StatusOK, content.GetVoices())
}

func (h *DeckHandler) Timeline(c *gin.Context) {
	writeJSON(c, http.StatusOK, content.GetTimeline())
}
