package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/kinetic-backend/internal/http/response"
	"github.com/yungbote/kinetic-backend/internal/services"
)

type MusicHandler struct {
	music services.MusicResolver
}

func NewMusicHandler(music services.MusicResolver) *MusicHandler {
	return &MusicHandler{music: music}
}

// GET /api/music/tracks
func (h *MusicHandler) ListTracks(c *gin.Context) {
	tracks, err := h.music.Catalog(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err, "list_tracks_failed")
		return
	}
	response.RespondOK(c, gin.H{"tracks": tracks})
}
