package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/kinetic-backend/internal/http/response"
	"github.com/yungbote/kinetic-backend/internal/modules/motiongraph"
	"github.com/yungbote/kinetic-backend/internal/platform/apierr"
	"github.com/yungbote/kinetic-backend/internal/platform/logger"
	"github.com/yungbote/kinetic-backend/internal/services"
)

const maxBodyBytes = 1 << 20

type VideoHandler struct {
	log   *logger.Logger
	video services.VideoService
}

func NewVideoHandler(log *logger.Logger, video services.VideoService) *VideoHandler {
	return &VideoHandler{log: log.With("handler", "VideoHandler"), video: video}
}

// POST /api/videos/graphic-motion
func (h *VideoHandler) CreateGraphicMotion(c *gin.Context) {
	var req services.GraphicMotionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.video.GraphicMotion(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "graphic_motion_failed")
		return
	}
	c.JSON(http.StatusAccepted, res)
}

// POST /api/videos/graphic-motion/preview[?format=yaml]
func (h *VideoHandler) PreviewGraphicMotion(c *gin.Context) {
	var req services.GraphicMotionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.video.Preview(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "preview_failed")
		return
	}
	c.Header("X-Scene-Source", string(res.Source))
	if strings.EqualFold(c.Query("format"), "yaml") {
		body, err := motiongraph.EncodeYAML(res.Timeline)
		if err != nil {
			response.RespondAPIError(c, apierr.Internal("encode_failed", err), "encode_failed")
			return
		}
		c.Data(http.StatusOK, "application/yaml", body)
		return
	}
	response.RespondOK(c, res.Timeline)
}

// POST /api/videos/graphic-motion/storyboard
func (h *VideoHandler) StoryboardGraphicMotion(c *gin.Context) {
	var req services.GraphicMotionRequest
	if !bindJSON(c, &req) {
		return
	}
	png, err := h.video.Storyboard(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "storyboard_failed")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// POST /api/videos/captions
func (h *VideoHandler) CreateCaptions(c *gin.Context) {
	var req services.CaptionsRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.video.Captions(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "captions_failed")
		return
	}
	c.JSON(http.StatusAccepted, res)
}

// GET /api/videos/projects/:projectId/runs?limit=N
func (h *VideoHandler) ListProjectRuns(c *gin.Context) {
	limit := 20
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = n
	}
	runs, err := h.video.ListRuns(c.Request.Context(), c.Param("projectId"), limit)
	if err != nil {
		respondServiceError(c, err, "list_runs_failed")
		return
	}
	response.RespondOK(c, gin.H{"runs": runs})
}

func bindJSON(c *gin.Context, dst any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return false
	}
	return true
}

func respondServiceError(c *gin.Context, err error, fallbackCode string) {
	if errors.Is(err, services.ErrInvalidRequest) {
		response.RespondAPIError(c, apierr.BadRequest("invalid_request", err), fallbackCode)
		return
	}
	response.RespondAPIError(c, err, fallbackCode)
}
