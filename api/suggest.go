package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/helpmatch-api/tagging"
)

// suggestTags proposes vocabulary tags for a piece of free text. The
// model is tried first and the deterministic heuristic covers for it, so
// the endpoint never fails on suggester trouble.
func (s *Server) suggestTags(c *gin.Context) {
	var params struct {
		Text    string `json:"text"`
		MaxTags int    `json:"maxTags"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(params.Text) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	max := params.MaxTags
	if max <= 0 {
		max = tagging.DefaultMaxTags
	}

	result, err := s.suggester.Suggest(c.Request.Context(), params.Text, max)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, result)
}
