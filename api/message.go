package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusconnect/helpmatch-api/schema"
	"github.com/campusconnect/helpmatch-api/store"
)

// listMessages returns a connection's chat history in send order.
func (s *Server) listMessages(c *gin.Context) {
	matchID := c.Param("matchID")

	match, err := s.store.GetMatch(matchID)
	if err != nil {
		if err == store.ErrMatchNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorMatchNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if c.GetString("userID") != match.RequesterID && c.GetString("userID") != match.HelperID {
		abortWithEncoding(c, http.StatusForbidden, errorSenderNotParticipant)
		return
	}

	messages, err := s.store.ListMessages(matchID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// postMessage appends a chat message to an accepted connection. Only the
// two participants may write, and only once the helper has accepted.
func (s *Server) postMessage(c *gin.Context) {
	matchID := c.Param("matchID")
	senderID := c.GetString("userID")

	var params struct {
		Text string `json:"text"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	text := strings.TrimSpace(params.Text)
	if text == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	match, err := s.store.GetMatch(matchID)
	if err != nil {
		if err == store.ErrMatchNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorMatchNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if match.State != schema.MatchAccepted {
		abortWithEncoding(c, http.StatusConflict, errorConnectionNotOpen)
		return
	}

	var role string
	switch senderID {
	case match.RequesterID:
		role = schema.RoleRequester
	case match.HelperID:
		role = schema.RoleHelper
	default:
		abortWithEncoding(c, http.StatusForbidden, errorSenderNotParticipant)
		return
	}

	now := time.Now().UTC()
	message := schema.ConnectionMessage{
		ID:         uuid.New().String(),
		MatchID:    matchID,
		SenderID:   senderID,
		SenderRole: role,
		Text:       text,
		CreatedAt:  now,
	}

	if err := s.store.CreateMessage(message); shouldInterupt(err, c) {
		return
	}

	if err := s.store.TouchMatch(matchID, now); err != nil {
		log.WithError(err).Warn("bump match updated_at")
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
