package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/helpmatch-api/matching"
	"github.com/campusconnect/helpmatch-api/schema"
	"github.com/campusconnect/helpmatch-api/store"
)

// generateMatches recomputes the ranked shortlist for a request and
// reconciles it against stored matches. Progressed matches come back
// verbatim; the response is always in fresh rank order.
func (s *Server) generateMatches(c *gin.Context) {
	var params struct {
		RequestID string `json:"requestId"`
		TopN      int    `json:"topN"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.RequestID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	matches, err := matching.Generate(s.store, params.RequestID, matching.ClampTopN(params.TopN), time.Now().UTC())
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": params.RequestID,
		"matches":    matches,
	})
}

// matchesByRequest lists a request's stored matches, best score first.
func (s *Server) matchesByRequest(c *gin.Context) {
	requestID := c.Param("requestID")

	if _, err := s.store.GetRequest(requestID); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	matches, err := s.store.ListMatchesByRequest(requestID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"matches":    matches,
	})
}

// helperInbox lists the matches waiting on the caller as a helper.
func (s *Server) helperInbox(c *gin.Context) {
	matches, err := s.store.ListMatchesByHelper(c.GetString("userID"), []string{
		schema.MatchRequested,
		schema.MatchAccepted,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// requestMatch moves a suggested match to requested.
func (s *Server) requestMatch(c *gin.Context) {
	match, err := s.store.TransitionMatch(
		c.Param("matchID"),
		schema.MatchSuggested,
		schema.MatchRequested,
		nil,
		time.Now().UTC())
	if err != nil {
		s.abortTransition(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// respondMatch settles a requested match as accepted or declined. On
// accept the caller-supplied connection payload is attached (an empty one
// when omitted).
func (s *Server) respondMatch(c *gin.Context) {
	var params struct {
		Decision          string                    `json:"decision"`
		Action            string                    `json:"action"`
		ConnectionPayload *schema.ConnectionPayload `json:"connectionPayload"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	to, ok := matching.DecisionState(params.Decision, params.Action)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var payload *schema.ConnectionPayload
	if to == schema.MatchAccepted {
		payload = params.ConnectionPayload
	}

	match, err := s.store.TransitionMatch(
		c.Param("matchID"),
		schema.MatchRequested,
		to,
		payload,
		time.Now().UTC())
	if err != nil {
		s.abortTransition(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// abortTransition maps lifecycle failures onto the error taxonomy:
// missing match is a 404, a disallowed step is a 409 naming the current
// state, anything else is internal.
func (s *Server) abortTransition(c *gin.Context, err error) {
	if err == store.ErrMatchNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorMatchNotFound, err)
		return
	}
	if _, ok := err.(*matching.InvalidTransitionError); ok {
		abortWithEncoding(c, http.StatusConflict, conflictJSON(err), err)
		return
	}
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
}
