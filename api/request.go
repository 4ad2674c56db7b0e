package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusconnect/helpmatch-api/matching"
	"github.com/campusconnect/helpmatch-api/schema"
	"github.com/campusconnect/helpmatch-api/store"
	"github.com/campusconnect/helpmatch-api/tagging"
)

// createRequest stores a new help request. When the requester supplies no
// tags the suggestion chain enriches them from the description; a failed
// enrichment never fails the request.
func (s *Server) createRequest(c *gin.Context) {
	requesterID := c.GetString("userID")

	var params struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Urgency     string   `json:"urgency"`
		Format      string   `json:"format"`
		Tags        []string `json:"tags"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	title := strings.TrimSpace(params.Title)
	if title == "" || !schema.ValidUrgency(params.Urgency) || !schema.ValidFormat(params.Format) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if _, err := s.store.GetUser(requesterID); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	reqTags := schema.FilterAllowedTags(params.Tags)
	if len(reqTags) == 0 {
		if result, err := s.suggester.Suggest(c.Request.Context(), params.Description, tagging.DefaultMaxTags); err == nil {
			reqTags = result.Tags
		}
	}

	now := time.Now().UTC()
	request := schema.HelpRequest{
		ID:          uuid.New().String(),
		RequesterID: requesterID,
		Title:       title,
		Description: strings.TrimSpace(params.Description),
		Urgency:     params.Urgency,
		Format:      params.Format,
		Tags:        reqTags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateRequest(request); shouldInterupt(err, c) {
		return
	}

	// pre-compute the shortlist off the request path; the generate route
	// stays available for an immediate synchronous run
	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "generate_matches",
			Args: []tasks.Arg{
				{Type: "string", Value: request.ID},
				{Type: "int64", Value: int64(matching.DefaultTopN)},
			},
		}); err != nil {
			log.WithError(err).Warn("enqueue generate_matches")
		}
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// getRequest returns one help request.
func (s *Server) getRequest(c *gin.Context) {
	request, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// listMyRequests returns the caller's help requests, newest first.
func (s *Server) listMyRequests(c *gin.Context) {
	requests, err := s.store.ListRequestsByRequester(c.GetString("userID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
