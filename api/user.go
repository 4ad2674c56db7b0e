package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/helpmatch-api/schema"
	"github.com/campusconnect/helpmatch-api/store"
	"github.com/campusconnect/helpmatch-api/utils"
)

// currentUser returns the authenticated user's own profile.
func (s *Server) currentUser(c *gin.Context) {
	user, err := s.store.GetUser(c.GetString("userID"))
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// getUser returns a public profile.
func (s *Server) getUser(c *gin.Context) {
	user, err := s.store.GetUser(c.Param("userID"))
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// updateProfile patches the caller's profile fields.
func (s *Server) updateProfile(c *gin.Context) {
	var params struct {
		Name     *string  `json:"name"`
		Bio      *string  `json:"bio"`
		Tags     []string `json:"tags"`
		Timezone *string  `json:"timezone"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Name != nil && *params.Name == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if params.Timezone != nil && *params.Timezone != "" && !utils.ValidTimezone(*params.Timezone) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	update := store.UserProfileUpdate{
		Name:     params.Name,
		Bio:      params.Bio,
		Timezone: params.Timezone,
	}
	if params.Tags != nil {
		update.Tags = schema.FilterAllowedTags(params.Tags)
	}

	user, err := s.store.UpdateUserProfile(c.GetString("userID"), update, time.Now().UTC())
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
