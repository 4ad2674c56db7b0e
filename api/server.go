package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/campusconnect/helpmatch-api/logmodule"
	"github.com/campusconnect/helpmatch-api/store"
	"github.com/campusconnect/helpmatch-api/tagging"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.HelpmatchStore

	// Tag suggestion chain (model first, heuristic fallback)
	suggester tagging.Suggester

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	helpmatchStore store.HelpmatchStore,
	suggester tagging.Suggester,
	jwtKey *rsa.PrivateKey,
	backgroundEnqueuer *machinery.Server) *Server {
	return &Server{
		store:         helpmatchStore,
		suggester:     suggester,
		jwtPrivateKey: jwtKey,
		background:    backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/signup", s.signup)
		authRoute.POST("/login", s.login)
	}

	// everything below requires a JWT
	apiRoute.Use(s.authMiddleware())

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/me", s.currentUser)
		userRoute.PATCH("/me", s.updateProfile)
		userRoute.GET("/:userID", s.getUser)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listMyRequests)
		requestRoute.GET("/:requestID", s.getRequest)
	}

	matchRoute := apiRoute.Group("/matches")
	{
		matchRoute.POST("/generate", s.generateMatches)
		matchRoute.GET("/by-request/:requestID", s.matchesByRequest)
		matchRoute.GET("/inbox", s.helperInbox)
		matchRoute.POST("/:matchID/request", s.requestMatch)
		matchRoute.POST("/:matchID/respond", s.respondMatch)
	}

	connectionRoute := apiRoute.Group("/connections")
	{
		connectionRoute.GET("/:matchID/messages", s.listMessages)
		connectionRoute.POST("/:matchID/messages", s.postMessage)
	}

	tagRoute := apiRoute.Group("/tags")
	{
		tagRoute.POST("/suggest", s.suggestTags)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
