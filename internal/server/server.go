package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agenthands/thread/internal/config"
	"github.com/agenthands/thread/internal/core"
	"github.com/agenthands/thread/internal/core/model"
	"github.com/agenthands/thread/internal/registry"
)

// Discoverer is satisfied by *core.Walker.
type Discoverer interface {
	DiscoverAssociations(ctx context.Context, seed string, maxDepth int) (model.AssociationGraph, error)
	GetCompanyInfo(ctx context.Context, companyNumber string) (model.Record, error)
}

var _ Discoverer = (*core.Walker)(nil)

type Server struct {
	Walker      Discoverer
	Discovery   config.DiscoveryConfig
	IDGenerator func() string
}

func NewServer(walker Discoverer, discovery config.DiscoveryConfig) *Server {
	return &Server{
		Walker:      walker,
		Discovery:   discovery,
		IDGenerator: func() string { return uuid.New().String() },
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.GET("/companies/:number", s.GetCompany)
	r.GET("/companies/:number/associations", s.GetAssociations)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) GetCompany(c *gin.Context) {
	number := c.Param("number")

	info, err := s.Walker.GetCompanyInfo(c.Request.Context(), number)
	if err != nil {
		log.Printf("Failed to get company %s: %v", number, err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}

type AssociationsQuery struct {
	Depth *int `form:"depth" binding:"omitempty,min=0"`
}

type AssociationsResponse struct {
	DiscoveryID string           `json:"discovery_id"`
	Seed        string           `json:"seed"`
	MaxDepth    int              `json:"max_depth"`
	Levels      map[int][]string `json:"levels"`
}

func (s *Server) GetAssociations(c *gin.Context) {
	var q AssociationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid depth"})
		return
	}

	depth := s.Discovery.DefaultDepth
	if q.Depth != nil {
		depth = *q.Depth
	}
	if depth > s.Discovery.MaxDepth {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("depth must be at most %d", s.Discovery.MaxDepth)})
		return
	}

	id := s.IDGenerator()
	seed := c.Param("number")

	graph, err := s.Walker.DiscoverAssociations(c.Request.Context(), seed, depth)
	if err != nil {
		log.Printf("Discovery %s for %s failed: %v", id, seed, err)
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "discovery_id": id})
		return
	}

	c.JSON(http.StatusOK, AssociationsResponse{
		DiscoveryID: id,
		Seed:        seed,
		MaxDepth:    depth,
		Levels:      graph.Levels(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrRateLimited):
		return http.StatusServiceUnavailable
	case errors.Is(err, registry.ErrUnauthorized), errors.Is(err, registry.ErrMalformedResponse):
		return http.StatusBadGateway
	case errors.Is(err, core.ErrEmptySeed), errors.Is(err, core.ErrInvalidDepth):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
