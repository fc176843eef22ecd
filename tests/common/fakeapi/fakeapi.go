//go:build unit || e2e

// Package fakeapi is an in-process stand-in for the remote ordering
// service, used to exercise the gateway layer over real HTTP.
package fakeapi

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"lastbite-client/internal/domain/cart"
	"lastbite-client/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// Failure forces every subsequent request to fail with the given response.
type Failure struct {
	Status int
	Body   any
}

type Server struct {
	Engine *gin.Engine

	mu          sync.Mutex
	lines       cart.Lines
	restaurants map[int64]catalog.Restaurant
	listings    map[int64][]catalog.Listing
	failure     *Failure
	lastAuth    string
	requests    int
}

func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		Engine:      gin.New(),
		restaurants: make(map[int64]catalog.Restaurant),
		listings:    make(map[int64][]catalog.Listing),
	}

	s.Engine.Use(s.track)

	s.Engine.GET("/cart", s.getCart)
	s.Engine.POST("/cart", s.addItem)
	s.Engine.PUT("/cart", s.updateItem)
	s.Engine.DELETE("/cart/:id", s.removeItem)
	s.Engine.POST("/cart/reset", s.resetCart)

	s.Engine.GET("/restaurants/nearby", s.nearby)
	s.Engine.GET("/restaurants/:id", s.restaurantByID)
	s.Engine.GET("/restaurants/:id/listings", s.listingsByRestaurant)

	return s
}

func (s *Server) track(c *gin.Context) {
	s.mu.Lock()
	s.requests++
	s.lastAuth = c.GetHeader("Authorization")
	failure := s.failure
	s.mu.Unlock()

	if !strings.HasPrefix(s.lastAuth, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	if failure != nil {
		c.Abort()
		if failure.Body != nil {
			c.JSON(failure.Status, failure.Body)
		} else {
			c.String(failure.Status, "internal error")
		}
		return
	}
	c.Next()
}

// --- test controls ---

func (s *Server) SeedCart(lines cart.Lines) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(cart.Lines(nil), lines...)
}

func (s *Server) SeedRestaurant(r catalog.Restaurant, listings []catalog.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[r.ID] = r
	s.listings[r.ID] = listings
}

func (s *Server) FailWith(f *Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = f
}

func (s *Server) CartLines() cart.Lines {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(cart.Lines(nil), s.lines...)
}

func (s *Server) LastAuth() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth
}

func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// --- cart handlers ---

func (s *Server) getCart(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.lines
	if lines == nil {
		lines = cart.Lines{}
	}
	c.JSON(http.StatusOK, lines)
}

type itemRequest struct {
	ListingID int64 `json:"listing_id"`
	Count     int   `json:"count"`
}

func (s *Server) addItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.lines.IndexOf(req.ListingID); ok {
		s.lines[i].Count += req.Count
	} else {
		s.lines = append(s.lines, cart.Line{ListingID: req.ListingID, Count: req.Count})
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (s *Server) updateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.lines.IndexOf(req.ListingID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "line not found"})
		return
	}
	s.lines[i].Count = req.Count
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) removeItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid listing id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.lines.IndexOf(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "line not found"})
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) resetCart(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --- catalog handlers ---

func (s *Server) nearby(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restaurants := make([]catalog.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		restaurants = append(restaurants, r)
	}
	c.JSON(http.StatusOK, restaurants)
}

func (s *Server) restaurantByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.restaurants[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) listingsByRestaurant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid restaurant id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	listings := s.listings[id]
	if listings == nil {
		listings = []catalog.Listing{}
	}
	c.JSON(http.StatusOK, listings)
}
