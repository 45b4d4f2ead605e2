package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplab/graphrec/internal/driver"
)

type Server struct {
	Graph driver.GraphDriver
}

func NewServer(g driver.GraphDriver) *Server {
	return &Server{Graph: g}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", s.Root)
	r.GET("/health", s.Health)
	r.GET("/recommendations/:customerId", s.Recommendations)

	return r
}

func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the E-commerce Graph Lab"})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type Recommendation struct {
	Product string  `json:"product"`
	Price   float64 `json:"price"`
	Score   int64   `json:"score"`
}

// Recommendations runs the collaborative-filtering traversal for one
// customer. An unknown customer and a customer with no co-purchases are
// deliberately indistinguishable: both get the empty-result payload.
func (s *Server) Recommendations(c *gin.Context) {
	customerID := c.Param("customerId")

	result, err := s.Graph.ExecuteQuery(c.Request.Context(), driver.RecommendationsQuery, map[string]interface{}{
		"customer_id": customerID,
	})
	if err != nil {
		log.Printf("Recommendation query failed for %s: %v", customerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
		return
	}

	recommendations := make([]Recommendation, 0, len(result.Records))
	for _, record := range result.Records {
		var rec Recommendation
		if v, ok := record.Get("product"); ok {
			rec.Product, _ = v.(string)
		}
		if v, ok := record.Get("price"); ok {
			rec.Price, _ = v.(float64)
		}
		if v, ok := record.Get("score"); ok {
			rec.Score, _ = v.(int64)
		}
		recommendations = append(recommendations, rec)
	}

	if len(recommendations) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"customer_id": customerID,
			"message":     "No recommendations found (or new user).",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id":     customerID,
		"recommendations": recommendations,
	})
}
