package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"templeconnect/db"
	"templeconnect/models"
	"templeconnect/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PoojaInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

type CreateTempleInput struct {
	TempleName  string       `json:"templeName" binding:"required"`
	Description string       `json:"description" binding:"required"`
	City        string       `json:"city" binding:"required"`
	State       string       `json:"state" binding:"required"`
	Address     string       `json:"address"`
	ZipCode     string       `json:"zipCode"`
	ImageURL    string       `json:"imageUrl"`
	Lat         *float64     `json:"lat"`
	Lng         *float64     `json:"lng"`
	Poojas      []PoojaInput `json:"poojas"`
}

// UpdateTempleInput allows partial updates
type UpdateTempleInput struct {
	Name        *string         `json:"name,omitempty"`
	Location    *string         `json:"location,omitempty"`
	Description *string         `json:"description,omitempty"`
	Lat         *float64        `json:"lat,omitempty"`
	Lng         *float64        `json:"lng,omitempty"`
	Contact     *models.Contact `json:"contact,omitempty"`
	Poojas      *[]models.Pooja `json:"poojas,omitempty"`
}

func (h *Handler) ListTemples(c *gin.Context) {
	temples, err := h.Temples.ListTemples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch temples"})
		return
	}
	c.JSON(http.StatusOK, temples)
}

// ListPoojas returns all temples with their embedded pooja offerings; the
// client flattens them into a single catalog.
func (h *Handler) ListPoojas(c *gin.Context) {
	temples, err := h.Temples.ListTemples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch poojas"})
		return
	}
	c.JSON(http.StatusOK, temples)
}

func (h *Handler) CreateTemple(c *gin.Context) {
	var input CreateTempleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: templeName, description, city, and state are required"})
		return
	}

	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	creatorID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	location := input.City + ", " + input.State
	if input.Address != "" {
		location = input.Address + ", " + location
	}
	if input.ZipCode != "" {
		location += " " + input.ZipCode
	}

	poojas := []models.Pooja{}
	for _, p := range input.Poojas {
		if p.Name == "" || p.Description == "" {
			continue
		}
		poojas = append(poojas, models.Pooja{
			ID:          primitive.NewObjectID(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Tags:        []string{},
			Date:        "Upon Request",
			Time:        "Flexible",
		})
	}

	temple := models.Temple{
		Name:        input.TempleName,
		Location:    location,
		Description: input.Description,
		Poojas:      poojas,
		Lat:         input.Lat,
		Lng:         input.Lng,
		CreatedBy:   creatorID,
	}
	if input.ImageURL != "" {
		temple.Image = &models.Image{ImageURL: input.ImageURL}
	}

	if err := h.Temples.CreateTemple(c.Request.Context(), &temple); err != nil {
		fmt.Printf("Error creating temple: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temple"})
		return
	}

	c.JSON(http.StatusCreated, temple)
}

func (h *Handler) GetTemple(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid temple ID"})
		return
	}

	temple, err := h.Temples.GetTemple(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Temple not found"})
		return
	}
	c.JSON(http.StatusOK, temple)
}

// UpdateTemple updates a temple; only the creator can update.
func (h *Handler) UpdateTemple(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid temple ID"})
		return
	}

	existing, err := h.Temples.GetTemple(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Temple not found"})
		return
	}

	userID, _ := userIDFrom(c)
	if existing.CreatedBy.Hex() != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator can modify this temple"})
		return
	}

	var input UpdateTempleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := db.TempleUpdate{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		Lat:         input.Lat,
		Lng:         input.Lng,
		Contact:     input.Contact,
		Poojas:      input.Poojas,
	}
	if update == (db.TempleUpdate{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	temple, err := h.Temples.UpdateTemple(c.Request.Context(), id, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update temple"})
		return
	}
	c.JSON(http.StatusOK, temple)
}

// DeleteTemple deletes a temple; only the creator can delete.
func (h *Handler) DeleteTemple(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid temple ID"})
		return
	}

	existing, err := h.Temples.GetTemple(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Temple not found"})
		return
	}

	userID, _ := userIDFrom(c)
	if existing.CreatedBy.Hex() != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator can delete this temple"})
		return
	}

	if err := h.Temples.DeleteTemple(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete temple"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Temple deleted successfully"})
}

func (h *Handler) NearbyTemples(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude are required"})
		return
	}

	radius := 5000.0 // meters
	if r := c.Query("radius"); r != "" {
		parsed, err := strconv.ParseFloat(r, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
			return
		}
		radius = parsed
	}

	temples, err := h.Temples.ListTemples(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nearby temples"})
		return
	}

	nearby := []models.Temple{}
	for _, t := range temples {
		if t.Lat == nil || t.Lng == nil {
			continue
		}
		if services.WithinRadius(lat, lng, *t.Lat, *t.Lng, radius) {
			nearby = append(nearby, t)
		}
	}

	c.JSON(http.StatusOK, nearby)
}
