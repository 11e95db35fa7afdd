package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"templeconnect/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func templeRouter(h *Handler, userID string) *gin.Engine {
	r := gin.New()
	r.GET("/api/temples", h.ListTemples)
	r.GET("/api/temples/nearby", h.NearbyTemples)
	r.GET("/api/temples/:id", h.GetTemple)
	r.POST("/api/temples", authAs(userID, "asha@example.com"), h.CreateTemple)
	r.PUT("/api/temples/:id", authAs(userID, "asha@example.com"), h.UpdateTemple)
	r.DELETE("/api/temples/:id", authAs(userID, "asha@example.com"), h.DeleteTemple)
	return r
}

func TestCreateTemple(t *testing.T) {
	h, users, temples, _, _, _ := newTestHandler()
	user := seedUser(users, models.PlanFree)
	r := templeRouter(h, user.ID.Hex())

	w := performJSON(r, http.MethodPost, "/api/temples", gin.H{
		"templeName":  "Meenakshi Amman",
		"description": "Historic temple in Madurai",
		"city":        "Madurai",
		"state":       "Tamil Nadu",
		"address":     "Madurai Main",
		"zipCode":     "625001",
		"poojas": []gin.H{
			{"name": "Abhishekam", "description": "Morning ritual", "price": 501},
			{"name": "", "description": "dropped, no name"},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Temple
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Meenakshi Amman", created.Name)
	assert.Equal(t, "Madurai Main, Madurai, Tamil Nadu 625001", created.Location)
	require.Len(t, created.Poojas, 1, "poojas without name+description are dropped")
	assert.Equal(t, "Upon Request", created.Poojas[0].Date)
	assert.Equal(t, user.ID, created.CreatedBy)

	assert.Len(t, temples.temples, 1)
}

func TestCreateTempleValidation(t *testing.T) {
	h, users, _, _, _, _ := newTestHandler()
	user := seedUser(users, models.PlanFree)
	r := templeRouter(h, user.ID.Hex())

	w := performJSON(r, http.MethodPost, "/api/temples", gin.H{
		"templeName": "No description or city",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTemple(t *testing.T) {
	h, users, temples, _, _, _ := newTestHandler()
	user := seedUser(users, models.PlanFree)
	temple := temples.add(&models.Temple{Name: "Kashi Vishwanath", CreatedBy: user.ID})
	r := templeRouter(h, user.ID.Hex())

	w := performJSON(r, http.MethodGet, "/api/temples/"+temple.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodGet, "/api/temples/not-a-hex-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(r, http.MethodGet, "/api/temples/64a0000000000000000000ff", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTempleOwnership(t *testing.T) {
	h, users, temples, _, _, _ := newTestHandler()
	owner := seedUser(users, models.PlanFree)
	temple := temples.add(&models.Temple{Name: "Old Name", CreatedBy: owner.ID})

	// A different authenticated user must be rejected.
	stranger := primitive.NewObjectID().Hex()
	r := templeRouter(h, stranger)
	w := performJSON(r, http.MethodPut, "/api/temples/"+temple.ID.Hex(), gin.H{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Old Name", temple.Name)

	// The creator may update.
	r = templeRouter(h, owner.ID.Hex())
	w = performJSON(r, http.MethodPut, "/api/temples/"+temple.ID.Hex(), gin.H{"name": "New Name"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New Name", temple.Name)
}

func TestUpdateTempleNoFields(t *testing.T) {
	h, users, temples, _, _, _ := newTestHandler()
	owner := seedUser(users, models.PlanFree)
	temple := temples.add(&models.Temple{Name: "Unchanged", CreatedBy: owner.ID})
	r := templeRouter(h, owner.ID.Hex())

	w := performJSON(r, http.MethodPut, "/api/temples/"+temple.ID.Hex(), gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTempleOwnership(t *testing.T) {
	h, users, temples, _, _, _ := newTestHandler()
	owner := seedUser(users, models.PlanFree)
	temple := temples.add(&models.Temple{Name: "Doomed", CreatedBy: owner.ID})

	stranger := primitive.NewObjectID().Hex()
	r := templeRouter(h, stranger)
	w := performJSON(r, http.MethodDelete, "/api/temples/"+temple.ID.Hex(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, temples.temples, 1)

	r = templeRouter(h, owner.ID.Hex())
	w = performJSON(r, http.MethodDelete, "/api/temples/"+temple.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, temples.temples)
}

func TestNearbyTemples(t *testing.T) {
	h, users, temples, _, _, _ := newTestHandler()
	user := seedUser(users, models.PlanFree)

	blr := func(lat, lng float64) (*float64, *float64) { return &lat, &lng }

	lat1, lng1 := blr(12.9716, 77.5946) // query point
	temples.add(&models.Temple{Name: "Near", Lat: lat1, Lng: lng1})

	lat2, lng2 := blr(12.9716, 77.6090) // ~1.5 km east
	temples.add(&models.Temple{Name: "Close", Lat: lat2, Lng: lng2})

	lat3, lng3 := blr(13.0827, 80.2707) // Chennai, ~290 km
	temples.add(&models.Temple{Name: "Far", Lat: lat3, Lng: lng3})

	temples.add(&models.Temple{Name: "NoCoords"})

	r := templeRouter(h, user.ID.Hex())

	w := performJSON(r, http.MethodGet, "/api/temples/nearby?lat=12.9716&lng=77.5946&radius=5000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Temple
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	names := []string{}
	for _, tm := range got {
		names = append(names, tm.Name)
	}
	assert.ElementsMatch(t, []string{"Near", "Close"}, names)

	// Missing coordinates in the query is a client error.
	w = performJSON(r, http.MethodGet, "/api/temples/nearby?radius=5000", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNearbyTemplesDefaultRadius(t *testing.T) {
	h, users, temples, _, _, _ := newTestHandler()
	user := seedUser(users, models.PlanFree)

	lat, lng := 12.9716, 77.6090
	temples.add(&models.Temple{Name: "Close", Lat: &lat, Lng: &lng})

	r := templeRouter(h, user.ID.Hex())

	// No radius given: 5000 m default still includes a ~1.5 km temple.
	w := performJSON(r, http.MethodGet, "/api/temples/nearby?lat=12.9716&lng=77.5946", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Temple
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}
