package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/example/printadmin/internal/models"
)

// fakeBackend is an in-memory stand-in for the print-shop REST API.
type fakeBackend struct {
	mu        sync.Mutex
	campuses  []models.Campus
	shops     []models.Shop
	bodies    []map[string]any
	requestID []string
	userAgent string
	calls     int

	// failStatus, when set, answers every request with this status and failBody.
	failStatus int
	failBody   any
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fb := &fakeBackend{}
	r := gin.New()
	r.Use(fb.record)

	api := r.Group("/api")
	api.GET("/campuses", fb.listCampuses)
	api.POST("/campuses", fb.createCampus)
	api.PATCH("/campuses/:id", fb.updateCampus)
	api.DELETE("/campuses/:id", fb.deleteCampus)
	api.GET("/shops", fb.listShops)
	api.POST("/shops", fb.createShop)
	api.PATCH("/shops/:id", fb.updateShop)
	api.DELETE("/shops/:id", fb.deleteShop)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return fb, srv
}

func (fb *fakeBackend) record(c *gin.Context) {
	fb.mu.Lock()
	fb.calls++
	fb.requestID = append(fb.requestID, c.GetHeader("X-Request-ID"))
	fb.userAgent = c.GetHeader("User-Agent")
	status, body := fb.failStatus, fb.failBody
	fb.mu.Unlock()

	if c.Request.Method == http.MethodPost || c.Request.Method == http.MethodPatch {
		var raw map[string]any
		if err := c.ShouldBindBodyWith(&raw, binding.JSON); err == nil {
			fb.mu.Lock()
			fb.bodies = append(fb.bodies, raw)
			fb.mu.Unlock()
		}
	}

	if status != 0 {
		if s, ok := body.(string); ok {
			c.String(status, s)
		} else {
			c.JSON(status, body)
		}
		c.Abort()
		return
	}
	c.Next()
}

func (fb *fakeBackend) lastBody() map[string]any {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if len(fb.bodies) == 0 {
		return nil
	}
	return fb.bodies[len(fb.bodies)-1]
}

func (fb *fakeBackend) requestIDs() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.requestID...)
}

func (fb *fakeBackend) callCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.calls
}

func (fb *fakeBackend) lastUserAgent() string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.userAgent
}

func (fb *fakeBackend) failWith(status int, body any) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failStatus = status
	fb.failBody = body
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (fb *fakeBackend) listCampuses(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	c.JSON(http.StatusOK, fb.campuses)
}

func (fb *fakeBackend) createCampus(c *gin.Context) {
	var p models.CampusPayload
	if err := c.ShouldBindBodyWith(&p, binding.JSON); err != nil || p.Name == nil || p.Location == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []gin.H{{"loc": []string{"body", "name"}, "msg": "field required"}}})
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, existing := range fb.campuses {
		if existing.Name == *p.Name {
			c.JSON(http.StatusConflict, gin.H{"detail": "UNIQUE constraint failed: campuses.name"})
			return
		}
	}
	campus := models.Campus{ID: uuid.NewString(), Name: *p.Name, Location: *p.Location, CreatedAt: now()}
	fb.campuses = append(fb.campuses, campus)
	c.JSON(http.StatusOK, campus)
}

func (fb *fakeBackend) updateCampus(c *gin.Context) {
	var p models.CampusPayload
	if err := c.ShouldBindBodyWith(&p, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body"})
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.campuses {
		if fb.campuses[i].ID == c.Param("id") {
			fb.campuses[i].Apply(p)
			c.JSON(http.StatusOK, fb.campuses[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "Campus not found"})
}

func (fb *fakeBackend) deleteCampus(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.campuses {
		if fb.campuses[i].ID == c.Param("id") {
			fb.campuses = append(fb.campuses[:i], fb.campuses[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Campus deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "Campus not found"})
}

func (fb *fakeBackend) listShops(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	c.JSON(http.StatusOK, fb.shops)
}

func (fb *fakeBackend) createShop(c *gin.Context) {
	var p models.ShopPayload
	if err := c.ShouldBindBodyWith(&p, binding.JSON); err != nil || p.Name == nil || p.CampusID == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "field required"})
		return
	}

	shop := models.Shop{ID: uuid.NewString(), CampusID: *p.CampusID, IsActive: true, CreatedAt: now()}
	shop.Apply(p)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.shops = append(fb.shops, shop)
	c.JSON(http.StatusOK, shop)
}

func (fb *fakeBackend) updateShop(c *gin.Context) {
	var p models.ShopPayload
	if err := c.ShouldBindBodyWith(&p, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body"})
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.shops {
		if fb.shops[i].ID == c.Param("id") {
			fb.shops[i].Apply(p)
			c.JSON(http.StatusOK, fb.shops[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "Shop not found"})
}

func (fb *fakeBackend) deleteShop(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.shops {
		if fb.shops[i].ID == c.Param("id") {
			fb.shops = append(fb.shops[:i], fb.shops[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Shop deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "Shop not found"})
}
