package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/catalog"
	"storefront/controllers"
	"storefront/routes"
	"storefront/services"
	"storefront/storage"
	"storefront/store"
)

var testSecret = []byte("test-secret")

const upstreamProducts = `[
	{"id":1,"title":"Backpack","price":20,"description":"A backpack","category":"men's clothing","image":"https://img/1.jpg","rating":{"rate":3.9,"count":120}},
	{"id":2,"title":"Monitor","price":150,"description":"A monitor","category":"electronics","image":"https://img/2.jpg","rating":{"rate":2.2,"count":250}},
	{"id":3,"title":"Bracelet","price":10,"description":"A bracelet","category":"jewelery","image":"https://img/3.jpg","rating":{"rate":4.6,"count":400}}
]`

// newTestRouter wires the full route table against a stub upstream
// catalog and in-memory storage.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamProducts))
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["electronics","jewelery","men's clothing"]`))
	})
	// Detail endpoint serves any id present in the fixture list.
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(path.Base(r.URL.Path))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		var products []map[string]any
		if err := json.Unmarshal([]byte(upstreamProducts), &products); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		for _, p := range products {
			if int(p["id"].(float64)) == id {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		http.NotFound(w, r)
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	durable := storage.NewMemoryStore()
	client := catalog.NewClient(upstream.URL, 5*time.Second)
	catalogService := catalog.NewService(client, nil, time.Minute)

	carts := store.NewCartStore(durable)
	wishlists := store.NewWishlistStore(durable)
	sessions := store.NewSessionStore(durable)
	authService := services.NewAuthService(durable, testSecret, time.Hour, 0, 0)

	router := gin.New()
	routes.SetupRoutes(router, routes.Controllers{
		Auth:     controllers.NewAuthController(authService, sessions),
		Products: controllers.NewProductController(catalogService),
		Cart:     controllers.NewCartController(carts, catalogService),
		Wishlist: controllers.NewWishlistController(wishlists, catalogService),
	}, testSecret)
	return router
}
