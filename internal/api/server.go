package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"petfinder/crawlworker/internal/crawl"
	"petfinder/crawlworker/internal/scraper"
	"petfinder/crawlworker/internal/shop"
	"petfinder/crawlworker/logger"
	apperr "petfinder/crawlworker/pkg/errors"
	"petfinder/crawlworker/services/store"
)

// Server wires the HTTP handlers to the crawl service and pet store
type Server struct {
	router   chi.Router
	crawlSvc *crawl.Service
	petStore store.PetStore
}

// NewServer constructs a Server with middleware and routes
func NewServer(crawlSvc *crawl.Service, petStore store.PetStore) *Server {
	s := &Server{
		crawlSvc: crawlSvc,
		petStore: petStore,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", s.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/crawl", s.crawlHandler)
		r.Post("/crawl", s.crawlPostHandler)
		r.Get("/shops", s.listShops)
		r.Get("/pets", s.listPets)
		r.Delete("/pets", s.clearPets)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// crawlHandler crawls a single shop when shopId is given, otherwise every
// enabled shop concurrently
func (s *Server) crawlHandler(w http.ResponseWriter, r *http.Request) {
	shopID := r.URL.Query().Get("shopId")
	if shopID != "" {
		s.crawlSingle(w, r, shopID)
		return
	}

	summary := s.crawlSvc.CrawlAll()
	for _, result := range summary.Results {
		s.mergePets(r, result.Pets)
	}
	writeJSON(w, http.StatusOK, summary)
}

type crawlRequest struct {
	ShopID string `json:"shopId"`
}

// crawlPostHandler is the POST form of the single-shop crawl
func (s *Server) crawlPostHandler(w http.ResponseWriter, r *http.Request) {
	var req crawlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ShopID == "" {
		writeError(w, http.StatusBadRequest, "shopId is required")
		return
	}
	s.crawlSingle(w, r, req.ShopID)
}

func (s *Server) crawlSingle(w http.ResponseWriter, r *http.Request, shopID string) {
	result, err := s.crawlSvc.CrawlShopByID(shopID)
	if err != nil {
		var scrapeErr *apperr.ScrapeError
		if errors.As(err, &scrapeErr) && scrapeErr.Type == apperr.ErrorTypeNotFound {
			writeError(w, http.StatusNotFound, "Shop not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.mergePets(r, result.Pets)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) listShops(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, shop.Shops())
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	pets, err := s.petStore.GetPets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pets == nil {
		pets = []scraper.Pet{}
	}
	writeJSON(w, http.StatusOK, pets)
}

func (s *Server) clearPets(w http.ResponseWriter, r *http.Request) {
	if err := s.petStore.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

// mergePets accumulates crawl output into the pet store. A store failure is
// logged but never fails the crawl response.
func (s *Server) mergePets(r *http.Request, pets []scraper.Pet) {
	if s.petStore == nil || len(pets) == 0 {
		return
	}
	if err := s.petStore.AddPets(r.Context(), pets); err != nil {
		logger.LogError("api", err, "크롤링 결과 저장 실패")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.LogError("api", err, "응답 직렬화 실패")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
