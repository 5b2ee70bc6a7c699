package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// ==================== Careers ====================

func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	careers, err := s.content.ListCareers(r.Context(), activeOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if careers == nil {
		careers = []domain.Career{}
	}
	writeJSON(w, http.StatusOK, careers)
}

func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	career, err := s.content.GetCareer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, career)
}

func (s *Server) handleCreateCareer(w http.ResponseWriter, r *http.Request) {
	var career domain.Career
	if !s.decodeJSON(w, r, &career) {
		return
	}
	if err := s.content.CreateCareer(r.Context(), &career); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, career)
}

func (s *Server) handleUpdateCareer(w http.ResponseWriter, r *http.Request) {
	var career domain.Career
	if !s.decodeJSON(w, r, &career) {
		return
	}
	career.ID = chi.URLParam(r, "id")
	if err := s.content.UpdateCareer(r.Context(), &career); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, career)
}

func (s *Server) handleDeleteCareer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.content.DeleteCareer(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	if email, ok := adminFromContext(r.Context()); ok {
		logger.Debug("Career %s deleted by %s", id, email)
	}
	w.WriteHeader(http.StatusNoContent)
}

// ==================== Products ====================

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.content.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if !s.decodeJSON(w, r, &product) {
		return
	}
	if err := s.content.CreateProduct(r.Context(), &product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if !s.decodeJSON(w, r, &product) {
		return
	}
	product.ID = chi.URLParam(r, "id")
	if err := s.content.UpdateProduct(r.Context(), &product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ==================== Contact ====================

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if !s.decodeJSON(w, r, &msg) {
		return
	}
	if err := s.content.SubmitContact(r.Context(), &msg); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.content.ListContacts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if contacts == nil {
		contacts = []domain.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (s *Server) handleMarkContactRead(w http.ResponseWriter, r *http.Request) {
	if err := s.content.MarkContactRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteContact(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ==================== Applications ====================

func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var app domain.JobApplication
	if !s.decodeJSON(w, r, &app) {
		return
	}
	if err := s.content.SubmitApplication(r.Context(), &app); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.content.ListApplications(r.Context(), r.URL.Query().Get("careerId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.JobApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}
