package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// UpdateProductRequest is the payload for PATCH /products/{id}. Absent
// fields are left untouched.
type UpdateProductRequest struct {
	ProductName  *string              `json:"product_name,omitempty"`
	PhotoURL     *string              `json:"photoURL,omitempty"`
	Tags         *[]model.ProductTag  `json:"tags,omitempty"`
	Description  *string              `json:"description,omitempty"`
	ExternalLink *string              `json:"externalLink,omitempty"`
	Time         *string              `json:"time,omitempty"`
	Status       *model.ProductStatus `json:"status,omitempty"`
}

// ProductHandler serves the products resource.
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	logger         *zerolog.Logger
}

func NewProductHandler(productUsecase usecase.ProductUsecase, logger *zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		logger:         logger,
	}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.ListProducts(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list products")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}. An unknown id answers null, not 404.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		h.logger.Error().Err(err).Str("id", id).Msg("failed to get product")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ListByOwner handles GET /products/user/{email} (verified callers).
func (h *ProductHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	products, err := h.productUsecase.ListProductsByOwner(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("failed to list products by owner")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Search handles GET /product/search?search=. Only accepted products are
// searched; the term matches tag text case-insensitively.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")

	products, err := h.productUsecase.Search(r.Context(), term)
	if err != nil {
		h.logger.Error().Err(err).Str("term", term).Msg("product search failed")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /products (verified callers).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if !decodeJSON(w, r, &product) {
		return
	}

	result, err := h.productUsecase.SubmitProduct(r.Context(), &product)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create product")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Update handles PATCH /products/{id} (verified callers).
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.productUsecase.UpdateProduct(r.Context(), id, repository.UpdateProductParams{
		ProductName:  req.ProductName,
		PhotoURL:     req.PhotoURL,
		Tags:         req.Tags,
		Description:  req.Description,
		ExternalLink: req.ExternalLink,
		Time:         req.Time,
		Status:       req.Status,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("failed to update product")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /products/{id} (verified callers).
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.productUsecase.DeleteProduct(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("failed to delete product")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
