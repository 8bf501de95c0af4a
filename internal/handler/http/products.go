// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/utils"
	"github.com/mlevkova/bijoux-shop/models"
)

// createProduct accepts either a JSON body or a multipart form. The
// multipart path carries the image file in the "image" part; the JSON path
// may reference an already-hosted image via image_url instead.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var (
		req   models.CreateProductRequest
		image *models.ImageUpload
	)

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType == "multipart/form-data" {
		parsed, upload, err := h.parseProductForm(w, r)
		if err != nil {
			log.Err(err).Msg("invalid product creation form")
			writeError(w, r, err)
			return
		}
		req, image = parsed, upload
	} else {
		raw, err := io.ReadAll(r.Body)
		if err != nil || emptyJSONPayload(raw) {
			log.Error().Msg("empty product creation body")
			h.writeMessage(w, r, "No input data provided", http.StatusBadRequest)
			return
		}

		if err = json.Unmarshal(raw, &req); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field == "image_url" {
				log.Err(err).Msg("non-string image_url in product creation body")
				h.writeMessage(w, r, "Image URL must be a string", http.StatusBadRequest)
				return
			}
			log.Err(err).Msg("invalid product creation body")
			h.writeMessage(w, r, "No input data provided", http.StatusBadRequest)
			return
		}
	}

	product, err := h.services.ProductService.CreateProduct(ctx, req, image)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := models.CreateProductResponse{
		ProductID: product.ProductID,
		Message:   fmt.Sprintf("Product %q created successfully", product.ProductName),
	}
	if _, err = utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing product creation response failed")
	}
}

// parseProductForm extracts product fields and the optional image part from
// a multipart request. The body is capped at maxUploadBytes before parsing
// so an oversized upload cannot be buffered in full.
func (h *Handler) parseProductForm(w http.ResponseWriter, r *http.Request) (models.CreateProductRequest, *models.ImageUpload, error) {
	var req models.CreateProductRequest

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return req, nil, errRequestTooLarge
		}
		return req, nil, fmt.Errorf("%w: %w", errMalformedForm, err)
	}

	req.ProductName = r.FormValue("productname")
	req.Description = r.FormValue("description")

	if rawPrice := r.FormValue("price"); rawPrice != "" {
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			return req, nil, fmt.Errorf("%w: bad price %q", errMalformedForm, rawPrice)
		}
		req.Price = price
	}

	if rawCategory := r.FormValue("category_id"); rawCategory != "" {
		categoryID, err := strconv.ParseInt(rawCategory, 10, 64)
		if err != nil {
			return req, nil, fmt.Errorf("%w: bad category_id %q", errMalformedForm, rawCategory)
		}
		req.CategoryID = &categoryID
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil, nil
		}
		return req, nil, fmt.Errorf("%w: %w", errMalformedForm, err)
	}

	return req, &models.ImageUpload{Filename: header.Filename, Content: file}, nil
}

// getProducts returns the full catalog as a bare JSON array, matching the
// response shape the storefront consumes.
func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.GetAllProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, products, http.StatusOK); err != nil {
		log.Err(err).Msg("writing product listing response failed")
	}
}

func (h *Handler) getProductByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		h.writeMessage(w, r, "Product not found", http.StatusNotFound)
		return
	}

	product, err := h.services.ProductService.GetProductByID(r.Context(), productID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, product, http.StatusOK); err != nil {
		log.Err(err).Msg("writing product response failed")
	}
}

func (h *Handler) getProductsByCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		h.writeMessage(w, r, "No products found", http.StatusNotFound)
		return
	}

	products, err := h.services.ProductService.GetProductsByCategory(r.Context(), categoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, products, http.StatusOK); err != nil {
		log.Err(err).Msg("writing product listing response failed")
	}
}
