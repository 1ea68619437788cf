package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"estateBack/internal/models"
	"estateBack/internal/services"
	"estateBack/utils"
)

type PropertyHandler struct {
	Service *services.PropertyService
	Storage *utils.Storage
}

type createPropertyRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Location    string   `json:"location"`
	ImageURL    []string `json:"imageUrl"`
}

// CreateProperty accepts either multipart form data with raw image files,
// which are pushed through the upload collaborator first, or a JSON body
// carrying already-resolved image URLs.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "Invalid multipart form", http.StatusBadRequest)
			return
		}
		req.Title = r.FormValue("title")
		req.Description = r.FormValue("description")
		req.Location = r.FormValue("location")

		price, err := strconv.ParseFloat(r.FormValue("price"), 64)
		if err != nil {
			http.Error(w, "Price must be a valid number", http.StatusBadRequest)
			return
		}
		req.Price = price

		imageURLs, err := h.uploadImages(r)
		if err != nil {
			http.Error(w, "Failed to upload image", http.StatusInternalServerError)
			return
		}
		req.ImageURL = imageURLs
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	property := models.Property{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}

	created, err := h.Service.CreateProperty(r.Context(), viewerFromContext(r), property)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// uploadImages streams each attached file to the storage collaborator and
// collects the resulting public URLs.
func (h *PropertyHandler) uploadImages(r *http.Request) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	files := r.MultipartForm.File["files"]

	var imageURLs []string
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}

		fileName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
		url, err := h.Storage.UploadFile(data, fileName, "properties")
		if err != nil {
			return nil, err
		}
		imageURLs = append(imageURLs, url)
	}
	return imageURLs, nil
}

func (h *PropertyHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.ListAllProperties(r.Context(), viewerFromContext(r), parsePage(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *PropertyHandler) GetPublishedProperties(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.ListPublishedProperties(r.Context(), viewerFromContext(r), parsePage(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *PropertyHandler) GetOwnerProperties(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.ListOwnerProperties(r.Context(), viewerFromContext(r), parsePage(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	var req models.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateProperty(r.Context(), viewerFromContext(r), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *PropertyHandler) UpdatePropertyStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		http.Error(w, "Status is required", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdatePropertyStatus(r.Context(), viewerFromContext(r), id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// DeleteProperty archives the listing. Deleting an already archived
// listing responds with the same archived state, not an error.
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid property id", http.StatusBadRequest)
		return
	}

	archived, err := h.Service.RemoveProperty(r.Context(), viewerFromContext(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(archived)
}
