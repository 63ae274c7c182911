package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hchen320/bestfriends/pkg/response"
)

// maxUploadBytes caps avatar uploads at 5MB.
const maxUploadBytes = 5 << 20

// UploadResponse reports a stored avatar
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Base64UploadRequest carries base64 image data, optionally as a data URL
type Base64UploadRequest struct {
	ImageData string `json:"imageData"`
	Filename  string `json:"filename"`
}

// CleanupResponse reports how many unused files a cleanup removed
type CleanupResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Handler handles HTTP requests for avatar uploads
type Handler struct {
	service *Service
}

// NewHandler creates a new upload handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for upload endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/avatar", h.Avatar)
	r.Post("/avatar-base64", h.AvatarBase64)
	r.Delete("/avatar/{filename}", h.DeleteAvatar)
	r.Post("/cleanup-unused", h.CleanupUnused)

	return r
}

// Avatar handles POST /upload/avatar
// @Summary      Upload an avatar
// @Description  Multipart image upload, resized to a 200x200 JPEG
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        avatar formData file true "Image file"
// @Success      200 {object} UploadResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /upload/avatar [post]
func (h *Handler) Avatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.BadRequest(w, "No file uploaded or file too large")
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	filename, err := h.service.SaveAvatar(file)
	if err != nil {
		if errors.Is(err, ErrNotImage) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to save avatar")
		return
	}

	response.JSON(w, http.StatusOK, UploadResponse{
		Success:  true,
		URL:      "/uploads/" + filename,
		Filename: filename,
	})
}

// AvatarBase64 handles POST /upload/avatar-base64
// @Summary      Upload an avatar as base64
// @Description  Accepts raw base64 or a data URL, resized to a 200x200 JPEG
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        request body Base64UploadRequest true "Image data"
// @Success      200 {object} UploadResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /upload/avatar-base64 [post]
func (h *Handler) AvatarBase64(w http.ResponseWriter, r *http.Request) {
	var req Base64UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.ImageData == "" {
		response.BadRequest(w, "No image data")
		return
	}

	filename, err := h.service.SaveAvatarBase64(req.ImageData)
	if err != nil {
		if errors.Is(err, ErrNotImage) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to save avatar")
		return
	}

	response.JSON(w, http.StatusOK, UploadResponse{
		Success:  true,
		URL:      "/uploads/" + filename,
		Filename: filename,
	})
}

// DeleteAvatar handles DELETE /upload/avatar/{filename}
// @Summary      Delete an uploaded avatar
// @Tags         upload
// @Produce      json
// @Param        filename path string true "Filename"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /upload/avatar/{filename} [delete]
func (h *Handler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteAvatar(chi.URLParam(r, "filename"))
	if err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrBadFilename):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to delete avatar")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Avatar deleted successfully"})
}

// CleanupUnused handles POST /upload/cleanup-unused
// @Summary      Delete unreferenced avatar files
// @Tags         upload
// @Produce      json
// @Success      200 {object} CleanupResponse
// @Router       /upload/cleanup-unused [post]
func (h *Handler) CleanupUnused(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CleanupUnused(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to clean up avatars")
		return
	}

	response.JSON(w, http.StatusOK, CleanupResponse{DeletedCount: count})
}
