package token

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hchen320/bestfriends/internal/database"
	"github.com/hchen320/bestfriends/internal/member"
	"github.com/hchen320/bestfriends/pkg/response"
)

var validate = validator.New()

// Handler handles HTTP requests for edit token operations
type Handler struct {
	service *Service
}

// NewHandler creates a new token handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for token endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/generate", h.Generate)
	r.Get("/verify/{token}", h.Verify)
	r.Put("/update/{token}", h.Update)
	r.Put("/admin-update/{token}", h.AdminUpdate)
	// The fixed cleanup path must register before the catch-all token route.
	r.Delete("/cleanup/expired", h.CleanupExpired)
	r.Delete("/{token}", h.Revoke)

	return r
}

// Generate handles POST /tokens/generate
// @Summary      Issue an edit token
// @Description  Mints a new token for a member, replacing any existing one
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        request body GenerateTokenRequest true "Token request"
// @Success      200 {object} GenerateTokenResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /tokens/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, "memberId is required")
		return
	}

	hours := DefaultExpiresInHours
	if req.ExpiresInHours != nil {
		hours = *req.ExpiresInHours
	}

	value, expiresAt, err := h.service.Issue(r.Context(), req.MemberID, hours)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to generate token")
		return
	}

	response.JSON(w, http.StatusOK, GenerateTokenResponse{
		Token:     value,
		ExpiresAt: database.FormatTime(expiresAt),
	})
}

// Verify handles GET /tokens/verify/{token}
// @Summary      Verify an edit token
// @Description  Resolves a live token to its member record. An unknown and an expired token answer identically.
// @Tags         tokens
// @Produce      json
// @Param        token path string true "Token value"
// @Success      200 {object} VerifyResponse
// @Failure      401 {object} response.ErrorBody
// @Router       /tokens/verify/{token} [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	m, expiresAt, err := h.service.Verify(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to verify token")
		return
	}

	response.JSON(w, http.StatusOK, VerifyResponse{
		Valid:  true,
		Member: newVerifiedMember(m, expiresAt),
	})
}

// Update handles PUT /tokens/update/{token}
// @Summary      Self-service member update
// @Description  Full-field update of the token's member; the join date cannot be changed here
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        token path string true "Token value"
// @Param        request body member.UpdateMemberRequest true "Member fields"
// @Success      200 {object} map[string]string
// @Failure      400 {object} response.ErrorBody
// @Failure      401 {object} response.ErrorBody
// @Router       /tokens/update/{token} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	h.updateViaToken(w, r, false)
}

// AdminUpdate handles PUT /tokens/admin-update/{token}
// @Summary      Administrative member update
// @Description  Same as the self-service update but the join date is writable
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        token path string true "Token value"
// @Param        request body member.UpdateMemberRequest true "Member fields"
// @Success      200 {object} map[string]string
// @Failure      400 {object} response.ErrorBody
// @Failure      401 {object} response.ErrorBody
// @Router       /tokens/admin-update/{token} [put]
func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	h.updateViaToken(w, r, true)
}

func (h *Handler) updateViaToken(w http.ResponseWriter, r *http.Request, allowJoinDateChange bool) {
	var req member.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	err := h.service.UpdateMember(r.Context(), chi.URLParam(r, "token"), &req, allowJoinDateChange)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			response.Unauthorized(w, err.Error())
		case errors.Is(err, member.ErrNameRequired), errors.Is(err, member.ErrLocationRequired):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update member")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member updated successfully"})
}

// Revoke handles DELETE /tokens/{token}
// @Summary      Revoke an edit token
// @Description  Deletes the exact token row; revoking twice reports not found the second time
// @Tags         tokens
// @Produce      json
// @Param        token path string true "Token value"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /tokens/{token} [delete]
func (h *Handler) Revoke(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Revoke(r.Context(), chi.URLParam(r, "token")); err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to revoke token")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Token revoked successfully"})
}

// CleanupExpired handles DELETE /tokens/cleanup/expired
// @Summary      Purge expired tokens
// @Description  Deletes every token at or past its expiry
// @Tags         tokens
// @Produce      json
// @Success      200 {object} CleanupResponse
// @Router       /tokens/cleanup/expired [delete]
func (h *Handler) CleanupExpired(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CleanupExpired(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to clean up expired tokens")
		return
	}

	response.JSON(w, http.StatusOK, CleanupResponse{DeletedCount: count})
}
