package message

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hchen320/bestfriends/pkg/response"
)

// Handler handles HTTP requests for the guestbook admin surface
type Handler struct {
	service *Service
}

// NewHandler creates a new message handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for message endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListAll)
	r.Get("/stats", h.Stats)
	r.Delete("/member/{memberId}", h.DeleteForMember)
	r.Delete("/all", h.DeleteAll)
	// Keep the catch-all id route last so it cannot shadow the fixed paths.
	r.Delete("/{id}", h.Delete)

	return r
}

// ListAll handles GET /messages
// @Summary      List all messages
// @Description  Get every guestbook message with its owner's name
// @Tags         messages
// @Produce      json
// @Success      200 {array} MemberMessageResponse
// @Router       /messages [get]
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListAll(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list messages")
		return
	}

	out := make([]*MemberMessageResponse, len(messages))
	for i, m := range messages {
		out[i] = m.ToResponse()
	}
	response.JSON(w, http.StatusOK, out)
}

// Stats handles GET /messages/stats
// @Summary      Guestbook statistics
// @Description  Totals, today's count, and distinct posting members
// @Tags         messages
// @Produce      json
// @Success      200 {object} Stats
// @Router       /messages/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to get message stats")
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

// DeleteForMember handles DELETE /messages/member/{memberId}
// @Summary      Clear a member's guestbook
// @Tags         messages
// @Produce      json
// @Param        memberId path int true "Member ID"
// @Success      200 {object} DeletedResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /messages/member/{memberId} [delete]
func (h *Handler) DeleteForMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(chi.URLParam(r, "memberId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	count, err := h.service.DeleteForMember(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete member messages")
		return
	}

	response.JSON(w, http.StatusOK, DeletedResponse{DeletedCount: count})
}

// DeleteAll handles DELETE /messages/all
// @Summary      Clear the entire guestbook
// @Tags         messages
// @Produce      json
// @Success      200 {object} DeletedResponse
// @Router       /messages/all [delete]
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.DeleteAll(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to delete all messages")
		return
	}
	response.JSON(w, http.StatusOK, DeletedResponse{DeletedCount: count})
}

// Delete handles DELETE /messages/{id}
// @Summary      Delete a message
// @Tags         messages
// @Produce      json
// @Param        id path int true "Message ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /messages/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid message ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete message")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
