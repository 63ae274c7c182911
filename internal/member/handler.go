package member

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hchen320/bestfriends/internal/message"
	"github.com/hchen320/bestfriends/pkg/response"
)

var validate = validator.New()

// Handler handles HTTP requests for member operations. Guestbook routes
// scoped to a member live here too, backed by the message service.
type Handler struct {
	service  *Service
	messages *message.Service
}

// NewHandler creates a new member handler with service dependencies injected
func NewHandler(service *Service, messages *message.Service) *Handler {
	return &Handler{service: service, messages: messages}
}

// Routes returns the router for member endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/set-group-leader", h.SetGroupLeader)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	// Member-scoped guestbook
	r.Get("/{id}/messages", h.ListMessages)
	r.Post("/{id}/messages", h.AddMessage)

	return r
}

// List handles GET /members
// @Summary      List all members
// @Description  Get every member, newest first
// @Tags         members
// @Produce      json
// @Success      200 {object} MemberListResponse
// @Router       /members [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list members")
		return
	}

	out := make([]*MemberResponse, len(members))
	for i, m := range members {
		out[i] = m.ToResponse()
	}
	response.JSON(w, http.StatusOK, MemberListResponse{Members: out})
}

// GetByID handles GET /members/{id}
// @Summary      Get member by ID
// @Tags         members
// @Produce      json
// @Param        id path int true "Member ID"
// @Success      200 {object} MemberResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /members/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	m, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get member")
		return
	}

	response.JSON(w, http.StatusOK, m.ToResponse())
}

// Create handles POST /members
// @Summary      Create a new member
// @Description  Name and location are required; tags and coordinates optional
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body CreateMemberRequest true "Member creation request"
// @Success      201 {object} map[string]MemberResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /members [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, "Name and location are required")
		return
	}

	m, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) || errors.Is(err, ErrLocationRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create member")
		return
	}

	response.JSON(w, http.StatusCreated, map[string]*MemberResponse{"member": m.ToResponse()})
}

// Update handles PUT /members/{id}
// @Summary      Update a member
// @Description  Full replace of all mutable fields
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id path int true "Member ID"
// @Param        request body UpdateMemberRequest true "Member update request"
// @Success      200 {object} map[string]MemberResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /members/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, "Name and location are required")
		return
	}

	m, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrLocationRequired):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update member")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]*MemberResponse{"member": m.ToResponse()})
}

// Delete handles DELETE /members/{id}
// @Summary      Delete a member
// @Description  Removes the member along with their messages and edit tokens
// @Tags         members
// @Produce      json
// @Param        id path int true "Member ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /members/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete member")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member deleted successfully"})
}

// SetGroupLeader handles POST /members/set-group-leader
// @Summary      Set the group leader
// @Description  Clears the flag on every member, then sets it on the target
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body SetGroupLeaderRequest true "Target member"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /members/set-group-leader [post]
func (h *Handler) SetGroupLeader(w http.ResponseWriter, r *http.Request) {
	var req SetGroupLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.MemberID == 0 {
		response.BadRequest(w, "memberId is required")
		return
	}

	if err := h.service.SetGroupLeader(r.Context(), req.MemberID); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to set group leader")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Group leader updated successfully"})
}

// ListMessages handles GET /members/{id}/messages
// @Summary      List a member's messages
// @Description  Up to the 20 most recent messages, newest first
// @Tags         members
// @Produce      json
// @Param        id path int true "Member ID"
// @Success      200 {array} message.MessageResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /members/{id}/messages [get]
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	messages, err := h.messages.ListForMember(r.Context(), id)
	if err != nil {
		if errors.Is(err, message.ErrMemberNotFound) {
			response.NotFound(w, "member not found")
			return
		}
		response.InternalError(w, "Failed to list messages")
		return
	}

	out := make([]*message.MessageResponse, len(messages))
	for i, m := range messages {
		out[i] = m.ToResponse()
	}
	response.JSON(w, http.StatusOK, out)
}

// AddMessage handles POST /members/{id}/messages
// @Summary      Post a guestbook message
// @Description  Content must be 1-20 characters after trimming
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id path int true "Member ID"
// @Param        request body message.AddMessageRequest true "Message"
// @Success      201 {object} map[string]int64
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /members/{id}/messages [post]
func (h *Handler) AddMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid member ID")
		return
	}

	var req message.AddMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	msgID, err := h.messages.Add(r.Context(), id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrMemberNotFound):
			response.NotFound(w, "member not found")
		case errors.Is(err, message.ErrContentRequired), errors.Is(err, message.ErrContentTooLong):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to add message")
		}
		return
	}

	response.JSON(w, http.StatusCreated, map[string]int64{"id": msgID})
}
