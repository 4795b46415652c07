package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BookingApp/internal/dto"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
	"github.com/GoArmGo/BookingApp/internal/usecase"
	"github.com/GoArmGo/BookingApp/internal/validation"
)

// UserHandler — обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: logger}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	var req dto.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}
	if err := validation.ValidateCreateUser(req).Err(); err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), rc, toCreateUserInput(req))
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, user, h.logger)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	users, err := h.userUseCase.ListUsers(r.Context(), rc)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, users, h.logger)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	user, err := h.userUseCase.GetUser(r.Context(), rc, id)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// UpdateUser — PATCH /users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}
	if err := validation.ValidateUpdateUser(req).Err(); err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateUser(r.Context(), rc, id, toUpdateUserInput(req))
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, user, h.logger)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	user, err := h.userUseCase.DeleteUser(r.Context(), rc, id)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, user, h.logger)
}
