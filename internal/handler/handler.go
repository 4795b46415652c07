package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
	"github.com/GoArmGo/BookingApp/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, errorResponse{Error: message}, logger)
}

// respondWithDomainError переводит ошибку бизнес-логики в HTTP-статус.
// Неизвестные ошибки логируются и скрываются от клиента.
func respondWithDomainError(w http.ResponseWriter, rc reqctx.RequestContext, err error, logger *slog.Logger) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		logger.Warn("request validation failed", "request_id", rc.RequestID, "error", err)
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: verrs}, logger)
		return
	}

	var derr *domain.Error
	if errors.As(err, &derr) {
		code := statusFor(derr.Kind)
		logger.Warn("request rejected", "request_id", rc.RequestID, "status", code, "error", err)
		respondWithError(w, code, derr.Message, logger)
		return
	}

	logger.Error("unhandled error", "request_id", rc.RequestID, "error", err)
	respondWithError(w, http.StatusInternalServerError, "Internal server error", logger)
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON читает тело запроса. Неизвестные поля игнорируются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.InvalidArgumentf("Request body is required")
		}
		return domain.InvalidArgumentf("Malformed JSON body: %v", err)
	}
	return nil
}

// parseID достаёт и проверяет {id} из пути.
func parseID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	if !validation.IsUUID(raw) {
		return uuid.Nil, domain.InvalidArgumentf("Validation failed (uuid is expected)")
	}
	return uuid.Parse(raw)
}
