package execute

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"placid-connector/internal/domain"
	"placid-connector/internal/http-server/handler/execute/dto"
	execute_uc "placid-connector/internal/usecase/execute"
)

type ExecuteHandler struct {
	executor  batchExecutor
	auth      authVerifier
	publisher ResultPublisher
	store     ObjectStore
	validate  *validator.Validate
	logger    *zlog.Zerolog
}

// NewExecuteHandler wires the batch executor with its optional
// collaborators; publisher and store may be nil when the corresponding
// backends are not configured.
func NewExecuteHandler(executor batchExecutor, auth authVerifier, publisher ResultPublisher, store ObjectStore, logger *zlog.Zerolog) *ExecuteHandler {
	return &ExecuteHandler{
		executor:  executor,
		auth:      auth,
		publisher: publisher,
		store:     store,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (h *ExecuteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := uuid.NewString()

	var req dto.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Str("request_id", requestID).Msg("Failed to decode request body")
		h.respondError(w, http.StatusBadRequest, "Invalid request format", nil)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn().Err(err).Str("request_id", requestID).Msg("Request validation failed")
		h.respondError(w, http.StatusBadRequest, "Request validation failed", err)
		return
	}

	items := make([]execute_uc.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, execute_uc.Item{
			Params: item.Params,
			Binary: newItemBinarySource(item.Binary, h.store),
		})
	}

	results, err := h.executor.Run(ctx, execute_uc.Request{
		Resource:       domain.ResourceKind(req.Resource),
		Operation:      execute_uc.Operation(req.Operation),
		ContinueOnFail: req.ContinueOnFail,
		Items:          items,
	})

	response := dto.ExecuteResponse{
		RequestID: requestID,
		Results:   toResultDTOs(results),
	}

	if err != nil {
		switch {
		case errors.Is(err, execute_uc.ErrUnknownResource), errors.Is(err, execute_uc.ErrUnknownOperation):
			h.logger.Warn().Err(err).Str("request_id", requestID).Msg("Unsupported request")
			h.respondError(w, http.StatusBadRequest, err.Error(), nil)
			return
		default:
			h.logger.Error().
				Err(err).
				Str("request_id", requestID).
				Str("resource", req.Resource).
				Str("operation", req.Operation).
				Msg("Batch aborted")

			response.Error = err.Error()
			h.publishResponse(requestID, response)
			h.respondJSON(w, http.StatusUnprocessableEntity, response)
			return
		}
	}

	h.logger.Info().
		Str("request_id", requestID).
		Str("resource", req.Resource).
		Str("operation", req.Operation).
		Int("items", len(req.Items)).
		Int("results", len(results)).
		Msg("Batch executed")

	h.publishResponse(requestID, response)
	h.respondJSON(w, http.StatusOK, response)
}

// CheckUpstream verifies that the configured API key is accepted by the
// Placid API.
func (h *ExecuteHandler) CheckUpstream(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.VerifyAuth(r.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("Upstream auth check failed")
		h.respondError(w, http.StatusBadGateway, "Upstream authentication failed", err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ExecuteHandler) publishResponse(requestID string, response dto.ExecuteResponse) {
	if h.publisher == nil {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("Failed to marshal result for publishing")
		return
	}

	// Publishing is best effort and must not delay the HTTP response.
	go func() {
		if err := h.publisher.Publish(context.Background(), []byte(requestID), payload); err != nil {
			h.logger.Error().Err(err).Str("request_id", requestID).Msg("Failed to publish result")
		}
	}()
}

func toResultDTOs(results []execute_uc.Result) []dto.Result {
	out := make([]dto.Result, 0, len(results))
	for _, res := range results {
		out = append(out, dto.Result{
			JSON:      res.JSON,
			Error:     res.Error,
			ItemIndex: res.ItemIndex,
		})
	}
	return out
}

func (h *ExecuteHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *ExecuteHandler) respondError(w http.ResponseWriter, status int, message string, err error) {
	response := dto.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}

	if err != nil {
		response.Details = err.Error()
	}

	h.respondJSON(w, status, response)
}
