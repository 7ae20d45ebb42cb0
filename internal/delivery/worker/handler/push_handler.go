package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"syncfloww/config"
	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/constants"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"
	"syncfloww/internal/infra/pubsub"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// backgroundProcessTimeout bounds a task acknowledged before it was processed.
const backgroundProcessTimeout = 5 * time.Minute

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives agent task events pushed by Pub/Sub.
// A 503 asks Pub/Sub to redeliver; every other outcome acknowledges the message.
// Pushes from the local publisher are acknowledged with 202 and processed in the background.
type PushHandler struct {
	verifyPushAuth bool
	ackFirst       bool
	validateToken  tokenValidator
	logger         *slog.Logger
	processor      usecase.TaskProcessor

	inflight sync.WaitGroup
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Processor usecase.TaskProcessor
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google push requests carry an OIDC token; the local publisher does not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		ackFirst:       params.Config.PubSub != nil && params.Config.PubSub.Provider == constants.PubSubProviderLocal,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		processor:      params.Processor,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeAgentTaskEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode agent task event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	taskID, err := uuid.Parse(event.TaskID)
	if err != nil {
		// Redelivery cannot fix a malformed id.
		reqLogger.Error("[Worker] Event carries an invalid task id",
			slog.String("task_id", event.TaskID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing agent task",
		slog.String("task_id", event.TaskID),
		slog.String("agent_id", event.AgentID),
		slog.String("task_type", event.TaskType),
	)

	if h.ackFirst {
		h.inflight.Add(1)
		go func() {
			defer h.inflight.Done()

			bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), backgroundProcessTimeout)
			defer cancel()

			if err := h.processor.Process(bgCtx, taskID); err != nil {
				reqLogger.Error("[Worker] Failed to process agent task",
					slog.String("task_id", event.TaskID),
					slog.Any("error", err),
				)
			}
		}()

		return c.NoContent(http.StatusAccepted)
	}

	if err := h.processor.Process(ctx, taskID); err != nil {
		reqLogger.Error("[Worker] Failed to process agent task",
			slog.String("task_id", event.TaskID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// Drain waits for background processing to finish or ctx to end.
func (h *PushHandler) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "agent tasks still running at shutdown")
	}
}

// extractRequestID prefers message attributes, then the event payload, then the X-Request-Id header.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.AgentTaskEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing or malformed authorization header")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil && req.Header.Get(echo.HeaderXForwardedProto) != "https" {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
