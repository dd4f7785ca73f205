package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"geozone/internal/core/domain/events"
	"geozone/internal/core/domain/model/kernel"
	"geozone/internal/hub"
	"geozone/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	// streamBufferSize bounds the per-connection send buffer. A client that
	// stops reading loses messages instead of stalling the hub.
	streamBufferSize = 64

	keepaliveInterval = 30 * time.Second
)

// streamClient adapts one SSE connection to the hub's Conn interface. Send
// drops on a full buffer so a slow reader never blocks a publish.
type streamClient struct {
	id string
	ch chan hub.Envelope
}

func newStreamClient() *streamClient {
	return &streamClient{
		id: kernel.NewUUID().String(),
		ch: make(chan hub.Envelope, streamBufferSize),
	}
}

func (c *streamClient) ID() string {
	return c.id
}

func (c *streamClient) Send(envelope hub.Envelope) error {
	select {
	case c.ch <- envelope:
		return nil
	default:
		return fmt.Errorf("connection %q send buffer is full", c.id)
	}
}

// Stream handles GET /api/v1/stream - opens an SSE connection, registers it
// with the hub and pumps subscribed events until the client goes away. An
// optional topics query parameter (comma separated) seeds subscriptions.
func (s *Server) Stream(ctx echo.Context) error {
	client := newStreamClient()
	if err := s.hub.Register(client); err != nil {
		return internalError(ctx, "Failed to register stream connection")
	}
	defer s.hub.Disconnect(client.ID())

	for _, topic := range seedTopics(ctx.QueryParam("topics")) {
		// Registration just succeeded, so Join cannot report unknown conn.
		_ = s.hub.Join(client.ID(), topic)
	}

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)

	if err := writeSSE(response, "connected", ConnectedEvent{ConnectionID: client.ID()}); err != nil {
		return nil
	}
	response.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	requestCtx := ctx.Request().Context()
	for {
		select {
		case <-requestCtx.Done():
			return nil
		case envelope := <-client.ch:
			if err := writeSSE(response, "message", envelope); err != nil {
				return nil
			}
			response.Flush()
		case <-keepalive.C:
			if _, err := fmt.Fprint(response, ": keepalive\n\n"); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}

// StreamTopics handles POST /api/v1/stream/:connectionId/topics - applies
// one join/leave control message to an open stream connection.
func (s *Server) StreamTopics(ctx echo.Context) error {
	connectionID := ctx.Param("connectionId")

	var request TopicControlRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	verb, topic, err := resolveControl(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var controlErr error
	if verb == "join" {
		controlErr = s.hub.Join(connectionID, topic)
	} else {
		controlErr = s.hub.Leave(connectionID, topic)
	}

	if controlErr != nil {
		if errors.Is(controlErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Connection not found")
		}
		return internalError(ctx, "Failed to update subscriptions")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// resolveControl splits an action like "join-courier" into its verb and the
// concrete topic it addresses.
func resolveControl(request TopicControlRequest) (string, events.Topic, error) {
	verb, subject, found := strings.Cut(request.Action, "-")
	if !found || (verb != "join" && verb != "leave") {
		return "", "", fmt.Errorf("unknown action %q", request.Action)
	}

	if subject == "dashboard" {
		return verb, events.TopicDashboard, nil
	}

	if request.ID == "" {
		return "", "", fmt.Errorf("action %q requires an id", request.Action)
	}

	switch subject {
	case "order":
		return verb, events.OrderTopic(request.ID), nil
	case "platform":
		return verb, events.PlatformTopic(request.ID), nil
	case "courier":
		return verb, events.CourierTopic(request.ID), nil
	case "zone":
		return verb, events.ZoneTopic(request.ID), nil
	default:
		return "", "", fmt.Errorf("unknown action %q", request.Action)
	}
}

func seedTopics(raw string) []events.Topic {
	topics := make([]events.Topic, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			topics = append(topics, events.Topic(part))
		}
	}
	return topics
}

func writeSSE(w *echo.Response, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}
