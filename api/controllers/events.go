package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeshu2004/real-time-pooling/logging"
	"github.com/yeshu2004/real-time-pooling/session"
)

type EventsController struct {
	broker      *session.Broker
	coordinator *session.Coordinator
}

func NewEventsController(broker *session.Broker, coordinator *session.Coordinator) *EventsController {
	return &EventsController{
		broker:      broker,
		coordinator: coordinator,
	}
}

func (c *EventsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/events", c.streamEvents)
}

// streamEvents godoc
// @Summary Subscribe to poll session events
// @Description Server-sent event stream of poll-started, tick, and poll-ended events; a running poll is replayed as poll-started on attach
// @Tags events
// @Produce text/event-stream
// @Success 200
// @Router /api/events [get]
func (c *EventsController) streamEvents(g *gin.Context) {
	g.Writer.Header().Set("Content-Type", "text/event-stream")
	g.Writer.Header().Set("Cache-Control", "no-cache")
	g.Writer.Header().Set("Connection", "keep-alive")
	g.Writer.WriteHeader(http.StatusOK)

	// Late joiners catch up on the running poll before live events arrive.
	if snapshot := c.coordinator.ActivePollSnapshot(); snapshot != nil {
		g.SSEvent(string(session.EventPollStarted), &session.PollStartedPayload{
			PollID:           snapshot.PollID,
			Question:         snapshot.Question,
			Options:          snapshot.Options,
			TimeLimitSeconds: snapshot.TimeLimitSeconds,
		})
		g.Writer.Flush()
	}

	ch := c.broker.Subscribe()
	defer c.broker.Unsubscribe(ch)

	logging.Log.Infof("EVENTS: subscriber attached from %s", g.ClientIP())
	clientGone := g.Request.Context().Done()

	for {
		select {
		case <-clientGone:
			logging.Log.Infof("EVENTS: subscriber from %s detached", g.ClientIP())
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			g.SSEvent(string(event.Type), event.Payload())
			g.Writer.Flush()
		}
	}
}
