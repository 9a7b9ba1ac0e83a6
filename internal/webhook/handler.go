package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"homestead-calendar/internal/calendar"
	pkgResponse "homestead-calendar/pkg/response"
)

const maxBodyBytes = 64 << 10

// HandleTaskWebhook godoc
// @Summary     Task change webhook
// @Description Called by the homestead backend when a task changes; schedules a calendar refresh.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Homestead-Signature header string true "sha256=<hex HMAC of the body>"
// @Param       body body TaskEvent true "Task event"
// @Success     200 {object} pkgResponse.Resp "accepted or ignored"
// @Failure     401 {object} pkgResponse.Resp "Invalid signature"
// @Failure     403 {object} pkgResponse.Resp "IP not allowed"
// @Failure     429 {object} pkgResponse.Resp "Rate limit exceeded"
// @Router      /webhook/tasks [POST]
func (h *Handler) HandleTaskWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	source := c.ClientIP()
	if err := h.security.ValidateIPAddress(source); err != nil {
		h.l.Warnf(ctx, "webhook.HandleTaskWebhook: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	if err := h.security.CheckRateLimit(source); err != nil {
		h.l.Warnf(ctx, "webhook.HandleTaskWebhook: %v", err)
		c.JSON(http.StatusTooManyRequests, pkgResponse.Resp{
			ErrorCode: http.StatusTooManyRequests,
			Message:   "rate limit exceeded",
		})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		h.l.Errorf(ctx, "webhook.HandleTaskWebhook: read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateSignature(body, c.GetHeader(SignatureHeader)); err != nil {
		h.l.Warnf(ctx, "webhook.HandleTaskWebhook: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var event TaskEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.l.Warnf(ctx, "webhook.HandleTaskWebhook: decode: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	switch event.Event {
	case EventTaskCreated, EventTaskUpdated, EventTaskDeleted:
	default:
		h.l.Infof(ctx, "webhook.HandleTaskWebhook: ignoring event %q", event.Event)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	h.l.Infof(ctx, "webhook.HandleTaskWebhook: %s task=%s project=%s", event.Event, event.TaskID, event.ProjectID)
	h.async(h.refresh)

	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// refresh reloads the published window once the request has been answered.
func (h *Handler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := h.refresher.Refresh(ctx); err != nil && !errors.Is(err, calendar.ErrStaleWindowResponse) {
		h.l.Warnf(ctx, "webhook.refresh: %v", err)
	}
}
