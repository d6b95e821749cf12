package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// callbackRoute names the handler for a callback's data
func callbackRoute(data string) string {
	for _, prefix := range []string{"lesson_", "forgive_", "page_", "day_"} {
		if strings.HasPrefix(data, prefix) {
			return prefix
		}
	}
	return data
}

// handleCallback handles callbacks whose unique has no registered handler
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch callbackRoute(data) {
	case "lesson_":
		return h.handleLessonSelection(c, data)
	case "forgive_":
		return h.handleForgive(c, data)
	case "page_":
		return h.handlePagination(c, data)
	case "day_":
		return h.handleDaySelection(c, data)
	case btnLessons.Unique:
		return h.handleLessons(c)
	case btnHint.Unique:
		return h.handleHint(c)
	case btnFinish.Unique:
		return h.handleFinish(c)
	case btnMixups.Unique:
		return h.handleMixups(c)
	case btnClearMixups.Unique:
		return h.handleClearMixups(c)
	case btnViewDays.Unique, btnBackToDays.Unique:
		return h.handleViewDays(c)
	case btnOverview.Unique:
		return h.handleOverview(c)
	case btnMainMenu.Unique:
		return h.handleMainMenu(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
