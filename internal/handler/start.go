package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgPassword = "¡Hola! Send the password to start practicing:"
	msgMainMenu = "🏠 Main menu\n\nChoose an action:"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.learnerService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgError)
	}

	authorized, err := h.learnerService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}

	if !authorized {
		return c.Send(msgPassword)
	}

	return c.Send(msgMainMenu, mainMenuMarkup())
}

// handleMainMenu returns to the main menu from a callback
func (h *Handler) handleMainMenu(c tele.Context) error {
	return h.show(c, msgMainMenu, mainMenuMarkup())
}

// handleText handles the password for new learners and answers for everyone else
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.learnerService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.learnerService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgError)
	}

	if !authorized {
		if h.learnerService.CheckPassword(text) {
			if err := h.learnerService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send(msgError)
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			return c.Send("✅ Access granted!\n\n"+msgMainMenu, mainMenuMarkup())
		}

		return c.Send("Wrong password")
	}

	return h.handleAnswer(c, userID, text)
}
