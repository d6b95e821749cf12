package middleware

import (
	"traductor/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgError         = "Something went wrong. Please try again later."
	msgNeedsPassword = "Send the password to continue."
)

// Auth stops updates from learners who have not entered the password yet
func Auth(learnerService *service.LearnerService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if err := learnerService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return reply(c, msgError)
			}

			authorized, err := learnerService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, msgError)
			}

			if !authorized {
				logger.Debug("Blocked unauthorized update", zap.Int64("user_id", userID))
				return reply(c, msgNeedsPassword)
			}

			return next(c)
		}
	}
}

// reply answers a callback with an alert, anything else with a message
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
