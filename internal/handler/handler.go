package handler

import (
	"traductor/internal/middleware"
	"traductor/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgError = "Something went wrong. Please try again later."

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	learnerService  *service.LearnerService
	practiceService *service.PracticeService
	statsService    *service.StatsService
	logger          *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	learnerService *service.LearnerService,
	practiceService *service.PracticeService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		learnerService:  learnerService,
		practiceService: practiceService,
		statsService:    statsService,
		logger:          logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Open to everyone: /start and plain text, which doubles as the password prompt
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	authed := h.bot.Group()
	authed.Use(middleware.Auth(h.learnerService, h.logger))

	authed.Handle("/lessons", h.handleLessons)
	authed.Handle("/hint", h.handleHint)
	authed.Handle("/finish", h.handleFinish)
	authed.Handle("/mixups", h.handleMixups)
	authed.Handle("/history", h.handleViewDays)
	authed.Handle("/overview", h.handleOverview)

	authed.Handle(&btnLessons, h.handleLessons)
	authed.Handle(&btnHint, h.handleHint)
	authed.Handle(&btnFinish, h.handleFinish)
	authed.Handle(&btnMixups, h.handleMixups)
	authed.Handle(&btnClearMixups, h.handleClearMixups)
	authed.Handle(&btnViewDays, h.handleViewDays)
	authed.Handle(&btnBackToDays, h.handleViewDays)
	authed.Handle(&btnOverview, h.handleOverview)
	authed.Handle(&btnMainMenu, h.handleMainMenu)

	// Generic callback handler for dynamic data
	authed.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnLessons = tele.Btn{
		Unique: "lessons",
		Text:   "📚 Lessons",
	}
	btnHint = tele.Btn{
		Unique: "hint",
		Text:   "💡 Hint",
	}
	btnFinish = tele.Btn{
		Unique: "finish",
		Text:   "🏁 Finish lesson",
	}
	btnMixups = tele.Btn{
		Unique: "mixups",
		Text:   "🔀 My mixups",
	}
	btnClearMixups = tele.Btn{
		Unique: "clear_mixups",
		Text:   "🧹 Clear mixups",
	}
	btnViewDays = tele.Btn{
		Unique: "view_days",
		Text:   "📅 History",
	}
	btnBackToDays = tele.Btn{
		Unique: "back_to_days",
		Text:   "◀️ To days",
	}
	btnOverview = tele.Btn{
		Unique: "overview",
		Text:   "📊 Overview",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLessons),
		menu.Row(btnMixups, btnOverview),
		menu.Row(btnViewDays),
	)
	return menu
}

// practiceMarkup is shown under prompts and verdicts
func practiceMarkup(forgiveID string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	if forgiveID != "" {
		rows = append(rows, markup.Row(markup.Data("🙋 I was right", "forgive_"+forgiveID)))
	}
	rows = append(rows, markup.Row(btnHint, btnFinish))
	markup.Inline(rows...)
	return markup
}

// show edits the callback's message, or sends a new one for commands
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}
