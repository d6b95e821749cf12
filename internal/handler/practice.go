package handler

import (
	"errors"
	"fmt"
	"strings"

	"traductor/internal/service"
	"traductor/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgNoLesson = "You are not in a lesson. Pick one to start."

// handleLessons lists the catalog's lessons
func (h *Handler) handleLessons(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, l := range h.practiceService.Lessons() {
		btnText := fmt.Sprintf("%s (%d)", l.Title, len(l.Sentences))
		rows = append(rows, markup.Row(markup.Data(btnText, "lesson_"+l.ID)))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.show(c, "📚 Choose a lesson:", markup)
}

// handleLessonSelection starts the lesson picked from the list
func (h *Handler) handleLessonSelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	lessonID := strings.TrimPrefix(strings.TrimSpace(data), "lesson_")

	prompt, err := h.practiceService.StartLesson(userID, lessonID)
	if errors.Is(err, service.ErrUnknownLesson) {
		return c.Respond(&tele.CallbackResponse{Text: "This lesson no longer exists"})
	}
	if err != nil {
		h.logger.Error("Failed to start lesson", zap.Error(err), zap.String("lesson_id", lessonID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to start the lesson"})
	}

	h.logger.Info("Lesson selected", zap.Int64("user_id", userID), zap.String("lesson_id", lessonID))
	return h.show(c, renderPrompt(prompt), practiceMarkup(""))
}

// handleAnswer judges a text answer against the active section
func (h *Handler) handleAnswer(c tele.Context, userID int64, text string) error {
	out, err := h.practiceService.Submit(userID, text)
	if errors.Is(err, service.ErrNoActiveLesson) {
		return c.Send(msgNoLesson, mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to submit answer", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}

	verdict := renderResult(out.Result)
	switch {
	case out.Summary != nil:
		return c.Send(verdict+"\n\n"+renderSummary(*out.Summary, h.practiceService.Describe), mainMenuMarkup())
	case out.Next != nil:
		return c.Send(verdict+"\n\n"+renderPrompt(*out.Next), practiceMarkup(""))
	case !out.Correct:
		return c.Send(verdict, practiceMarkup(out.Submission.ID))
	}

	prompt, err := h.practiceService.Prompt(userID)
	if err != nil {
		return c.Send(verdict, practiceMarkup(""))
	}
	return c.Send(verdict+"\n\n"+renderPrompt(prompt), practiceMarkup(""))
}

// handleForgive marks a wrong answer as correct after the fact
func (h *Handler) handleForgive(c tele.Context, data string) error {
	userID := c.Sender().ID
	submissionID := strings.TrimPrefix(strings.TrimSpace(data), "forgive_")

	reversal, err := h.practiceService.Forgive(userID, submissionID)
	switch {
	case errors.Is(err, service.ErrNoActiveLesson), errors.Is(err, session.ErrUnknownSubmission):
		return c.Respond(&tele.CallbackResponse{Text: "That answer belongs to a finished lesson"})
	case errors.Is(err, session.ErrAlreadyCorrect):
		return c.Respond(&tele.CallbackResponse{Text: "Already counted as correct"})
	case err != nil:
		h.logger.Error("Failed to forgive submission", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgError})
	}

	h.logger.Info("Answer forgiven",
		zap.Int64("user_id", userID),
		zap.String("submission_id", submissionID),
		zap.String("expected", reversal.Expected),
		zap.String("wrong", reversal.Wrong),
	)
	return h.show(c, "👍 Counted as correct. Type the answer to move on.", practiceMarkup(""))
}

// handleHint shows answer choices for the active section
func (h *Handler) handleHint(c tele.Context) error {
	userID := c.Sender().ID

	choices, err := h.practiceService.Hint(userID)
	if errors.Is(err, service.ErrNoActiveLesson) {
		return h.show(c, msgNoLesson, mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to build hint", zap.Error(err))
		return h.show(c, msgError, mainMenuMarkup())
	}

	text := "💡 One of these: " + strings.Join(choices, " · ")
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return c.Send(text)
}

// handleFinish ends the lesson early and shows its summary
func (h *Handler) handleFinish(c tele.Context) error {
	userID := c.Sender().ID

	summary, err := h.practiceService.Finish(userID)
	if errors.Is(err, service.ErrNoActiveLesson) {
		return h.show(c, msgNoLesson, mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to finish lesson", zap.Error(err))
		return h.show(c, msgError, mainMenuMarkup())
	}

	return h.show(c, renderSummary(summary, h.practiceService.Describe), mainMenuMarkup())
}

// handleMixups shows the learner's mixup table
func (h *Handler) handleMixups(c tele.Context) error {
	rows := h.practiceService.Mixups(c.Sender().ID, "")

	markup := &tele.ReplyMarkup{}
	if len(rows) > 0 {
		markup.Inline(markup.Row(btnClearMixups), markup.Row(btnMainMenu))
	} else {
		markup.Inline(markup.Row(btnMainMenu))
	}
	return h.show(c, renderMixups(rows), markup)
}

// handleClearMixups empties the learner's mixup table
func (h *Handler) handleClearMixups(c tele.Context) error {
	h.practiceService.ClearMixups(c.Sender().ID)
	return h.show(c, "🧹 Mixups cleared.", mainMenuMarkup())
}
