package handler

import (
	"fmt"
	"strconv"
	"strings"

	"traductor/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgNoHistory = "You have no finished lessons yet"

// handleViewDays shows the first page of days with finished lessons
func (h *Handler) handleViewDays(c tele.Context) error {
	return h.showDays(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	pageStr := strings.TrimPrefix(strings.TrimSpace(data), "page_")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showDays(c, page)
}

func (h *Handler) showDays(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.statsService.GetDaysList(userID, page)
	if err != nil {
		h.logger.Error("Failed to get days list", zap.Error(err))
		return h.notify(c, "Failed to load history")
	}

	if len(days) == 0 {
		return h.notify(c, msgNoHistory)
	}

	markup := daysMarkup(days, page, totalPages)
	return h.show(c, "📅 Your days:", markup)
}

func daysMarkup(days []domain.Day, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, day := range days {
		btnText := fmt.Sprintf("%s (%d)", day.DisplayString(), day.SummaryCount)
		rows = append(rows, markup.Row(markup.Data(btnText, "day_"+day.DateString())))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// handleDaySelection shows the lessons finished on the selected day
func (h *Handler) handleDaySelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	dateStr := strings.TrimPrefix(strings.TrimSpace(data), "day_")

	summaries, err := h.statsService.GetSummariesByDate(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get summaries by date", zap.Error(err), zap.String("date", dateStr))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load"})
	}

	if len(summaries) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "No lessons on this day"})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBackToDays, btnMainMenu))
	return h.show(c, renderStoredSummaries(summaries), markup)
}

// handleOverview shows totals across recent lessons
func (h *Handler) handleOverview(c tele.Context) error {
	overview, err := h.statsService.Overview(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to build overview", zap.Error(err))
		return h.notify(c, "Failed to load overview")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))
	return h.show(c, renderOverview(overview, h.practiceService.Describe), markup)
}

// notify answers a callback with an alert, a command with a message
func (h *Handler) notify(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
