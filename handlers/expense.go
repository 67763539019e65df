package handlers

import (
	"net/http"
	"strings"

	"github.com/LovationAdmin/expense-api/middleware"
	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/services"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenses *services.ExpenseService
	reports  *services.ReportService
	month    func() string
}

func NewExpenseHandler(expenses *services.ExpenseService, reports *services.ReportService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, reports: reports, month: currentMonth}
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}

	filter := models.ExpenseFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Category:  c.Query("category"),
		Limit:     limit,
		Offset:    offset,
	}
	if filter.Category != "" && !models.IsValidCategory(filter.Category) {
		respondError(c, http.StatusBadRequest, models.CodeInvalidCategory,
			"Invalid category. Must be one of: "+models.CategoryList())
		return
	}

	expenses, err := h.expenses.List(c.Request.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		respondServiceError(c, err, "list expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, "create expense")
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		respondServiceError(c, err, "create expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, ok := pathID(c, "expense")
	if !ok {
		return
	}

	var req models.UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, "update expense")
		return
	}

	expense, err := h.expenses.Update(c.Request.Context(), middleware.GetUserID(c), id, req)
	if err != nil {
		respondServiceError(c, err, "update expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := pathID(c, "expense")
	if !ok {
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondServiceError(c, err, "delete expense")
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Message: "Expense deleted successfully", DeletedID: id})
}

// GetStats aggregates every expense the caller owns.
func (h *ExpenseHandler) GetStats(c *gin.Context) {
	stats, err := h.reports.Stats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "expense stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ExpenseHandler) SuggestCategory(c *gin.Context) {
	description := strings.TrimSpace(c.Query("description"))
	if description == "" {
		respondError(c, http.StatusBadRequest, models.CodeMissingFields, "description is required")
		return
	}

	suggestion, err := h.expenses.SuggestCategory(c.Request.Context(), middleware.GetUserID(c), description)
	if err != nil {
		respondServiceError(c, err, "suggest category")
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func (h *ExpenseHandler) GetInsights(c *gin.Context) {
	month, ok := monthParam(c, h.month)
	if !ok {
		return
	}

	insights, err := h.reports.Insights(c.Request.Context(), middleware.GetUserID(c), month)
	if err != nil {
		respondServiceError(c, err, "expense insights")
		return
	}
	c.JSON(http.StatusOK, insights)
}
