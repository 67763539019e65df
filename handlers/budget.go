package handlers

import (
	"net/http"

	"github.com/LovationAdmin/expense-api/middleware"
	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/services"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	budgets *services.BudgetService
	reports *services.ReportService
	month   func() string
}

func NewBudgetHandler(budgets *services.BudgetService, reports *services.ReportService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, reports: reports, month: currentMonth}
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	filter := models.BudgetFilter{Month: c.Query("month"), Category: c.Query("category")}
	if filter.Month != "" && !models.IsValidMonth(filter.Month) {
		respondError(c, http.StatusBadRequest, models.CodeInvalidMonth, "Month must be in format YYYY-MM")
		return
	}
	if filter.Category != "" && !models.IsValidCategory(filter.Category) {
		respondError(c, http.StatusBadRequest, models.CodeInvalidCategory,
			"Invalid category. Must be one of: "+models.CategoryList())
		return
	}

	budgets, err := h.budgets.List(c.Request.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		respondServiceError(c, err, "list budgets")
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// UpsertBudget answers 201 when the (category, month) pair is new and 200
// when an existing limit was replaced.
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	var req models.UpsertBudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(c, err, "upsert budget")
		return
	}

	budget, created, err := h.budgets.Upsert(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		respondServiceError(c, err, "upsert budget")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, budget)
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, ok := pathID(c, "budget")
	if !ok {
		return
	}

	if err := h.budgets.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondServiceError(c, err, "delete budget")
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Message: "Budget deleted successfully", DeletedID: id})
}

func (h *BudgetHandler) GetProgress(c *gin.Context) {
	month, ok := monthParam(c, h.month)
	if !ok {
		return
	}

	progress, err := h.reports.BudgetProgress(c.Request.Context(), middleware.GetUserID(c), month)
	if err != nil {
		respondServiceError(c, err, "budget progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}
