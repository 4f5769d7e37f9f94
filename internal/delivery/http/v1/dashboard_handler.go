package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	protected.GET("/dashboard", handler.Summary)
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	account := &domain.Account{
		ID:    c.GetString(string(domain.KeyAccountID)),
		Email: c.GetString(string(domain.KeyEmail)),
		Kind:  domain.AccountKind(c.GetString(string(domain.KeyAccountKind))),
	}

	summary, err := h.dashboardUC.Summary(c.Request.Context(), account)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard summary", summary)
}
