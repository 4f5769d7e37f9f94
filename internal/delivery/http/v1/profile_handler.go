package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	candidateUC domain.CandidateUsecase
	employerUC  domain.EmployerUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, employerUC domain.EmployerUsecase) {
	handler := &ProfileHandler{candidateUC: candidateUC, employerUC: employerUC}

	profile := protected.Group("/profile")

	candidate := profile.Group("", middleware.RequireKind(domain.KindCandidate))
	{
		candidate.GET("/candidate", handler.GetCandidateProfile)
		candidate.PUT("/candidate", handler.UpdateCandidateProfile)
		candidate.PUT("/resume", handler.SetResume)
	}

	employer := profile.Group("", middleware.RequireKind(domain.KindEmployer))
	{
		employer.GET("/employer", handler.GetEmployerProfile)
		employer.PUT("/employer", handler.UpdateEmployerProfile)
	}
}

func (h *ProfileHandler) GetCandidateProfile(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))
	profile, err := h.candidateUC.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// UpdateCandidateProfile commits a full candidate document and echoes the
// canonical stored copy back for the client to reconcile against.
func (h *ProfileHandler) UpdateCandidateProfile(c *gin.Context) {
	var profile domain.CandidateProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	updated, err := h.candidateUC.UpdateProfile(c.Request.Context(), accountID, &profile)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", gin.H{"user": updated})
}

type ResumeRequest struct {
	ResumeURL string `json:"resumeUrl" binding:"required"`
}

// SetResume stores the reference to an externally uploaded resume document.
func (h *ProfileHandler) SetResume(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	updated, err := h.candidateUC.SetResume(c.Request.Context(), accountID, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume reference updated", gin.H{"user": updated})
}

func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyAccountID))
	profile, err := h.employerUC.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile", profile)
}

// UpdateEmployerProfile commits the whole employer working copy, nested
// projects tree included. Mandatory-field failures come back as 400 with
// the ordered label list.
func (h *ProfileHandler) UpdateEmployerProfile(c *gin.Context) {
	var profile domain.EmployerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	updated, err := h.employerUC.UpdateProfile(c.Request.Context(), accountID, &profile)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile updated successfully", gin.H{"user": updated})
}
