package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/common"
	"github.com/ekaraca/cardscan/internal/entity"
)

// CreateContactRequest is the body of POST /v1/contacts, usually the
// (possibly user-corrected) scan result plus the job that produced it.
type CreateContactRequest struct {
	CustomerName string   `json:"customer_name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Website      string   `json:"website"`
	Notes        []string `json:"notes"`
	Source       string   `json:"source"`
	JobID        string   `json:"job_id"`
}

func (s *Server) handleCreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	v := common.NewValidator()
	v.Field("customer_name", req.CustomerName, common.Required)
	v.Field("customer_name", req.CustomerName, func(f string, val interface{}) *common.ValidationError {
		return common.MaxLength(f, val, constants.MaxCustomerNameLen)
	})
	if req.JobID != "" {
		v.Field("job_id", req.JobID, common.UUID)
	}
	if v.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"error": v.ErrorMessage()})
		return
	}

	source := req.Source
	if source == "" {
		source = string(constants.StrategyHeuristicFallback)
	}
	contact := &entity.Contact{
		CustomerName: req.CustomerName,
		Phone:        optional(req.Phone),
		Email:        optional(req.Email),
		Address:      optional(req.Address),
		Website:      optional(req.Website),
		Notes:        req.Notes,
		Source:       source,
	}

	created, err := s.contacts.Create(c.Request.Context(), contact)
	if err != nil {
		s.logger.Error("create contact failed", "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "create contact failed"})
		return
	}

	if req.JobID != "" && s.jobs != nil {
		jobID, _ := uuid.Parse(req.JobID)
		if err := s.jobs.SetContactID(c.Request.Context(), jobID, created.ID); err != nil {
			s.logger.Warn("link job to contact failed", "job_id", jobID, "contact_id", created.ID, "error", err)
		}
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleGetContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}
	contact, err := s.contacts.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(common.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (s *Server) handleListContacts(c *gin.Context) {
	contacts, err := s.contacts.List(c.Request.Context())
	if err != nil {
		s.logger.Error("list contacts failed", "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "list contacts failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (s *Server) handleExportContacts(c *gin.Context) {
	data, err := s.exporter.ExportContactsXLSX(c.Request.Context())
	if err != nil {
		s.logger.Error("export contacts failed", "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="contacts.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
