package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lohum/schemetrack/internal/application/dashboard"
)

// SchemeHandler serves the dashboard read API.
type SchemeHandler struct {
	service *dashboard.Service
	now     func() time.Time
}

// NewSchemeHandler constructs a SchemeHandler.
func NewSchemeHandler(service *dashboard.Service) *SchemeHandler {
	return &SchemeHandler{service: service, now: time.Now}
}

// List serves GET /api/v1/schemes: the full overview bundle.
func (h *SchemeHandler) List(c *gin.Context) {
	overview, err := h.service.Overview(h.today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Detail serves GET /api/v1/schemes/detail?row=&scheme=: one scheme's full
// display bundle. Both parameters are optional; resolution falls back to the
// first record.
func (h *SchemeHandler) Detail(c *gin.Context) {
	detail, err := h.service.Detail(h.today(), c.Query("row"), c.Query("scheme"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Summary serves GET /api/v1/summary: collection aggregates only.
func (h *SchemeHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(h.today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *SchemeHandler) today() time.Time {
	return h.now()
}
