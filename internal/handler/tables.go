package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/axiomhq/nhuff"
	"github.com/axiomhq/nhuff/internal/repo"
	"github.com/axiomhq/nhuff/internal/service"
)

type TableHandler struct {
	svc *service.CodecService
}

func NewTableHandler(s *service.CodecService) *TableHandler {
	return &TableHandler{svc: s}
}

// Create trains a table from the raw request body.
func (h *TableHandler) Create(c *gin.Context) {
	radix := 0
	if v := c.Query("radix"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radix must be an integer"})
			return
		}
		radix = d
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sum, err := h.svc.Train(c.Request.Context(), c.Param("name"), body, radix)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sum)
}

func (h *TableHandler) GetByName(c *gin.Context) {
	sum, err := h.svc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *TableHandler) List(c *gin.Context) {
	names, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": names})
}

func (h *TableHandler) Encode(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.svc.Encode(c.Request.Context(), c.Param("name"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=us-ascii", out)
}

func (h *TableHandler) Decode(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.svc.Decode(c.Request.Context(), c.Param("name"), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", out)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, nhuff.ErrEmptyInput),
		errors.Is(err, nhuff.ErrInvalidRadix),
		errors.Is(err, nhuff.ErrUnknownSymbol),
		errors.Is(err, nhuff.ErrMalformedStream):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
