package handler

import (
	"github.com/blueverse/blueverse-api/internal/application/service"
	"github.com/blueverse/blueverse-api/internal/presentation/http/dto/request"
	"github.com/blueverse/blueverse-api/internal/presentation/http/dto/response"
	"github.com/blueverse/blueverse-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create runs the invoice pipeline: validate, persist, render, email.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required invoice fields.")
		return
	}

	input := &service.CreateInvoiceInput{
		Customer:      req.Customer,
		Discounts:     req.Discounts,
		State:         req.State,
		TransactionID: req.TransactionID,
	}
	if req.ServiceDetails != nil {
		input.ServiceDetails = &service.ServiceDetailsInput{
			ID:          req.ServiceDetails.ID,
			ServiceName: req.ServiceDetails.ServiceName,
			Type:        req.ServiceDetails.Type,
			Price:       req.ServiceDetails.Price,
		}
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created and sent successfully!", gin.H{"invoice": invoice})
}

// Get handles getting a single invoice by id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", gin.H{"invoice": invoice})
}

// ListByCustomer handles listing all invoices for one customer
func (h *InvoiceHandler) ListByCustomer(c *gin.Context) {
	invoices, err := h.invoiceService.ListCustomerInvoices(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoices retrieved successfully", gin.H{"invoices": invoices})
}
