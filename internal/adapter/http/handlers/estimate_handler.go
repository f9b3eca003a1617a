package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "stonecraft/internal/adapter/http/dto/request"
	response "stonecraft/internal/adapter/http/dto/response"
	"stonecraft/internal/domain/pricing"
	"stonecraft/internal/usecase"
	"stonecraft/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_PAYLOAD", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidEstimatePathID  = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_ID", "Invalid estimate id", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for fabrication estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListEstimates godoc
//
//	@Summary	List all estimates
//	@Produce	json
//	@Success	200	{array}	response.EstimateResponse
//	@Router		/estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// CreateEstimate godoc
//
//	@Summary	Create an estimate; a Sent status also creates a follow-up task
//	@Accept		json
//	@Produce	json
//	@Param		estimate	body		request.EstimateRequest	true	"Estimate parameters"
//	@Success	201			{object}	response.EstimateResponse
//	@Router		/estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// UpdateEstimate godoc
//
//	@Summary	Replace an estimate; a submitted Sent status creates another follow-up task
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int						true	"Estimate id"
//	@Param		estimate	body		request.EstimateRequest	true	"Full replacement parameters"
//	@Success	200			{object}	response.EstimateResponse
//	@Router		/estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	id, ok := estimateIDParam(c)
	if !ok {
		return
	}

	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// DeleteEstimate godoc
//
//	@Summary	Delete an estimate; tasks referencing it are left untouched
//	@Param		id	path	int	true	"Estimate id"
//	@Success	204
//	@Router		/estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	id, ok := estimateIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// DuplicateEstimate copies an existing estimate under a fresh id. The copy
// inherits the source status verbatim; even a Sent source does not trigger
// a follow-up task on this path.
//
//	@Summary	Duplicate an estimate
//	@Produce	json
//	@Param		id	path		int	true	"Source estimate id"
//	@Success	201	{object}	response.EstimateResponse
//	@Router		/estimates/{id}/duplicate [post]
func (h *EstimateHandler) DuplicateEstimate(c *gin.Context) {
	id, ok := estimateIDParam(c)
	if !ok {
		return
	}

	estimate, err := h.usecase.Duplicate(c.Request.Context(), id)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// QuoteEstimate prices a parameter set without persisting anything. Invalid
// parameters are the "no price available" output state, reported as 422.
//
//	@Summary	Price a parameter set without saving
//	@Accept		json
//	@Produce	json
//	@Param		estimate	body		request.EstimateRequest	true	"Estimate parameters"
//	@Success	200			{object}	response.QuoteResponse
//	@Router		/estimates/quote [post]
func (h *EstimateHandler) QuoteEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	in := payload.ToInput()
	cost, err := pricing.Compute(pricing.Input{
		Length:         in.Length,
		Width:          in.Width,
		Thickness:      in.Thickness,
		MaterialCost:   in.MaterialCost,
		EdgeFinishCost: in.EdgeFinishCost,
		LaborCost:      in.LaborCost,
		TaxRate:        in.TaxRate,
		Discount:       in.Discount,
	})
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "No price available for these parameters", http.StatusUnprocessableEntity)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuoteResponse{Cost: cost})
}

func estimateIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidEstimatePathID.HTTPStatus, errInvalidEstimatePathID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateInput):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "No price available for these parameters", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
