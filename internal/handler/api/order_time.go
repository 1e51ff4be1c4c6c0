package api

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	reqdto "order-time-checker/internal/handler/dto/request"
	resdto "order-time-checker/internal/handler/dto/response"
	"order-time-checker/internal/handler/httperr"
	"order-time-checker/internal/handler/validation"
	"order-time-checker/internal/pkg/errs"
	"order-time-checker/internal/usecase"

	"github.com/gin-gonic/gin"
)

//go:embed form.html
var formHTML []byte

type OrderTimeHandler struct {
	uc        usecase.OrderTimeUseCase
	validator *validation.Validator
}

func NewOrderTimeHandler(uc usecase.OrderTimeUseCase, v *validation.Validator) *OrderTimeHandler {
	return &OrderTimeHandler{uc: uc, validator: v}
}

// @Summary Validate order time
// @Description Check whether a requested pickup, delivery or date-time order slot is acceptable.
// @Description result >= 0 is the lead time in minutes. -3: requested time in the past (pickup/delivery),
// @Description -2: past date-time or outside restaurant hours, -1: outside order acceptance hours,
// @Description 0: outside the lead time range or beyond the allowed days ahead.
// @Tags order-time
// @Accept json
// @Produce json
// @Param request body reqdto.OrderTimeRequest true "Order time request"
// @Success 201 {object} resdto.OrderTimeResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /order-time [post]
func (h *OrderTimeHandler) Validate(c *gin.Context) {
	var req reqdto.OrderTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortValidation(c, errs.Mark(err, errs.ErrMalformedBody), []string{bindMessage(err)})
		return
	}

	if _, messages := h.validator.ValidateRequest(req.Fields()); len(messages) > 0 {
		err := errs.Mark(errs.New(strings.Join(messages, "; ")), errs.ErrValidationFailed)
		httperr.AbortValidation(c, err, messages)
		return
	}

	outcome, err := h.uc.Validate(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errs.Is(err, errs.ErrValidationFailed) {
			httperr.AbortValidation(c, err, []string{err.Error()})
			return
		}
		slog.Error("order time evaluation failed", "error", err, "stack", errs.ExtractStackLines(err, 10))
		httperr.AbortInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOutcome(outcome))
}

// @Summary Order time test form
// @Description HTML form that posts a date-time request to /order-time and shows the result.
// @Tags order-time
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /order-time/form [get]
func (h *OrderTimeHandler) Form(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", formHTML)
}

func bindMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " has an invalid type."
	}
	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return "property " + strings.Trim(field, `"`) + " should not exist."
	}
	return "request body must be a JSON object."
}
