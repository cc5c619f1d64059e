package httperr

import (
	"net/http"

	"vending-machine/internal/domain/machine"
	"vending-machine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

// Order matters: InvalidDenomination before the generic validation mark.
var domainMappings = []mapping{
	{errs.ErrInvalidDenomination, http.StatusBadRequest, "Invalid denomination"},
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrOutOfStock, http.StatusConflict, "Product out of stock"},
	{errs.ErrInsufficientStock, http.StatusConflict, "Insufficient stock"},
	{errs.ErrInsufficientFunds, http.StatusConflict, "Insufficient funds"},
	{errs.ErrExactChangeImpossible, http.StatusConflict, "Exact change impossible"},
	{errs.ErrNoSelection, http.StatusConflict, "No product selected"},
	{errs.ErrNothingToCancel, http.StatusConflict, "Nothing to cancel"},
}

// StatusFor maps a machine error to its HTTP status and public message.
func StatusFor(err error) (int, string) {
	for _, m := range domainMappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal error"
}

// AbortWithDomainError aborts with the status of err's taxonomy class. The contextual message
// is exposed as detail for client errors only.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	if status >= http.StatusInternalServerError {
		AbortWithError(c, status, err, msg, nil)
		return
	}

	detail := gin.H{"reason": err.Error()}
	var funds *machine.InsufficientFundsError
	if errs.As(err, &funds) {
		detail["price"] = funds.Price.Int64()
		detail["inserted"] = funds.Inserted.Int64()
		detail["missing"] = funds.Missing.Int64()
	}
	AbortWithError(c, status, err, msg, detail)
}
