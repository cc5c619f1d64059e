package api

import (
	"net/http"
	"strconv"
	"strings"

	reqdto "vending-machine/internal/handler/dto/request"
	resdto "vending-machine/internal/handler/dto/response"
	"vending-machine/internal/handler/httperr"
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/usecase/commands"
	"vending-machine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MachineHandler struct {
	cmds commands.MachineCommands
	q    queries.MachineQueries
}

func NewMachineHandler(cmds commands.MachineCommands, q queries.MachineQueries) *MachineHandler {
	return &MachineHandler{cmds: cmds, q: q}
}

// @Summary Machine status
// @Description Current state, inserted money, selection, stock and cash box. Optionally repeats customer amounts in a display currency.
// @Tags machine
// @Produce json
// @Param currency query string false "Display currency code (e.g. USD)"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} httperr.Response
// @Router /machine/status [get]
func (h *MachineHandler) Status(c *gin.Context) {
	view, err := h.q.Status(c.Request.Context(), strings.TrimSpace(c.Query("currency")))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusView(view))
}

// @Summary Sales statistics
// @Tags machine
// @Produce json
// @Success 200 {object} resdto.StatisticsResponse
// @Router /machine/statistics [get]
func (h *MachineHandler) Statistics(c *gin.Context) {
	view, err := h.q.Statistics(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatisticsView(view))
}

// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *MachineHandler) ListProducts(c *gin.Context) {
	list, err := h.q.Products(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(list.Products, list.Currency))
}

// @Summary Purchase feasibility
// @Description Checks without side effects whether the product could be bought with the given amount
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Param amount query int true "Amount in minor units"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /products/{code}/availability [get]
func (h *MachineHandler) Availability(c *gin.Context) {
	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil || amount < 0 {
		if err == nil {
			err = errNegativeAmount
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}
	view, err := h.q.Availability(c.Request.Context(), c.Param("code"), money.Amount(amount))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Insert money
// @Description Insert one coin or note, either as minor units (amount) or as a decimal value (value)
// @Tags machine
// @Accept json
// @Produce json
// @Param request body reqdto.InsertMoneyRequest true "Coin or note"
// @Success 200 {object} resdto.InsertMoneyResponse
// @Failure 400 {object} httperr.Response
// @Router /machine/money [post]
func (h *MachineHandler) InsertMoney(c *gin.Context) {
	var req reqdto.InsertMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.InsertMoney(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInsertResult(result))
}

// @Summary Select product
// @Tags machine
// @Accept json
// @Produce json
// @Param request body reqdto.SelectProductRequest true "Product code"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /machine/selection [post]
func (h *MachineHandler) SelectProduct(c *gin.Context) {
	var req reqdto.SelectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SelectProduct(c.Request.Context(), strings.TrimSpace(req.Code))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelectionResult(result))
}

// @Summary Purchase
// @Description Buy the selected product, or select code first when given. Declined purchases keep the inserted money.
// @Tags machine
// @Accept json
// @Produce json
// @Param request body reqdto.PurchaseRequest false "Optional product code"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /machine/purchase [post]
func (h *MachineHandler) Purchase(c *gin.Context) {
	var req reqdto.PurchaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	result, err := h.cmds.Purchase(c.Request.Context(), req.ProductCode())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPurchaseResult(result))
}

// @Summary Cancel transaction
// @Description Refund everything inserted since the last purchase
// @Tags machine
// @Produce json
// @Success 200 {object} resdto.RefundResponse
// @Failure 409 {object} httperr.Response
// @Router /machine/cancel [post]
func (h *MachineHandler) Cancel(c *gin.Context) {
	result, err := h.cmds.Cancel(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundResult(result))
}

// @Summary Return change
// @Description Like cancel, but an empty machine returns an empty refund instead of an error
// @Tags machine
// @Produce json
// @Success 200 {object} resdto.RefundResponse
// @Router /machine/change [post]
func (h *MachineHandler) ReturnChange(c *gin.Context) {
	result, err := h.cmds.ReturnChange(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundResult(result))
}
