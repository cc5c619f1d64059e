package api

import (
	"net/http"
	"strings"

	reqdto "vending-machine/internal/handler/dto/request"
	resdto "vending-machine/internal/handler/dto/response"
	"vending-machine/internal/handler/httperr"
	"vending-machine/internal/pkg/config"
	"vending-machine/internal/pkg/cookie"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/usecase/commands"
	"vending-machine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	auth      commands.AuthCommands
	cmds      commands.AdminCommands
	q         queries.AdminQueries
	cookieCfg config.CookieConfig
}

func NewAdminHandler(auth commands.AuthCommands, cmds commands.AdminCommands, q queries.AdminQueries, cfg config.Config) *AdminHandler {
	return &AdminHandler{auth: auth, cmds: cmds, q: q, cookieCfg: cfg.Cookie}
}

// @Summary Maintenance login
// @Description Exchange the maintenance password for a session token (also set as an HttpOnly cookie)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Maintenance password"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Maintenance logout
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	// Tokens are stateless; dropping the cookie ends browser sessions.
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Add product
// @Description Register a product, or add stock when the code already exists
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 "Created"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/products [post]
func (h *AdminHandler) AddProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.AddProduct(c.Request.Context(), req); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/products/"+strings.TrimSpace(req.Code)+"/availability")
	c.Status(http.StatusCreated)
}

// @Summary Restock product
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param code path string true "Product code"
// @Param request body reqdto.RestockRequest true "Quantity"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/products/{code}/restock [post]
func (h *AdminHandler) RestockProduct(c *gin.Context) {
	var req reqdto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.RestockProduct(c.Request.Context(), c.Param("code"), req); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Load coins
// @Description Put coins of an accepted denomination into the cash box
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.CashRequest true "Denomination and count"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /admin/cash [post]
func (h *AdminHandler) AddCash(c *gin.Context) {
	var req reqdto.CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.AddCash(c.Request.Context(), req); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Refill from coin supplier
// @Description Move up to count coins from the supplier into the cash box
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CashRequest true "Denomination and count"
// @Success 200 {object} resdto.RefillResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/cash/refill [post]
func (h *AdminHandler) RefillCash(c *gin.Context) {
	var req reqdto.CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RefillFromSupplier(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefillResult(result))
}

// @Summary Transaction log
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param type query string false "PURCHASE, CANCELLATION, REFUND, RESTOCK or ERROR"
// @Param from query string false "RFC 3339 start (inclusive)"
// @Param to query string false "RFC 3339 end (inclusive)"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/transactions [get]
func (h *AdminHandler) Transactions(c *gin.Context) {
	var req reqdto.TransactionFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	filter, err := req.ToFilter()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	views, err := h.q.Transactions(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionViews(views))
}

// @Summary Clear transaction log
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /admin/transactions [delete]
func (h *AdminHandler) ClearTransactions(c *gin.Context) {
	if err := h.cmds.ClearTransactions(c.Request.Context()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Stock report
// @Description Products and denominations that need attention, plus the coin supplier's stock
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StockReportResponse
// @Router /admin/reports/stock [get]
func (h *AdminHandler) StockReport(c *gin.Context) {
	view, err := h.q.StockReport(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockReportView(view))
}
