package v1

import (
	"net/http"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

const (
	walletSourceTopUp = "topup"
	walletSourceSpend = "spend"
)

// PaymentHandler serves transactions, wallets, provider webhooks and payment administration
type PaymentHandler interface {
	ListTransactions(ctx *gin.Context)
	GetTransaction(ctx *gin.Context)
	CreateIntent(ctx *gin.Context)
	History(ctx *gin.Context)
	Wallet(ctx *gin.Context)
	TopUp(ctx *gin.Context)
	TopUpWithBonus(ctx *gin.Context)
	Spend(ctx *gin.Context)
	WalletHistory(ctx *gin.Context)
	Webhook(ctx *gin.Context)
	RefundGroup(ctx *gin.Context)
	AddBonusTier(ctx *gin.Context)
	ListBonusTiers(ctx *gin.Context)
}

type paymentHandler struct {
	paymentService payments.PaymentService
	walletService  payments.WalletService
	webhookService payments.WebhookService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService payments.PaymentService, walletService payments.WalletService, webhookService payments.WebhookService) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		walletService:  walletService,
		webhookService: webhookService,
	}
}

// ListTransactions handles GET /payments/transactions
func (handler *paymentHandler) ListTransactions(ctx *gin.Context) {
	txns, err := handler.paymentService.ListMine(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTransactionResponses(txns))
}

// GetTransaction handles GET /payments/transactions/:id
func (handler *paymentHandler) GetTransaction(ctx *gin.Context) {
	txn, err := handler.paymentService.GetByID(ctx.Request.Context(), currentUserID(ctx), currentIsStaff(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTransactionResponse(txn))
}

// CreateIntent handles POST /payments/transactions/intent
func (handler *paymentHandler) CreateIntent(ctx *gin.Context) {
	var req IntentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	txn, err := handler.paymentService.CreateIntent(ctx.Request.Context(), currentUserID(ctx), payments.IntentInput{
		AppSource:   req.AppSource,
		RelatedID:   req.RelatedID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Provider:    req.Provider,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newTransactionResponse(txn))
}

// History handles GET /payments/history
func (handler *paymentHandler) History(ctx *gin.Context) {
	items, err := handler.paymentService.UnifiedHistory(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if items == nil {
		items = []*payments.HistoryItem{}
	}
	ctx.JSON(http.StatusOK, items)
}

// Wallet handles GET /wallet
func (handler *paymentHandler) Wallet(ctx *gin.Context) {
	wallet, err := handler.walletService.Balance(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newWalletResponse(wallet))
}

// TopUp handles POST /wallet/topup
func (handler *paymentHandler) TopUp(ctx *gin.Context) {
	var req WalletAmountRequest
	if !bindJSON(ctx, &req) {
		return
	}

	wallet, err := handler.walletService.TopUp(ctx.Request.Context(), currentUserID(ctx), req.Amount, sourceOr(req.Source, walletSourceTopUp))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newWalletResponse(wallet))
}

// TopUpWithBonus handles POST /wallet/topup-bonus
func (handler *paymentHandler) TopUpWithBonus(ctx *gin.Context) {
	var req WalletAmountRequest
	if !bindJSON(ctx, &req) {
		return
	}

	wallet, bonus, err := handler.walletService.TopUpWithBonus(ctx.Request.Context(), currentUserID(ctx), req.Amount, sourceOr(req.Source, walletSourceTopUp))
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := newWalletResponse(wallet)
	resp.Bonus = &bonus
	ctx.JSON(http.StatusOK, resp)
}

// Spend handles POST /wallet/spend
func (handler *paymentHandler) Spend(ctx *gin.Context) {
	var req WalletAmountRequest
	if !bindJSON(ctx, &req) {
		return
	}

	wallet, err := handler.walletService.Spend(ctx.Request.Context(), currentUserID(ctx), req.Amount, sourceOr(req.Source, walletSourceSpend))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newWalletResponse(wallet))
}

// WalletHistory handles GET /wallet/history?limit=
func (handler *paymentHandler) WalletHistory(ctx *gin.Context) {
	limit, _, ok := pageParams(ctx)
	if !ok {
		return
	}

	entries, err := handler.walletService.History(ctx.Request.Context(), currentUserID(ctx), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*CreditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, &CreditEntryResponse{
			ID:           e.ID,
			Amount:       e.Amount,
			Kind:         e.Kind,
			Source:       e.Source,
			BalanceAfter: e.BalanceAfter,
			CreatedAt:    e.CreatedAt,
		})
	}
	ctx.JSON(http.StatusOK, resp)
}

// Webhook handles POST /webhooks/:provider. Duplicate events answer 200 with processed=false.
func (handler *paymentHandler) Webhook(ctx *gin.Context) {
	raw, err := ctx.GetRawData()
	if err != nil {
		respondBadRequest(ctx, "unable to read request body")
		return
	}

	event, processed, err := handler.webhookService.Handle(ctx.Request.Context(), ctx.Param("provider"), raw)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := WebhookResponse{Processed: processed}
	if event != nil {
		resp.EventID = event.ID
		resp.Outcome = event.Outcome
	}
	ctx.JSON(http.StatusOK, resp)
}

// RefundGroup handles POST /admin/payments/refund-group
func (handler *paymentHandler) RefundGroup(ctx *gin.Context) {
	var req RefundGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	results, err := handler.paymentService.BulkRefund(ctx.Request.Context(), req.AppSource, req.RelatedID, req.Reason)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if results == nil {
		results = []*payments.RefundResult{}
	}
	ctx.JSON(http.StatusOK, results)
}

// AddBonusTier handles POST /admin/bonus-tiers
func (handler *paymentHandler) AddBonusTier(ctx *gin.Context) {
	var req BonusTierRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tier, err := handler.paymentService.AddBonusTier(ctx.Request.Context(), req.MinAmount, req.BonusPercent)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newBonusTierResponse(tier))
}

// ListBonusTiers handles GET /wallet/bonus-tiers
func (handler *paymentHandler) ListBonusTiers(ctx *gin.Context) {
	tiers, err := handler.paymentService.ListBonusTiers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := make([]*BonusTierResponse, 0, len(tiers))
	for _, t := range tiers {
		resp = append(resp, newBonusTierResponse(t))
	}
	ctx.JSON(http.StatusOK, resp)
}

func newBonusTierResponse(t *payments.BonusTier) *BonusTierResponse {
	return &BonusTierResponse{ID: t.ID, MinAmount: t.MinAmount, BonusPercent: t.BonusPercent, Active: t.Active}
}

func sourceOr(source, fallback string) string {
	if source == "" {
		return fallback
	}
	return source
}
