package handler

import (
	"strconv"

	"betmachine/internal/adapter/http/dto"
	"betmachine/internal/core/ports"
	"betmachine/pkg/apperror"
	"betmachine/pkg/response"

	"github.com/gin-gonic/gin"
)

// BetHandler handles wagering endpoints.
type BetHandler struct {
	betSvc ports.BetService
}

// NewBetHandler creates a new BetHandler.
func NewBetHandler(betSvc ports.BetService) *BetHandler {
	return &BetHandler{betSvc: betSvc}
}

// PlaceBet handles POST /api/bet.
func (h *BetHandler) PlaceBet(c *gin.Context) {
	var req dto.BetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	bet, newBalance, err := h.betSvc.PlaceBet(c.Request.Context(), ports.PlaceBetRequest{
		UserID:     req.UserID,
		EventID:    req.EventID,
		EventTitle: req.EventTitle,
		Pick:       req.Pick,
		PickLabel:  req.PickLabel,
		Odds:       req.Odds,
		Amount:     req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"bet": bet, "new_balance": newBalance})
}

// Cashout handles POST /api/cashout.
func (h *BetHandler) Cashout(c *gin.Context) {
	var req dto.CashoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.betSvc.Cashout(c.Request.Context(), req.UserID, req.BetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"cashout": gin.H{
			"cashout_amount": result.CashoutAmount,
			"bet_id":         result.BetID,
		},
		"new_balance": result.NewBalance,
	})
}

// QuickBet handles POST /api/quick-bet.
func (h *BetHandler) QuickBet(c *gin.Context) {
	var req dto.QuickBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.betSvc.QuickPlay(c.Request.Context(), ports.QuickPlayRequest{
		UserID: req.UserID,
		Game:   req.Game,
		Pick:   req.Pick,
		Amount: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// UserBets handles GET /api/bets/:user_id.
func (h *BetHandler) UserBets(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error(c, apperror.Validation("Invalid user id"))
		return
	}

	bets, err := h.betSvc.UserBets(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"bets": bets})
}
