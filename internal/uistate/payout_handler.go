// File: internal/uistate/payout_handler.go
package uistate

import (
	"creator_support_backend/internal/common"
	"creator_support_backend/internal/payout"

	"github.com/gin-gonic/gin"
)

type countryRequest struct {
	Country string `json:"country"`
}

// HandOffResponse tells the client where the payout provider lives.
type HandOffResponse struct {
	URL    string       `json:"url"`
	Payout payout.State `json:"payout"`
}

func (h *Handler) getPayout(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	common.RespondOK(c, "Payout state retrieved successfully.", e.Payout.State())
}

func (h *Handler) listPayoutCountries(c *gin.Context) {
	common.RespondOK(c, "Countries retrieved successfully.", payout.ListCountries(c.Query("q")))
}

// payoutStep adapts a no-argument wizard transition to a route.
func (h *Handler) payoutStep(step func(*payout.Wizard) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, _, ok := h.entry(c)
		if !ok {
			return
		}
		if err := step(e.Payout); err != nil {
			common.RespondWithError(c, err)
			return
		}
		common.RespondOK(c, "Payout state updated.", e.Payout.State())
	}
}

func (h *Handler) selectPayoutCountry(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := e.Payout.SelectCountry(req.Country); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Country selected.", e.Payout.State())
}

func (h *Handler) handOffPayout(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	url, err := e.Payout.HandOff()
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Continue with the payout provider.", HandOffResponse{URL: url, Payout: e.Payout.State()})
}

func (h *Handler) closePayout(c *gin.Context) {
	e, _, ok := h.entry(c)
	if !ok {
		return
	}
	e.Payout.Close()
	common.RespondOK(c, "Payout setup closed.", e.Payout.State())
}
