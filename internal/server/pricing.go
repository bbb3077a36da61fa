package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	pricingdomain "github.com/freightdesk/tariff/internal/pricing/domain"
)

func (s *Server) InitializePricing(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var req pricingdomain.InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.QuoteID = quoteID

	resp, err := s.pricingSvc.Initialize(c.Request.Context(), req)
	s.metrics.ObservePricingOp("initialize", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPricing(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.Get(c.Request.Context(), quoteID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOpsTotals(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.OpsTotals(c.Request.Context(), quoteID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListContainerBlocks(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.ListBlocks(c.Request.Context(), quoteID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) AddContainerBlock(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var req pricingdomain.AddBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.QuoteID = quoteID

	resp, err := s.pricingSvc.AddContainerBlock(c.Request.Context(), req)
	s.metrics.ObservePricingOp("add_block", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListAddonCandidates(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.AddonCandidates(c.Request.Context(), quoteID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) AddLine(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var req pricingdomain.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.QuoteID = quoteID

	resp, err := s.pricingSvc.AddLine(c.Request.Context(), req)
	s.metrics.ObservePricingOp("add_line", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RemoveLine(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	chargeID, err := pathID(c, "chargeId")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.RemoveLine(c.Request.Context(), pricingdomain.RemoveLineRequest{
		QuoteID:  quoteID,
		ChargeID: chargeID,
	})
	s.metrics.ObservePricingOp("remove_line", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateCharge(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	chargeID, err := pathID(c, "chargeId")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var req pricingdomain.UpdateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.QuoteID = quoteID
	req.ChargeID = chargeID

	resp, err := s.pricingSvc.UpdateCharge(c.Request.Context(), req)
	s.metrics.ObservePricingOp("update_charge", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) AttachTransferOwnership(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var req pricingdomain.AttachTransferOwnershipRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
	}
	req.QuoteID = quoteID

	resp, err := s.pricingSvc.AttachTransferOwnership(c.Request.Context(), req)
	s.metrics.ObservePricingOp("attach_transfer_ownership", err)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetLockState(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.LockState(c.Request.Context(), quoteID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) LockPricing(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var req pricingdomain.LockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.QuoteID = quoteID

	resp, err := s.pricingSvc.Lock(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ObservePricingLock("lock")

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UnlockPricing(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.Unlock(c.Request.Context(), quoteID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ObservePricingLock("unlock")

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SnapshotPricing(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.Snapshot(c.Request.Context(), quoteID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	sell, _ := resp.TotalSell.Float64()
	s.metrics.ObserveSnapshot(string(resp.Mode), resp.Currency, sell)

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomerView(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.CustomerView(c.Request.Context(), pricingdomain.CustomerViewRequest{
		QuoteID: quoteID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// PreviewCustomerView renders the customer view with the breakdown forced
// open so staff can check it before approval.
func (s *Server) PreviewCustomerView(c *gin.Context) {
	quoteID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.pricingSvc.CustomerView(c.Request.Context(), pricingdomain.CustomerViewRequest{
		QuoteID:      quoteID,
		StaffPreview: true,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
