package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	quotedomain "github.com/freightdesk/tariff/internal/quote/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/freightdesk/tariff/pkg/db"
	"github.com/freightdesk/tariff/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type createQuoteRequest struct {
	Reference          string                        `json:"reference"`
	Mode               templatedomain.ShipmentMode   `json:"mode" binding:"required"`
	Direction          templatedomain.TradeDirection `json:"direction"`
	Pieces             int                           `json:"pieces"`
	WeightKg           decimal.Decimal               `json:"weight_kg"`
	ChargeableWeightKg decimal.Decimal               `json:"chargeable_weight_kg"`
	VolumeCbm          decimal.Decimal               `json:"volume_cbm"`
	LengthCm           decimal.Decimal               `json:"length_cm"`
	WidthCm            decimal.Decimal               `json:"width_cm"`
	HeightCm           decimal.Decimal               `json:"height_cm"`
	Currency           string                        `json:"currency"`
}

func (s *Server) CreateQuote(c *gin.Context) {
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if req.Mode != templatedomain.ModeAir && req.Mode != templatedomain.ModeSea {
		AbortWithError(c, templatedomain.ErrInvalidMode)
		return
	}

	id := s.genID.Generate().Int64()
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = fmt.Sprintf("QT-%d", id)
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "AED"
	}

	q := &quotedomain.Quote{
		ID:                     id,
		Reference:              reference,
		Mode:                   req.Mode,
		Direction:              req.Direction,
		Pieces:                 req.Pieces,
		WeightKg:               req.WeightKg,
		ChargeableWeightKg:     req.ChargeableWeightKg,
		VolumeCbm:              req.VolumeCbm,
		LengthCm:               req.LengthCm,
		WidthCm:                req.WidthCm,
		HeightCm:               req.HeightCm,
		Currency:               currency,
		ExworksBreakdownStatus: quotedomain.BreakdownNone,
	}

	if err := s.quotes.Create(c.Request.Context(), s.db, q); err != nil {
		if db.IsDuplicateKeyErr(err) {
			AbortWithError(c, ErrConflict)
			return
		}
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": q})
}

func (s *Server) ListQuotes(c *gin.Context) {
	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var afterID int64
	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
		afterID, err = strconv.ParseInt(cursor.ID, 10, 64)
		if err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
	}

	items, err := s.quotes.List(c.Request.Context(), s.db, afterID, page.PageSize)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	pageInfo := pagination.BuildCursorPageInfo(items, int32(page.PageSize), func(q *quotedomain.Quote) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: strconv.FormatInt(q.ID, 10)})
		return token
	})
	if len(items) > page.PageSize {
		items = items[:page.PageSize]
	}

	c.JSON(http.StatusOK, gin.H{"data": items, "page_info": pageInfo})
}

func (s *Server) GetQuote(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	q, err := s.quotes.FindByID(c.Request.Context(), s.db, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if q == nil {
		AbortWithError(c, quotedomain.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": q})
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
}
