package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusgo/campus-market/internal/core/domain"
	"github.com/campusgo/campus-market/internal/core/service"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// HotCategories answers with chart-ready parallel arrays.
func (h *StatsHandler) HotCategories(c *gin.Context) {
	counts := h.stats.HotCategories(c.Request.Context())

	names := make([]string, 0, len(counts))
	values := make([]int, 0, len(counts))
	for _, cc := range counts {
		names = append(names, cc.Name)
		values = append(values, cc.Count)
	}

	respondOK(c, "", gin.H{
		"categories": names,
		"counts":     values,
	})
}

func (h *StatsHandler) PriceDistribution(c *gin.Context) {
	buckets := h.stats.PriceDistribution(c.Request.Context())

	labels := make([]string, 0, len(buckets))
	values := make([]int, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
		values = append(values, b.Count)
	}

	respondOK(c, "", gin.H{
		"price_ranges": labels,
		"counts":       values,
	})
}

// DebugTables is a diagnostic endpoint: row counts per table plus the
// product status histogram.
func (h *StatsHandler) DebugTables(c *gin.Context) {
	stats, err := h.stats.TableStats(c.Request.Context())
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusInternalServerError, "database connection failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, "diagnostics failed")
	default:
		data := gin.H{}
		for table, count := range stats.RowCounts {
			data[table] = count
		}
		data["product_status"] = stats.ProductStatus

		respondOK(c, "diagnostics complete", gin.H{"data": data})
	}
}
