package members

import (
	"net/http"
	"time"

	"greencouncil-api/internal/api/respond"
	"greencouncil-api/internal/domain/members"

	"github.com/gin-gonic/gin"
)

// GET /api/members/stats/summary
//
// Pure read-side aggregation: status counts plus new-member counts for the
// trailing 12 calendar months. Bucketing happens in Go so the query stays
// dialect-neutral.
func (h *Handler) Stats(c *gin.Context) {
	summary := StatsSummary{Monthly: make([]MonthCount, 0, 12)}

	counts := []struct {
		Status string
		N      int64
	}{}
	err := h.db.Model(&members.Member{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		respond.Error(c, err, "Failed to load member stats")
		return
	}
	for _, row := range counts {
		summary.Total += row.N
		switch row.Status {
		case members.StatusActive:
			summary.Active = row.N
		case members.StatusPending:
			summary.Pending = row.N
		case members.StatusInactive:
			summary.Inactive = row.N
		}
	}

	now := time.Now()
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	var createdAts []time.Time
	err = h.db.Model(&members.Member{}).
		Where("created_at >= ?", firstMonth).
		Pluck("created_at", &createdAts).Error
	if err != nil {
		respond.Error(c, err, "Failed to load member stats")
		return
	}

	byMonth := map[string]int64{}
	for _, t := range createdAts {
		byMonth[t.UTC().Format("2006-01")]++
	}
	for i := 0; i < 12; i++ {
		month := firstMonth.AddDate(0, i, 0).Format("2006-01")
		summary.Monthly = append(summary.Monthly, MonthCount{Month: month, Count: byMonth[month]})
	}

	c.JSON(http.StatusOK, summary)
}
