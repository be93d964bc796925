package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Summarize counts orders per status and lists services in first-seen order.
func Summarize(orders []model.Order) model.OrderStats {
	stats := model.OrderStats{Value: decimal.Zero, Services: []model.ServiceCategory{}}
	seen := make(map[model.ServiceCategory]struct{})

	for _, o := range orders {
		stats.Total++
		switch o.Status {
		case model.OrderStatusNew:
			stats.New++
		case model.OrderStatusInProgress:
			stats.InProgress++
		case model.OrderStatusCompleted:
			stats.Completed++
		}
		stats.Value = stats.Value.Add(o.Price)
		if _, ok := seen[o.Service]; !ok {
			seen[o.Service] = struct{}{}
			stats.Services = append(stats.Services, o.Service)
		}
	}
	return stats
}
