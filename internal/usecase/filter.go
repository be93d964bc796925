package usecase

import (
	"strings"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// FilterOrders keeps orders matching every criterion of f, preserving order.
// Search is a case-insensitive substring over name, email, id and project
// title; status matches exactly; service matches the key case-insensitively.
func FilterOrders(orders []model.Order, f model.OrderFilter) []model.Order {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	status := filterValue(f.Status)
	service := filterValue(f.Service)

	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		if service != "" && !strings.EqualFold(string(o.Service), service) {
			continue
		}
		result = append(result, o)
	}
	return result
}

func matchesSearch(o model.Order, needle string) bool {
	for _, field := range []string{o.Name, o.Email, o.ID, o.ProjectTitle} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func filterValue(raw string) string {
	v := strings.TrimSpace(raw)
	if strings.EqualFold(v, model.FilterAll) {
		return ""
	}
	return v
}
