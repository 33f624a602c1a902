package services

import "github.com/sproutworks/ecopods/internal/models"

// FilterAll is the sentinel that leaves a filter dimension unconstrained.
const FilterAll = "all"

type OrderTotals struct {
	Pods    int `json:"total_pods"`
	Revenue int `json:"total_revenue"`
	Pickups int `json:"pickups"`
}

// FilterByOwner keeps the orders whose embedded user snapshot carries the
// given email, preserving order. Without a signed-in email the result is
// empty even when orders exist.
func FilterByOwner(orders []models.Order, email string) []models.Order {
	matched := make([]models.Order, 0)
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return matched
	}

	for _, order := range orders {
		if NormalizeEmail(order.User.Email) == normalized {
			matched = append(matched, order)
		}
	}
	return matched
}

func MatchesAdminFilters(order models.Order, seedFilter string, statusFilter string) bool {
	seedMatches := seedFilter == "" || seedFilter == FilterAll || order.Seed == seedFilter
	statusMatches := statusFilter == "" || statusFilter == FilterAll || order.Status == statusFilter
	return seedMatches && statusMatches
}

func FilterOrders(orders []models.Order, seedFilter string, statusFilter string) []models.Order {
	matched := make([]models.Order, 0)
	for _, order := range orders {
		if MatchesAdminFilters(order, seedFilter, statusFilter) {
			matched = append(matched, order)
		}
	}
	return matched
}

// AggregateTotals sums pods and revenue across all given orders and counts
// them. It recomputes from scratch on every call; nothing is cached.
func AggregateTotals(orders []models.Order) OrderTotals {
	totals := OrderTotals{}
	for _, order := range orders {
		totals.Pods += order.Pods
		totals.Revenue += order.Amount
	}
	totals.Pickups = len(orders)
	return totals
}
