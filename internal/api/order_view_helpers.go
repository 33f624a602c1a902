package api

import (
	"github.com/sproutworks/ecopods/internal/models"
	"github.com/sproutworks/ecopods/internal/services"
)

type orderView struct {
	models.Order
	Progress    int    `json:"progress"`
	StatusLabel string `json:"status_label"`
}

func buildOrderView(order models.Order) orderView {
	return orderView{
		Order:       order,
		Progress:    services.ProgressPercent(order.Status),
		StatusLabel: services.StatusLabel(order.Status),
	}
}

func buildOrderViews(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, buildOrderView(order))
	}
	return views
}
