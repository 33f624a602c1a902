package services

import "math"

// AwardBonusPoints converts the collected waste weight into bonus points:
// one point per whole kilogram (minimum one) plus five for a paid order.
// Points are awarded once per order and never deducted, not even when an
// order is later deleted.
func AwardBonusPoints(quantityKg float64, paid bool) int {
	bonus := int(math.Floor(quantityKg))
	if bonus < 1 {
		bonus = 1
	}
	if paid {
		bonus += 5
	}
	return bonus
}
