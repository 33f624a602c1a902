package services

// Fee constants in whole Indian rupees. Orders freeze the computed amount
// at creation time, so changing these never rewrites past orders.
const (
	BaseFee    = 29
	PerPodFee  = 6
	ExpressFee = 25
)

// ComputeTotal is pure and unguarded; callers validate the pod count
// upstream.
func ComputeTotal(pods int, express bool) int {
	total := BaseFee + PerPodFee*pods
	if express {
		total += ExpressFee
	}
	return total
}
