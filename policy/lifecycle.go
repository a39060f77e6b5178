package policy

import (
	"time"

	"github.com/sakibmorshed/assignment-11-new-serverside/models"
)

// Stage describes one step of the usual fulfillment flow and who drives it.
// The flow is advisory: order status updates are not validated against it,
// any status may follow any other.
type Stage struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Actor string `json:"actor"`
}

// advisoryFlow is the typical path of an order through the marketplace
var advisoryFlow = []Stage{
	{From: models.OrderPending, To: models.OrderAccepted, Actor: "payment"},
	{From: models.OrderAccepted, To: "preparing", Actor: "chef"},
	{From: "preparing", To: "out_for_delivery", Actor: "chef"},
	{From: "out_for_delivery", To: models.OrderDelivered, Actor: "chef"},
}

// AdvisoryFlow returns the full fulfillment flow for documentation
func AdvisoryFlow() []Stage {
	return advisoryFlow
}

// NextStages returns the usual next states from a given status
func NextStages(status string) []string {
	var nexts []string
	seen := map[string]bool{}
	for _, s := range advisoryFlow {
		if s.From == status && !seen[s.To] {
			nexts = append(nexts, s.To)
			seen[s.To] = true
		}
	}
	return nexts
}

// ApplyPayment marks an order paid: payment status becomes paid, fulfillment
// moves to accepted and the paid timestamp is stamped. Applied regardless of
// the order's prior fulfillment status; replays are not guarded against.
func ApplyPayment(order *models.Order, now time.Time) {
	order.PaymentStatus = models.PaymentPaid
	order.OrderStatus = models.OrderAccepted
	order.PaidAt = &now
}
