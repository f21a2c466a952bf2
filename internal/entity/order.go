package domain

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusCompleted  Status = "completed"
)

// transitions is the closed graph of allowed status changes.
// delivered, cancelled and completed are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusShipped, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusDelivered},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusCompleted},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from s to next.
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type PaymentMethodType string

const (
	PaymentTransfer    PaymentMethodType = "transfer"
	PaymentMercadoPago PaymentMethodType = "mercadopago"
	PaymentCash        PaymentMethodType = "cash"
)

func (t PaymentMethodType) Valid() bool {
	switch t {
	case PaymentTransfer, PaymentMercadoPago, PaymentCash:
		return true
	}
	return false
}
