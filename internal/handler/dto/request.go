package dto

type CreateBookingRequest struct {
	CustomerID  string `json:"customer_id" binding:"required,uuid"`
	ServiceID   string `json:"service_id" binding:"required,uuid"`
	ScheduledAt string `json:"scheduled_at"`
}

type RespondRequest struct {
	ProviderID string `json:"provider_id" binding:"required,uuid"`
	Action     string `json:"action" binding:"required,oneof=accept decline cancel"`
	Reason     string `json:"reason"`
}

type MarkPaidRequest struct {
	CustomerID      string `json:"customer_id" binding:"required,uuid"`
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type CompleteRequest struct {
	ProviderID string `json:"provider_id" binding:"required,uuid"`
}

type ConfirmRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

type CancelRequest struct {
	ActorID string `json:"actor_id" binding:"required,uuid"`
	Reason  string `json:"reason"`
}

type DisputeRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	Reason     string `json:"reason" binding:"required"`
}

type AdminRefundRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}
