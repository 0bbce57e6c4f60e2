package models

// StatusTaskPayload is the asynq payload for a delayed booking status change.
type StatusTaskPayload struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}
