package request

type CreateReservationRequest struct {
	ScheduleID         string  `json:"schedule_id" validate:"required,uuid4"`
	Concern            *string `json:"concern,omitempty" validate:"omitempty,max=1000"`
	AgreedCancelPolicy bool    `json:"agreed_cancel_policy"`
	AgreedPhotoPost    bool    `json:"agreed_photo_post"`
}

type RequestCancellationRequest struct {
	Reason  *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	Confirm bool    `json:"confirm"`
}

type RejectReservationRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
