package model

import "time"

// Submission represents one stored shop-registration record.
// This is a pure domain model shared across layers (HTTP, service,
// repository); documents are keyed by their own id field, not by the
// store's internal object id.
type Submission struct {
	ID          string    `json:"id" bson:"id"`
	MobileNo    string    `json:"mobile_no" bson:"mobile_no"`
	ShopName    string    `json:"shop_name" bson:"shop_name"`
	OwnerName   string    `json:"owner_name" bson:"owner_name"`
	IndName     string    `json:"ind_name" bson:"ind_name"`
	AreaPinCode string    `json:"area_pin_code" bson:"area_pin_code"`
	Address     string    `json:"address" bson:"address"`
	City        string    `json:"city" bson:"city"`
	Dist        string    `json:"dist" bson:"dist"`
	State       string    `json:"state" bson:"state"`
	Country     string    `json:"country" bson:"country"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// SubmissionInput is the create payload. It is the strict allow-list of
// user-supplied fields: unrecognized JSON fields are dropped during
// decoding and never reach the store. The validate tags are checked by
// the go-playground/validator package.
type SubmissionInput struct {
	MobileNo    string `json:"mobile_no" validate:"required,len=10,number"`
	ShopName    string `json:"shop_name" validate:"required"`
	OwnerName   string `json:"owner_name" validate:"required"`
	IndName     string `json:"ind_name" validate:"required"`
	AreaPinCode string `json:"area_pin_code" validate:"required,len=6,number"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	Dist        string `json:"dist" validate:"required"`
	State       string `json:"state" validate:"required"`
	Country     string `json:"country" validate:"required"`
}
