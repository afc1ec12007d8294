package models

import (
	"time"
)

// RequestStatus is the lifecycle state of a donation request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestAccepted RequestStatus = "Accepted"
	RequestRejected RequestStatus = "Rejected"
)

// DonationRequest is a receiver's claim on a listing. At most one live
// request may exist per (listing, receiver) pair, and at most one request
// per listing ever reaches Accepted.
type DonationRequest struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	ListingID  uint          `gorm:"not null;index" json:"listing_id"`
	Listing    FoodListing   `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
	ReceiverID uint          `gorm:"not null;index" json:"receiver_id"`
	Receiver   User          `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Status     RequestStatus `gorm:"size:30;not null;default:'Pending'" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
