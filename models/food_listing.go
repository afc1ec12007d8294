package models

import (
	"time"
)

// ListingStatus is the lifecycle state of a food listing.
type ListingStatus string

const (
	ListingAvailable ListingStatus = "Available"
	ListingDonated   ListingStatus = "Donated"
	ListingExpired   ListingStatus = "Expired"
)

type FoodListing struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	FoodItemName       string            `gorm:"size:150;not null" json:"food_item_name"`
	Quantity           int               `gorm:"not null" json:"quantity"`
	ExpiryDatetime     time.Time         `gorm:"not null" json:"expiry_datetime"`
	PickupAddress      string            `gorm:"type:text;not null" json:"pickup_address"`
	PickupInstructions string            `gorm:"type:text" json:"pickup_instructions,omitempty"`
	ContactPersonName  string            `gorm:"size:100;not null" json:"contact_person_name"`
	ContactPersonPhone string            `gorm:"size:20;not null" json:"contact_person_phone"`
	Status             ListingStatus     `gorm:"size:30;not null;default:'Available'" json:"status"`
	ProviderID         uint              `gorm:"not null;index" json:"provider_id"`
	Provider           User              `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Requests           []DonationRequest `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"requests,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
