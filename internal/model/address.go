package model

import "fmt"

// Address is the street address of a hub location.
type Address struct {
	Base
	Location    string `gorm:"uniqueIndex;size:100;not null" json:"location"`
	AddressLine string `gorm:"size:255;not null" json:"addressLine"`
	Suburb      string `gorm:"size:100;not null" json:"suburb"`
	State       string `gorm:"size:50;not null" json:"state"`
	Postcode    string `gorm:"size:10;not null" json:"postcode"`
	Country     string `gorm:"size:100;not null;default:Australia" json:"country"`
}

func (Address) TableName() string { return "addresses" }

// FullAddress renders the address as a single postal line.
func (a *Address) FullAddress() string {
	return fmt.Sprintf("%s, %s %s %s", a.AddressLine, a.Suburb, a.State, a.Postcode)
}
