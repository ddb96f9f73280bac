package business

import "time"

// ProfileID is the fixed key of the singleton profile row.
const ProfileID = 1

const DefaultDisplayName = "Your Company Name"

// Profile - invoicing party shown in the "From" block of an invoice
type Profile struct {
	Name      string
	Address   string
	City      string
	State     string
	Zip       string
	Phone     string
	Email     string
	UpdatedAt *time.Time
}

func (p Profile) DisplayName() string {
	if p.Name == "" {
		return DefaultDisplayName
	}
	return p.Name
}
