package entities

// PartyRole identifies one side of an escrow.
type PartyRole string

const (
	PartyLandlord PartyRole = "landlord"
	PartyTenant   PartyRole = "tenant"
)

func (r PartyRole) Valid() bool {
	return r == PartyLandlord || r == PartyTenant
}

// Counterparty returns the other side.
func (r PartyRole) Counterparty() PartyRole {
	if r == PartyLandlord {
		return PartyTenant
	}
	return PartyLandlord
}

// Party is the identity record resolved by the identity collaborator.
type Party struct {
	ID             string `json:"id" yaml:"id"`
	DisplayName    string `json:"display_name" yaml:"display_name"`
	ContactChannel string `json:"contact_channel" yaml:"contact_channel"`
}
