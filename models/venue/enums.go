package venue

// ListingStatus tracks admin moderation of a listing.
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
)

func (ls ListingStatus) String() string {
	return string(ls)
}

func (ls ListingStatus) IsValid() bool {
	switch ls {
	case ListingStatusPending, ListingStatusApproved:
		return true
	default:
		return false
	}
}

// CanBeBooked returns true if the listing is visible to customers.
func (ls ListingStatus) CanBeBooked() bool {
	return ls == ListingStatusApproved
}
