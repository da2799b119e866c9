package models

// LocationDetails captures one address plus its on-site contact. All fields
// may be empty while a draft is in progress; required fields are checked at
// submission.
type LocationDetails struct {
	StreetAddress string `json:"streetAddress" bson:"streetAddress"`
	Suburb        string `json:"suburb" bson:"suburb"`
	State         string `json:"state" bson:"state"`
	Postcode      string `json:"postcode" bson:"postcode"`
	ContactName   string `json:"contactName" bson:"contactName"`
	Phone         string `json:"phone" bson:"phone"`
	Email         string `json:"email" bson:"email"`
	Notes         string `json:"notes" bson:"notes"`
}

// IsEmpty reports whether no address field has been entered yet.
func (l LocationDetails) IsEmpty() bool {
	return l.StreetAddress == "" && l.Suburb == "" && l.State == "" && l.Postcode == ""
}
