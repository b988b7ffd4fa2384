package models

import "time"

// Badge is an issued credential badge. CredentialUrl is optional and omitted
// from the representation when empty.
type Badge struct {
	Base          `bson:",inline"`
	Name          string    `bson:"name"                    json:"name"`
	Issuer        string    `bson:"issuer"                  json:"issuer"`
	IssueDate     time.Time `bson:"issueDate"               json:"issueDate"`
	ImageURL      string    `bson:"imageUrl"                json:"imageUrl"`
	CredentialURL string    `bson:"credentialUrl,omitempty" json:"credentialUrl,omitempty"`
}

const CollectionBadges = "badges"
