package models

// Admin is the single operator credential. Admins are provisioned by
// cmd/seedadmin, never through the API.
type Admin struct {
	Base         `bson:",inline"`
	Username     string `bson:"username"     json:"username"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Role         string `bson:"role"         json:"role"`
}

// CollectionAdmins is the Mongo collection name for Admin records.
const CollectionAdmins = "admins"
