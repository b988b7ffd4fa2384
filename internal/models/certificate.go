package models

// Certificate is a single-image record: the uploaded certificate scan.
type Certificate struct {
	Base  `bson:",inline"`
	Image string `bson:"image" json:"image"`
}

const CollectionCertificates = "certificates"
