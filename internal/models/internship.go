package models

import "time"

// InternshipCategory enumerates the accepted internship categories.
type InternshipCategory string

const (
	CategorySoftware    InternshipCategory = "software"
	CategoryDataScience InternshipCategory = "data-science"
	CategoryResearch    InternshipCategory = "research"
	CategoryBusiness    InternshipCategory = "business"
	CategoryDesign      InternshipCategory = "design"

	// DefaultLocation is stored when no location is supplied.
	DefaultLocation = "Not specified"
)

// ValidCategory reports whether c is one of the enumerated categories.
func ValidCategory(c InternshipCategory) bool {
	switch c {
	case CategorySoftware, CategoryDataScience, CategoryResearch, CategoryBusiness, CategoryDesign:
		return true
	}
	return false
}

// Internship is a work-experience record. CertificateURL may point at an
// image or a PDF; PDFs live under the media host's raw resource type.
type Internship struct {
	Base             `bson:",inline"`
	Company          string             `bson:"company"                 json:"company"`
	Position         string             `bson:"position"                json:"position"`
	Location         string             `bson:"location"                json:"location"`
	StartDate        time.Time          `bson:"startDate"               json:"startDate"`
	EndDate          time.Time          `bson:"endDate"                 json:"endDate"`
	Duration         string             `bson:"duration"                json:"duration"`
	Description      string             `bson:"description"             json:"description"`
	Responsibilities StringList         `bson:"responsibilities"        json:"responsibilities"`
	Achievements     StringList         `bson:"achievements"            json:"achievements"`
	Skills           StringList         `bson:"skills"                  json:"skills"`
	Technologies     StringList         `bson:"technologies"            json:"technologies"`
	Category         InternshipCategory `bson:"category"                json:"category"`
	CompanyLogo      string             `bson:"companyLogo,omitempty"   json:"companyLogo,omitempty"`
	Supervisor       string             `bson:"supervisor"              json:"supervisor"`
	Recommendation   string             `bson:"recommendation"          json:"recommendation"`
	ProjectURL       string             `bson:"projectUrl"              json:"projectUrl"`
	CertificateURL   string             `bson:"certificateUrl"          json:"certificateUrl"`
	Paid             bool               `bson:"paid"                    json:"paid"`
	Remote           bool               `bson:"remote"                  json:"remote"`
	Impact           string             `bson:"impact"                  json:"impact"`
}

const CollectionInternships = "internships"
