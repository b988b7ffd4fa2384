package models

import "time"

// Project is a portfolio project entry. Images holds up to six uploaded
// image URLs, ordered as submitted.
type Project struct {
	Base         `bson:",inline"`
	Title        string     `bson:"title"                json:"title"`
	Summary      string     `bson:"summary"              json:"summary"`
	TechStack    StringList `bson:"techStack"            json:"techStack"`
	Technologies StringList `bson:"technologies"         json:"technologies"`
	Links        StringList `bson:"links"                json:"links"`
	RepoLink     string     `bson:"repoLink"             json:"repoLink"`
	LiveLink     string     `bson:"liveLink"             json:"liveLink"`
	GithubURL    string     `bson:"githubUrl"            json:"githubUrl"`
	LiveURL      string     `bson:"liveUrl"              json:"liveUrl"`
	Images       StringList `bson:"images"               json:"images"`
	StartDate    *time.Time `bson:"startDate,omitempty"  json:"startDate,omitempty"`
	EndDate      *time.Time `bson:"endDate,omitempty"    json:"endDate,omitempty"`
	UpdatedAt    time.Time  `bson:"updatedAt"            json:"updatedAt"`
}

const CollectionProjects = "projects"

// MaxProjectImages caps the number of image files accepted per request.
const MaxProjectImages = 6
