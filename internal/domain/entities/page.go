package entities

// PageContent aggregates everything the public page renders. Sections are
// indexed by name so templates can address them directly (hero, about, ...).
type PageContent struct {
	Sections map[string]*Section `json:"sections"`
	Projects []*Project          `json:"projects"`
	Services []*Service          `json:"services"`
	Team     []*TeamMember       `json:"team"`
}
