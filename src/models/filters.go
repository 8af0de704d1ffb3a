package models

// ExperienceFilter is the closed set of filters the experience listing
// accepts. Nil pointer fields mean "no constraint"; free-text matching is
// case-insensitive substring, never caller-supplied query syntax.
type ExperienceFilter struct {
	Featured             *bool
	CurrentlyWorking     *bool
	OrganizationContains string
	RoleType             *RoleType
}

// ProjectFilter is the closed set of filters the project listing accepts
type ProjectFilter struct {
	Featured      *bool
	Completed     *bool
	TitleContains string
}
