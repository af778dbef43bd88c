package models

// Graduate aggregates a graduate user with all of its related records.
type Graduate struct {
	User       User                    `json:"user"`
	Basic      *BasicInformation       `json:"basicInformation,omitempty"`
	Academic   []AcademicInformation   `json:"academicInformation"`
	Employment []EmploymentInformation `json:"employmentInformation"`
	Location   *Location               `json:"location,omitempty"`
}
