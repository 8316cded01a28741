package schema

// IndividualProject is the filtered, well-typed event collection for one
// student repository, as handed to the engine by the ingestion collaborator.
type IndividualProject struct {
	StudentID  string        `json:"student_id"`
	Repository string        `json:"repository"`
	Events     []CommitEvent `json:"events"`
}

// TeamProject is the event collection for one shared team repository.
type TeamProject struct {
	TeamID     string        `json:"team_id"`
	Repository string        `json:"repository"`
	Members    []string      `json:"members"`
	Events     []CommitEvent `json:"events"`
}

// CourseData is everything the engine needs for one analysis run. Malformed
// events have already been dropped upstream; DroppedEvents carries the count
// for reporting.
type CourseData struct {
	Window        CourseWindow        `json:"course_window"`
	Individuals   []IndividualProject `json:"individual_projects"`
	Teams         []TeamProject       `json:"team_projects"`
	DroppedEvents int                 `json:"dropped_events"`
}
