package reports

// Dashboard is the HR landing summary for one organization.
type Dashboard struct {
	Employees         int `json:"employees"`
	HumanResources    int `json:"humanResources"`
	Departments       int `json:"departments"`
	PendingLeaves     int `json:"pendingLeaves"`
	PendingRequests   int `json:"pendingRequests"`
	PendingSalaries   int `json:"pendingSalaries"`
	Notices           int `json:"notices"`
	Applicants        int `json:"applicants"`
	OpenInterviews    int `json:"openInterviews"`
	UpcomingSchedules int `json:"upcomingSchedules"`
	PresentToday      int `json:"presentToday"`
}
