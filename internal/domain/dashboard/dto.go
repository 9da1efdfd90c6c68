package dashboard

// Stats is the aggregate snapshot behind the dashboard cards.
type Stats struct {
	TotalEmployees   int            `json:"totalEmployees"`
	ByStatus         map[string]int `json:"byStatus"`
	ByDepartment     map[string]int `json:"byDepartment"`
	PresentToday     int            `json:"presentToday"`
	OnBreakNow       int            `json:"onBreakNow"`
	PendingLeaves    int            `json:"pendingLeaves"`
	OnLeaveToday     int            `json:"onLeaveToday"`
	OpenAnnouncement int            `json:"announcements"`
}
