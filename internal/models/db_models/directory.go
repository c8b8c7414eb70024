package db_models

// Member is a generated directory entry, distinct from a registered Account.
// The chat screen uses the directory as its roster.
type Member struct {
	Callsign         string   `json:"callsign"`
	RealName         string   `json:"realName"`
	PrimaryRoles     []string `json:"primaryRoles"`
	Status           string   `json:"status"`
	AvatarURL        string   `json:"avatarUrl"`
	PreferredContact string   `json:"preferredContact"`
}

type Operation struct {
	Name         string   `json:"name"`
	Objective    string   `json:"objective"`
	Status       string   `json:"status"`
	KeyPersonnel []string `json:"keyPersonnel"`
}

type DashboardSummary struct {
	Announcement struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"announcement"`
	Stats struct {
		TotalMembers     int `json:"totalMembers"`
		TotalShips       int `json:"totalShips"`
		ActiveOperations int `json:"activeOperations"`
	} `json:"stats"`
	UpcomingEvent struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
	} `json:"upcomingEvent"`
}

type ServerStatusValue string

const (
	ServerOperational      ServerStatusValue = "operational"
	ServerDegraded         ServerStatusValue = "degraded_performance"
	ServerPartialOutage    ServerStatusValue = "partial_outage"
	ServerMajorOutage      ServerStatusValue = "major_outage"
	ServerUnderMaintenance ServerStatusValue = "under_maintenance"
)

func KnownServerStatuses() []ServerStatusValue {
	return []ServerStatusValue{
		ServerOperational,
		ServerDegraded,
		ServerPartialOutage,
		ServerMajorOutage,
		ServerUnderMaintenance,
	}
}
