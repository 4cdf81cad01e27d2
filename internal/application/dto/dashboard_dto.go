package dto

// DashboardResponse contadores y actividad reciente para el tablero admin.
type DashboardResponse struct {
	ActiveDistributors  int                `json:"activeDistributors"`
	TotalDocuments      int                `json:"totalDocuments"`
	PublishedNews       int                `json:"publishedNews"`
	UnreadNotifications int                `json:"unreadNotifications"`
	RecentDocuments     []DocumentResponse `json:"recentDocuments"`
}
