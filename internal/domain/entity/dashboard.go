package entity

// DashboardStats contadores agregados para el tablero del administrador.
type DashboardStats struct {
	ActiveDistributors  int
	TotalDocuments      int
	PublishedNews       int
	UnreadNotifications int
}
