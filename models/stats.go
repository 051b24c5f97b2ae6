package models

// StatsResponse is returned for GET /api/stats
type StatsResponse struct {
	TotalFamilies    int64            `json:"total_families"`
	FamiliesByStatus map[string]int64 `json:"families_by_status"`
	TotalGuests      int64            `json:"total_guests"`
	ConfirmedGuests  int64            `json:"confirmed_guests"`
	Adults           int64            `json:"adults"`
	Children         int64            `json:"children"`
	TotalTables      int64            `json:"total_tables"`
	TotalSeats       int64            `json:"total_seats"`
	OccupiedSeats    int64            `json:"occupied_seats"`
}
