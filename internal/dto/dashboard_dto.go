package dto

type UserDashboardCountsResponse struct {
	Pets      int64 `json:"pets"`
	Requests  int64 `json:"requests"`
	Campaigns int64 `json:"campaigns"`
}
