package dto

type CountResponse struct {
	Count int64 `json:"count"`
}

type MemberStatsResponse struct {
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	All      int64 `json:"all"`
	User     int64 `json:"user"`
	Admin    int64 `json:"admin"`
}

type UpdateRoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UpdateStatusResponse struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

type UpdateAdoptedResponse struct {
	Adopted bool `json:"adopted"`
}
