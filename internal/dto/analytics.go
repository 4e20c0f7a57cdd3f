package dto

// DashboardMetrics summarises the job seeker's applications by status group.
// SuccessRate is the percentage of applications currently in Offer, 0 when there are none.
type DashboardMetrics struct {
	TotalApplications int64   `json:"total_applications"`
	InProgress        int64   `json:"in_progress"`
	Interviewed       int64   `json:"interviewed"`
	Offers            int64   `json:"offers"`
	Rejections        int64   `json:"rejections"`
	Hired             int64   `json:"hired"`
	Withdrawn         int64   `json:"withdrawn"`
	SuccessRate       float64 `json:"success_rate"`
}
