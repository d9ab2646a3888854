package leave

type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// CountByStatus tallies requests by status over the whole slice passed in,
// independent of any view filter.
func CountByStatus[T interface{ GetLeaveRequest() LeaveRequest }](requests []T) StatusCounts {
	var c StatusCounts
	for _, r := range requests {
		switch r.GetLeaveRequest().Status {
		case StatusPending:
			c.Pending++
		case StatusApproved:
			c.Approved++
		case StatusRejected:
			c.Rejected++
		}
		c.Total++
	}
	return c
}
