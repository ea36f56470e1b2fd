package dto

// ListQuery carries the paging parameters of list endpoints.
// Both parameters are mandatory; page is zero-based.
type ListQuery struct {
	Page *int `form:"page" binding:"required"`
	Size *int `form:"size" binding:"required"`
}

// TokenQuery carries the username a token is issued for.
type TokenQuery struct {
	Username string `form:"username" binding:"required"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Time     string `json:"time" example:"2026-01-23T12:00:00Z"`
	Database string `json:"database" example:"ok"`
	// Pool is omitted when the pool statistics cannot be read
	Pool *PoolStats `json:"pool,omitempty"`
}

// PoolStats mirrors the database connection pool counters
type PoolStats struct {
	MaxOpenConnections int   `json:"max_open_connections" example:"25"`
	OpenConnections    int   `json:"open_connections" example:"3"`
	InUse              int   `json:"in_use" example:"1"`
	Idle               int   `json:"idle" example:"2"`
	WaitCount          int64 `json:"wait_count" example:"0"`
	WaitDurationMs     int64 `json:"wait_duration_ms" example:"0"`
}
