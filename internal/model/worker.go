package model

// Worker is a shop floor account. Access codes are stored and compared as
// plain text: this is advisory access control for an internal tool, not a
// security boundary, and the scanner frontend depends on the stored codes
// staying readable.
type Worker struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Username   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	AccessCode string `gorm:"type:varchar(100);not null" json:"-" validate:"required"`

	// Rotated on every login so older session tokens stop validating.
	TokenVersion string `gorm:"type:varchar(64);default:''" json:"-"`
}

// WorkerResponse is the public shape of a worker (no access code).
type WorkerResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (w *Worker) ToResponse() WorkerResponse {
	return WorkerResponse{ID: w.ID, Username: w.Username}
}
