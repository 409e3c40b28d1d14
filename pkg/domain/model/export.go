package model

import "time"

// ExportDocument is the serialized form of a full data export. There is
// no import counterpart yet.
type ExportDocument struct {
	Projects   []*Project `json:"projects"`
	Risks      []*Risk    `json:"risks"`
	ExportedAt time.Time  `json:"exportedAt"`
}
