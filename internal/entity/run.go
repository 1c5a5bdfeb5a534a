package entity

import "time"

// Run is the aggregated result of one simulation batch.
type Run struct {
	ID         string    `json:"id"`
	Game       string    `json:"game"`
	Games      int       `json:"games"`
	Workers    int       `json:"workers"`
	Seed       uint64    `json:"seed"`
	Results    *Tally    `json:"results"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *Run) Elapsed() time.Duration {
	return that.FinishedAt.Sub(that.StartedAt)
}
