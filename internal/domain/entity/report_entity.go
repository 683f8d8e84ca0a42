package entity

import "time"

// Report is an abuse report filed against a sound pin.
type Report struct {
	ID        string    `json:"id"`
	SoundID   string    `json:"soundId"`
	UserID    string    `json:"userId"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportView joins a report with its sound and reporter. Either side is null
// when the referenced record no longer resolves; dangling references are
// display concerns, not errors.
type ReportView struct {
	Report
	Sound    *Sound       `json:"sound"`
	Reporter *UserSummary `json:"reporter"`
}

// ReportedSound is a sound paired with the number of reports against it.
type ReportedSound struct {
	Sound
	Reports int `json:"reports"`
}
