package dto

import (
	"time"

	"cloud.google.com/go/civil"
)

// TimeResponse reports the current time in the fixed zone
type TimeResponse struct {
	Zone  string     `json:"zone"`
	Now   time.Time  `json:"now"`
	Today civil.Date `json:"today"`
	UTC   time.Time  `json:"utc"`
}

// ConvertQuery holds the parameters of a conversion request.
// DateTime is RFC 3339 with an offset, or a naive "2006-01-02T15:04:05" value.
type ConvertQuery struct {
	DateTime string `form:"datetime" validate:"required"`
	To       string `form:"to" validate:"iana_zone"`
}

// ConvertResponse reports one instant in the source and target zones
type ConvertResponse struct {
	Input     string    `json:"input"`
	Naive     bool      `json:"naive"`
	Fixed     time.Time `json:"fixed"`
	Converted time.Time `json:"converted"`
	Zone      string    `json:"zone"`
}

// ZoneDTO describes a zone at the moment of the request
type ZoneDTO struct {
	Name          string `json:"name"`
	Abbreviation  string `json:"abbreviation"`
	UTCOffset     string `json:"utc_offset"`
	OffsetSeconds int    `json:"offset_seconds"`
}

// NewZoneDTO describes loc at instant t
func NewZoneDTO(loc *time.Location, t time.Time) ZoneDTO {
	local := t.In(loc)
	abbr, offset := local.Zone()
	return ZoneDTO{
		Name:          loc.String(),
		Abbreviation:  abbr,
		UTCOffset:     local.Format("-07:00"),
		OffsetSeconds: offset,
	}
}
