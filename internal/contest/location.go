package contest

import (
	"time"
	_ "time/tzdata" // containers running the job often ship without zoneinfo
)

// TokyoZone is the zone AtCoder publishes times in and the zone messages are shown in
const TokyoZone = "Asia/Tokyo"

var tokyo = mustLoad(TokyoZone)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// DisplayLocation returns the zone contest times are presented in
func DisplayLocation() *time.Location {
	return tokyo
}
