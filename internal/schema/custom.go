package schema

import "fmt"

type RoundedFloat float64

func (f RoundedFloat) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", f)), nil
}

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05"
)

// Supplier room type codes.
type RoomType string

const (
	RoomTypeSingle RoomType = "SG"
	RoomTypeDouble RoomType = "DB"
	RoomTypeTwin   RoomType = "TW"
	RoomTypeQuad   RoomType = "QD"
)
