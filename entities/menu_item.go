package entities

type MenuItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description" gorm:"type:text"`
	SpecialTag  string  `json:"special_tag,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`

	Timestamp
}
