package entities

type ShoppingCart struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"uniqueIndex" json:"user_id"`

	// Recomputed from the line items on every fetch, never stored.
	CartTotal float64 `gorm:"-" json:"cart_total"`

	CartItems []CartItem `gorm:"foreignKey:ShoppingCartID;constraint:OnDelete:CASCADE" json:"cart_items"`
	Timestamp
}

type CartItem struct {
	ID             uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ShoppingCartID uint `gorm:"index" json:"shopping_cart_id"`
	MenuItemID     uint `json:"menu_item_id"`
	Quantity       int  `json:"quantity"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Timestamp
}
