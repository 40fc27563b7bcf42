package restaurant

import "time"

// Restaurant is the publicly presented profile. Logo is nil when no logo
// has been uploaded; LogoKey is the object-storage key kept for replacement.
type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	Logo      *string   `json:"logo,omitempty"`
	LogoKey   *string   `json:"-"`
	AdminID   string    `json:"admin_id"`
	Theme     string    `json:"theme,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
