package domain

// User is the account record. Email is the immutable business key; Token
// holds the single currently valid refresh token, empty when revoked.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Token    string `gorm:"size:512" json:"-"`
	Verified bool   `gorm:"not null;default:false" json:"verified"`
	Avatar   string `gorm:"size:255" json:"avatar,omitempty"`
}
