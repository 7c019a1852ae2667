package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account row. Auth is demo-only: a single seeded user with a
// bcrypt hash; the provider API key is stored per user so the mobile app
// can switch between demo data and live quotes.
type User struct {
	UserID         uuid.UUID      `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Fullname       string         `gorm:"column:fullname;not null" json:"fullname"`
	Email          string         `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PasswordHash   string         `gorm:"column:password_hash;not null" json:"-"`
	Avatar         string         `gorm:"column:avatar" json:"avatar,omitempty"`
	AccountBalance float64        `gorm:"column:account_balance;not null;default:0" json:"accountBalance"`
	APIKey         string         `gorm:"column:api_key" json:"-"`
	JoinedDate     time.Time      `gorm:"column:joined_date" json:"joinedDate"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "Users"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	if u.JoinedDate.IsZero() {
		u.JoinedDate = time.Now()
	}
	return nil
}
