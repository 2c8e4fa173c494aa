package domain

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:60;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Address      *string   `gorm:"size:400" json:"address"`
	Role         Role      `gorm:"size:32;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Email     *string   `gorm:"uniqueIndex;size:255" json:"email"`
	Address   string    `gorm:"size:400;not null" json:"address"`
	OwnerID   *uint     `gorm:"index" json:"owner_id"`
	Owner     *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Store) TableName() string { return "stores" }

// Rating pairs one user with one store; the composite unique index makes
// resubmission an update, never a second row.
type Rating struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:ux_ratings_user_store" json:"user_id"`
	StoreID     uint      `gorm:"not null;uniqueIndex:ux_ratings_user_store" json:"store_id"`
	RatingValue int       `gorm:"not null;check:rating_value >= 1 AND rating_value <= 5" json:"rating_value"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Store       *Store    `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Rating) TableName() string { return "ratings" }

// Models lists everything AutoMigrate needs, in FK order.
func Models() []any {
	return []any{&User{}, &Store{}, &Rating{}}
}
