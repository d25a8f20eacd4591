package user

import "time"

// User account states.
const (
	StatusActive = "active"
	StatusBanned = "banned"
)

// User is a forum member. The record is owned by the account service;
// this codebase reads it and writes exactly one field, language_code, through
// Service.SetLanguage. LanguageCode is an advisory reference into the
// language registry: it is not enforced with a foreign key and readers must
// tolerate dangling codes. PostsCount and CommentsCount are denormalized
// counters maintained by the content services and are never written here.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TenantID      uint      `json:"tenant_id" gorm:"index;not null"`
	Username      string    `json:"username" gorm:"size:100;not null"`
	Email         string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"`
	IsAdmin       bool      `json:"is_admin" gorm:"not null;default:false"`
	LanguageCode  string    `json:"language_code" gorm:"size:10;not null;default:en"`
	PostsCount    int64     `json:"posts_count" gorm:"not null;default:0"`
	CommentsCount int64     `json:"comments_count" gorm:"not null;default:0"`
	Status        string    `json:"status" gorm:"size:50;not null;default:active"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
}
