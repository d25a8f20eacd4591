package tenant

import "time"

// Tenant status values. Suspension is the only lifecycle transition; tenants
// are never physically deleted.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Tenant represents one forum community hosted on the platform. Domain is the
// routing key: inbound requests are matched against it once per request, and
// uniqueness is enforced only among active tenants so a suspended tenant
// frees its domain.
type Tenant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Domain      string    `json:"domain" gorm:"size:255;not null;index:idx_tenants_active_domain,unique,where:status = 'active'"`
	AdminUserID uint      `json:"admin_user_id" gorm:"not null"`
	Status      string    `json:"status" gorm:"size:50;not null;default:active"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}

// UsageRow is one row of the per-tenant usage report. User and content counts
// come from a left join over users, so tenants without users still appear
// with zero counts. posts_count and comments_count aggregate the denormalized
// counters maintained by the content services.
type UsageRow struct {
	TenantID      uint      `json:"tenant_id"`
	TenantName    string    `json:"tenant_name"`
	Domain        string    `json:"domain"`
	UserCount     int64     `json:"user_count"`
	PostsCount    int64     `json:"posts_count"`
	CommentsCount int64     `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
}
