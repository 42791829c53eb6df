// Package model holds the HomeManager API resource types. Field names
// and JSON tags mirror the backend's serialized representations.
//
// Date-only fields (due_date, move_in_date, lease start/end) arrive as
// ISO "YYYY-MM-DD" strings and are kept as strings: they are displayed,
// filtered, and sorted, never computed with, and ISO dates order
// correctly under lexicographic comparison.
package model

import "time"

// Property is a building or estate owned by an organization.
type Property struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	PropertyType  string    `json:"property_type"`
	Description   string    `json:"description,omitempty"`
	UnitCount     int       `json:"unit_count"`
	OccupiedUnits int       `json:"occupied_units"`
	MonthlyIncome float64   `json:"monthly_income"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PropertyImage is an uploaded photo attached to a property.
type PropertyImage struct {
	ID          int64     `json:"id"`
	PropertyID  int64     `json:"property"`
	URL         string    `json:"image"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Unit is a rentable unit within a property.
type Unit struct {
	ID              int64   `json:"id"`
	PropertyID      int64   `json:"property"`
	UnitNumber      string  `json:"unit_number"`
	UnitType        string  `json:"unit_type,omitempty"`
	Floor           string  `json:"floor,omitempty"`
	Bedrooms        int     `json:"bedrooms,omitempty"`
	Bathrooms       float64 `json:"bathrooms,omitempty"`
	MonthlyRent     float64 `json:"monthly_rent"`
	SecurityDeposit float64 `json:"security_deposit"`
	IsOccupied      bool    `json:"is_occupied"`
	Description     string  `json:"description,omitempty"`
}

// Tenant is a person renting a unit.
type Tenant struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	PhoneNumber      string    `json:"phone_number"`
	Email            string    `json:"email,omitempty"`
	UnitID           int64     `json:"unit"`
	MoveInDate       string    `json:"move_in_date"`
	MoveOutDate      string    `json:"move_out_date,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	AddedAt          time.Time `json:"added_at"`
}

// Lease binds a tenant to a unit for a date range.
type Lease struct {
	ID        int64  `json:"id"`
	UnitID    int64  `json:"unit"`
	TenantID  int64  `json:"tenant"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
	Terms     string `json:"terms,omitempty"`
}

// Payment statuses used by the rent payment endpoints.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
	PaymentStatusPartial = "partial"
)

// RentPayment is a scheduled or completed rent payment.
type RentPayment struct {
	ID            int64      `json:"id"`
	UnitID        int64      `json:"unit"`
	TenantID      int64      `json:"tenant"`
	Amount        float64    `json:"amount"`
	DueDate       string     `json:"due_date"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
	Description   string     `json:"description,omitempty"`
	LateFee       float64    `json:"late_fee_applied"`
}

// Maintenance ticket statuses and priorities.
const (
	TicketStatusNew        = "new"
	TicketStatusAssigned   = "assigned"
	TicketStatusInProgress = "in_progress"
	TicketStatusOnHold     = "on_hold"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"

	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
	TicketPriorityUrgent = "urgent"
)

// Ticket is a maintenance request raised against a unit.
type Ticket struct {
	ID           int64      `json:"id"`
	PropertyID   int64      `json:"property"`
	UnitID       int64      `json:"unit"`
	TenantID     int64      `json:"tenant"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	AssignedToID *int64     `json:"assigned_to,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

// TicketComment is a note on a maintenance ticket.
type TicketComment struct {
	ID         int64     `json:"id"`
	TicketID   int64     `json:"ticket"`
	AuthorName string    `json:"author_name"`
	IsOwner    bool      `json:"is_owner"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ServiceProvider is a contractor tickets can be assigned to.
type ServiceProvider struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProviderType string `json:"provider_type"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email,omitempty"`
}

// Notice is an announcement posted to a property's tenants.
type Notice struct {
	ID          int64     `json:"id"`
	PropertyID  int64     `json:"property"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	NoticeType  string    `json:"notice_type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	IsImportant bool      `json:"is_important"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
}

// Organization is the tenant-of-the-system owning properties and users.
type Organization struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	Description        string `json:"description,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	SubscriptionStatus string `json:"subscription_status,omitempty"`
	PlanName           string `json:"plan_name,omitempty"`
}

// Member is a user's membership in an organization, with a role.
type Member struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	JoinedAt  time.Time `json:"joined_at"`
}

// User is the authenticated user's profile as returned by /api/users/me/.
type User struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	IsStaff          bool   `json:"is_staff"`
	IsSuperuser      bool   `json:"is_superuser"`
	OrganizationID   int64  `json:"organization_id,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	OrganizationSlug string `json:"organization_slug,omitempty"`
}

// DashboardSummary is the KPI block on the landing dashboard.
type DashboardSummary struct {
	TotalProperties int     `json:"total_properties"`
	TotalUnits      int     `json:"total_units"`
	OccupiedUnits   int     `json:"occupied_units"`
	OccupancyRate   float64 `json:"occupancy_rate"`
	ActiveTenants   int     `json:"active_tenants"`
	OpenTickets     int     `json:"open_tickets"`
	PendingPayments int     `json:"pending_payments"`
	PaidThisMonth   float64 `json:"paid_this_month"`
	ExpectedIncome  float64 `json:"expected_income"`
}
