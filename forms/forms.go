package forms

// PropertyForm creates or fully updates a property.
type PropertyForm struct {
	Name         string `json:"name" binding:"required,max=200"`
	Address      string `json:"address" binding:"required"`
	PropertyType string `json:"property_type" binding:"required,oneof=apartment house commercial mixed_use"`
	Description  string `json:"description,omitempty" binding:"max=2000"`
}

// UnitForm creates or fully updates a unit within a property.
type UnitForm struct {
	PropertyID      int64   `json:"property" binding:"required,gt=0"`
	UnitNumber      string  `json:"unit_number" binding:"required,max=20"`
	UnitType        string  `json:"unit_type,omitempty" binding:"max=50"`
	Floor           string  `json:"floor,omitempty" binding:"max=10"`
	Bedrooms        int     `json:"bedrooms,omitempty" binding:"gte=0"`
	MonthlyRent     float64 `json:"monthly_rent" binding:"required,gt=0"`
	SecurityDeposit float64 `json:"security_deposit,omitempty" binding:"gte=0"`
	Description     string  `json:"description,omitempty" binding:"max=2000"`
}

// TenantForm creates a tenant or patches one when editing.
type TenantForm struct {
	Name             string `json:"name" binding:"required,max=200"`
	PhoneNumber      string `json:"phone_number" binding:"required,max=15"`
	Email            string `json:"email,omitempty" binding:"omitempty,email"`
	UnitID           int64  `json:"unit" binding:"required,gt=0"`
	MoveInDate       string `json:"move_in_date" binding:"required,datetime=2006-01-02"`
	EmergencyContact string `json:"emergency_contact,omitempty" binding:"max=200"`
}

// LeaseForm creates a lease binding a tenant to a unit.
type LeaseForm struct {
	UnitID    int64  `json:"unit" binding:"required,gt=0"`
	TenantID  int64  `json:"tenant" binding:"required,gt=0"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Terms     string `json:"terms,omitempty"`
}

// PaymentForm records a rent payment.
type PaymentForm struct {
	UnitID        int64   `json:"unit" binding:"required,gt=0"`
	TenantID      int64   `json:"tenant" binding:"required,gt=0"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	DueDate       string  `json:"due_date" binding:"required,datetime=2006-01-02"`
	Status        string  `json:"status" binding:"required,oneof=pending paid overdue partial"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,oneof=cash mpesa bank card"`
	Description   string  `json:"description,omitempty"`
}

// TicketForm opens a maintenance ticket.
type TicketForm struct {
	PropertyID  int64  `json:"property" binding:"required,gt=0"`
	UnitID      int64  `json:"unit" binding:"required,gt=0"`
	TenantID    int64  `json:"tenant" binding:"required,gt=0"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high urgent"`
}

// NoticeForm posts a notice to a property's board.
type NoticeForm struct {
	PropertyID  int64  `json:"property" binding:"required,gt=0"`
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content" binding:"required"`
	NoticeType  string `json:"notice_type" binding:"required,oneof=general maintenance payment emergency event"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	IsImportant bool   `json:"is_important"`
}

// InviteForm invites a team member into the organization.
type InviteForm struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=owner manager caretaker viewer"`
}
