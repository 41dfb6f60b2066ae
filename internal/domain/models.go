// internal/domain/models.go
package domain

const (
	CategoryIncome  = "income"
	CategoryExpense = "expense"
)

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

// UserUpdate holds the fields of a profile edit; nil keeps the stored value.
type UserUpdate struct {
	Username       *string
	Name           *string
	Email          *string
	Phone          *string
	PasswordHash   *string
	TelegramChatID *int64
}

// Entity is an income or expense source owned by a user.
type Entity struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	Name             string `json:"entity_name"`
	Description      string `json:"entity_desc"`
	ShortDescription string `json:"entity_short_desc"`
	Category         string `json:"category"`
}

type EntityUpdate struct {
	Name             string
	Description      string
	ShortDescription string
	Category         *string
}

type Service struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	EntityID    int64   `json:"entity_id"`
	EntityName  string  `json:"entity_name"`
	Name        string  `json:"service_name"`
	Description string  `json:"service_desc"`
	MinDuration int     `json:"min_duration"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

type ServiceUpdate struct {
	Name        string
	EntityName  *string
	Description *string
	MinDuration *int
	Amount      *float64
	Category    *string
}

type Payee struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	EntityID    int64   `json:"entity_id"`
	EntityName  string  `json:"entity_name"`
	ServiceID   int64   `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Name        string  `json:"payee_name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

type PayeeUpdate struct {
	Name        string
	EntityName  *string
	ServiceName *string
	Phone       *string
	Email       *string
	Amount      *float64
	Category    *string
}

// Subscription dates are calendar dates in YYYY-MM-DD form.
type Subscription struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	EntityID    int64   `json:"entity_id"`
	EntityName  string  `json:"entity_name"`
	ServiceID   int64   `json:"service_id"`
	ServiceName string  `json:"service_name"`
	PayeeID     int64   `json:"payee_id"`
	PayeeName   string  `json:"payee_name"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	PaymentDate string  `json:"payment_date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

type SubscriptionUpdate struct {
	EntityName  *string
	ServiceName *string
	PayeeName   *string
	StartDate   *string
	EndDate     *string
	PaymentDate *string
	Amount      *float64
	Category    *string
}

// DuePayment is a subscription payment falling inside a reminder window.
type DuePayment struct {
	UserID         int64
	TelegramChatID int64
	EntityName     string
	ServiceName    string
	PayeeName      string
	PaymentDate    string
	Amount         float64
	Category       string
}
