// internal/handler/requests.go
package handler

// === DTO ===
//
// Update requests use pointers for fields that fall back to the stored value
// when omitted.

type IDRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type CreateEntityRequest struct {
	Name             string `json:"entity_name" validate:"required,notblank"`
	Description      string `json:"entity_desc" validate:"required"`
	ShortDescription string `json:"entity_short_desc" validate:"required"`
	Category         string `json:"category" validate:"required,category"`
}

type UpdateEntityRequest struct {
	ID               int64   `json:"id" validate:"required,gt=0"`
	Name             string  `json:"entity_name" validate:"required,notblank"`
	Description      string  `json:"entity_desc" validate:"required"`
	ShortDescription string  `json:"entity_short_desc" validate:"required"`
	Category         *string `json:"category" validate:"omitempty,category"`
}

type CreateServiceRequest struct {
	EntityName  string   `json:"entity_name" validate:"required,notblank"`
	Name        string   `json:"service_name" validate:"required,notblank"`
	Description string   `json:"service_desc"`
	MinDuration *int     `json:"min_duration" validate:"required,gte=0,max=2147483647"`
	Amount      *float64 `json:"amount" validate:"required,gte=0,lt=10000000000"`
	Category    string   `json:"category" validate:"required,category"`
}

type UpdateServiceRequest struct {
	ID          int64    `json:"id" validate:"required,gt=0"`
	Name        string   `json:"service_name" validate:"required,notblank"`
	EntityName  *string  `json:"entity_name" validate:"omitempty,notblank"`
	Description *string  `json:"service_desc"`
	MinDuration *int     `json:"min_duration" validate:"omitempty,gte=0,max=2147483647"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0,lt=10000000000"`
	Category    *string  `json:"category" validate:"omitempty,category"`
}

type CreatePayeeRequest struct {
	EntityName  string   `json:"entity_name" validate:"required,notblank"`
	ServiceName string   `json:"service_name" validate:"required,notblank"`
	Name        string   `json:"payee_name" validate:"required,notblank"`
	Phone       string   `json:"phone" validate:"max=32"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Amount      *float64 `json:"amount" validate:"required,gte=0,lt=10000000000"`
	Category    string   `json:"category" validate:"required,category"`
}

type UpdatePayeeRequest struct {
	ID          int64    `json:"id" validate:"required,gt=0"`
	Name        string   `json:"payee_name" validate:"required,notblank"`
	EntityName  *string  `json:"entity_name" validate:"omitempty,notblank"`
	ServiceName *string  `json:"service_name" validate:"omitempty,notblank"`
	Phone       *string  `json:"phone" validate:"omitempty,max=32"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0,lt=10000000000"`
	Category    *string  `json:"category" validate:"omitempty,category"`
}

type CreateSubscriptionRequest struct {
	EntityName  string   `json:"entity_name" validate:"required,notblank"`
	ServiceName string   `json:"service_name" validate:"required,notblank"`
	PayeeName   string   `json:"payee_name" validate:"required,notblank"`
	StartDate   string   `json:"start_date" validate:"required,isodate"`
	EndDate     *string  `json:"end_date" validate:"omitempty,isodate"`
	PaymentDate string   `json:"payment_date" validate:"required,isodate"`
	Amount      *float64 `json:"amount" validate:"required,gte=0,lt=10000000000"`
	Category    string   `json:"category" validate:"required,category"`
}

type UpdateSubscriptionRequest struct {
	ID          int64    `json:"id" validate:"required,gt=0"`
	EntityName  *string  `json:"entity_name" validate:"omitempty,notblank"`
	ServiceName *string  `json:"service_name" validate:"omitempty,notblank"`
	PayeeName   *string  `json:"payee_name" validate:"omitempty,notblank"`
	StartDate   *string  `json:"start_date" validate:"omitempty,isodate"`
	EndDate     *string  `json:"end_date" validate:"omitempty,isodate"`
	PaymentDate *string  `json:"payment_date" validate:"omitempty,isodate"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0,lt=10000000000"`
	Category    *string  `json:"category" validate:"omitempty,category"`
}

type EditUserRequest struct {
	Username       *string `json:"username" validate:"omitempty,notblank,max=64"`
	Name           *string `json:"name" validate:"omitempty,max=128"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,max=32"`
	Password       *string `json:"password" validate:"omitempty,min=8,max=72"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

func (r *EditUserRequest) empty() bool {
	return r.Username == nil && r.Name == nil && r.Email == nil &&
		r.Phone == nil && r.Password == nil && r.TelegramChatID == nil
}
