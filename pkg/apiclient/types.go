package apiclient

import "time"

// User is the authenticated account as returned by /auth/me/.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate is the profile-update payload. Nil fields are omitted and left
// unchanged by the backend.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Token is the credential issued by /auth/token/.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Paginated is the backend's standard offset/limit list envelope.
type Paginated[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// GroupCreate is the group-creation payload.
type GroupCreate struct {
	Name string `json:"name"`
}

// GroupUpdate is the group-update payload.
type GroupUpdate struct {
	Name *string `json:"name,omitempty"`
}

// GroupMember is one member of a group.
type GroupMember struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// DebtItem is one netted debt edge between the current user and another
// member. Monetary amounts arrive as JSON numbers quantized to cents by the
// backend.
type DebtItem struct {
	UserID int     `json:"user_id"`
	Amount float64 `json:"amount"`
}

// GroupListItem is one entry of the authenticated user's group list.
type GroupListItem struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	CreatedBy       int        `json:"created_by"`
	InviteCode      string     `json:"invite_code"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpenseCount    int        `json:"expense_count"`
	OwedByUserTotal float64    `json:"owed_by_user_total"`
	OwedToUserTotal float64    `json:"owed_to_user_total"`
	LastActivityAt  *time.Time `json:"last_activity_at"`
}

// GroupDetail is a group including members and the current user's netted
// debt breakdown.
type GroupDetail struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	CreatedBy       int           `json:"created_by"`
	InviteCode      string        `json:"invite_code"`
	Members         []GroupMember `json:"members"`
	CreatedAt       time.Time     `json:"created_at"`
	ExpenseCount    int           `json:"expense_count"`
	OwedByUserTotal float64       `json:"owed_by_user_total"`
	OwedToUserTotal float64       `json:"owed_to_user_total"`
	OwedByUser      []DebtItem    `json:"owed_by_user"`
	OwedToUser      []DebtItem    `json:"owed_to_user"`
	LastActivityAt  *time.Time    `json:"last_activity_at"`
}

// JoinRequestStatus is the lifecycle state of a join request.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestAccepted JoinRequestStatus = "accepted"
	JoinRequestDeclined JoinRequestStatus = "declined"
)

// JoinRequester identifies the user behind a join request.
type JoinRequester struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// JoinRequest is a request to join a group by invite code, as seen by the
// group owner.
type JoinRequest struct {
	ID        int               `json:"id"`
	GroupID   int               `json:"group_id"`
	Status    JoinRequestStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Requester JoinRequester     `json:"requester"`
}

// Settlement is a recorded payment between two group members.
type Settlement struct {
	ID         int       `json:"id"`
	GroupID    int       `json:"group_id"`
	DebtorID   int       `json:"debtor_id"`
	CreditorID int       `json:"creditor_id"`
	Amount     float64   `json:"amount"`
	CreatedBy  int       `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// SettlementCreate is the payload recording a settlement payment.
type SettlementCreate struct {
	DebtorID   int     `json:"debtor_id"`
	CreditorID int     `json:"creditor_id"`
	Amount     float64 `json:"amount"`
}

// Expense is one recorded expense within a group.
type Expense struct {
	ID          int       `json:"id"`
	GroupID     int       `json:"group_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Value       float64   `json:"value"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseCreate is the expense-creation payload.
type ExpenseCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value"`
}

// ExpenseUpdate is the expense-update payload. Nil fields are left
// unchanged.
type ExpenseUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}
