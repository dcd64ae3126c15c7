package domain

type AccountID int64

type Account struct {
	ID       AccountID `json:"id" db:"account_id"`
	Username string    `json:"username" db:"username"`
	Password string    `json:"password" db:"password"`
}
