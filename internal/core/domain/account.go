package domain

import "time"

// MetaAccount is an advertising account linked through the OAuth connect
// flow. The dashboard can only list, sync and disconnect it.
type MetaAccount struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	AccountName string    `json:"accountName"`
	Currency    string    `json:"currency"`
	Status      string    `json:"accountStatus"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FindAccount returns the account with the given id.
func FindAccount(accounts []MetaAccount, id string) (MetaAccount, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return MetaAccount{}, false
}
