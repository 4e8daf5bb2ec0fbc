package player

import (
	"fmt"
	"regexp"
	"time"

	"github.com/pixil98/go-errors"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{2,23}$`)

// Account is a login identity. One account may own several characters;
// which character it is playing lives on the session, not here.
type Account struct {
	ID           uint64    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

func (a *Account) RowID() uint64      { return a.ID }
func (a *Account) SetRowID(id uint64) { a.ID = id }

func (a *Account) Validate() error {
	el := errors.NewErrorList()

	if !usernamePattern.MatchString(a.Username) {
		el.Add(fmt.Errorf("username must be 3-24 alphanumeric characters starting with a letter"))
	}

	if len(a.PasswordHash) == 0 {
		el.Add(fmt.Errorf("password hash must be set"))
	}

	return el.Err()
}
