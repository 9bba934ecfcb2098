// Package user stores the minimal account records deck ownership points at.
// There is no login or session handling here.
package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("a user with that email already exists")
)

type Repo interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	Get(ctx context.Context, id model.UserID) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

func newID() model.UserID {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return model.UserID("usr_" + hex.EncodeToString(b[:]))
}

func normalizeUser(u *model.User) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
}
