package tournament

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sort"
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

var ErrNotFound = errors.New("tournament not found")

type Repo interface {
	Create(ctx context.Context, t model.Tournament) (model.Tournament, error)
	Get(ctx context.Context, id model.TournamentID) (model.Tournament, error)
	List(ctx context.Context) ([]model.Tournament, error)
}

func newID() model.TournamentID {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return model.TournamentID("trn_" + hex.EncodeToString(b[:]))
}

// normalizeTournament trims names and orders results by rank so standings
// render the same regardless of input order.
func normalizeTournament(t *model.Tournament) {
	t.Name = strings.TrimSpace(t.Name)
	for i := range t.Results {
		t.Results[i].PlayerName = strings.TrimSpace(t.Results[i].PlayerName)
	}
	sort.SliceStable(t.Results, func(i, j int) bool {
		return t.Results[i].Rank < t.Results[j].Rank
	})
}
