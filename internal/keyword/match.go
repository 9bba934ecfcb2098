package keyword

import (
	"strings"

	"github.com/jorge-castellon-jr/chess-tcg/internal/model"
)

// Matching returns the ids of every keyword whose name appears as a
// case-insensitive substring of effect. Order follows dict order.
func Matching(dict []model.Keyword, effect string) []model.KeywordID {
	if strings.TrimSpace(effect) == "" {
		return nil
	}
	lower := strings.ToLower(effect)

	var ids []model.KeywordID
	for _, k := range dict {
		name := strings.ToLower(strings.TrimSpace(k.Name))
		if name == "" {
			continue
		}
		if strings.Contains(lower, name) {
			ids = append(ids, k.ID)
		}
	}
	return ids
}
