package game

import "github.com/prachya/golfparty/internal/domain/model"

// roster is a player map that remembers first-seen order, so ranking ties
// resolve by encounter order.
type roster struct {
	players map[string]*model.Player
	order   []string
}

func newRoster() *roster {
	return &roster{players: make(map[string]*model.Player)}
}

// get returns the player for id, creating it on first sight.
func (r *roster) get(id, name string) *model.Player {
	if p, ok := r.players[id]; ok {
		return p
	}
	p := model.NewPlayer(name)
	r.players[id] = p
	r.order = append(r.order, id)
	return p
}

// inOrder returns the players in first-seen order.
func (r *roster) inOrder() []*model.Player {
	out := make([]*model.Player, len(r.order))
	for i, id := range r.order {
		out[i] = r.players[id]
	}
	return out
}

func (r *roster) len() int { return len(r.order) }
