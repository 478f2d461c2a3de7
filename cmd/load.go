package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"

	"github.com/pable/soccerstats/internal/dataset"
	"github.com/pable/soccerstats/internal/model"
)

// loadTable reads the cleaned file named by --data.
func loadTable() (model.Table, error) {
	res, err := dataset.LoadPlayers(dataPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Table{}, fmt.Errorf("%w (run 'soccerstats clean' first)", err)
		}
		return model.Table{}, err
	}
	ev := log.Debug()
	if res.Coerced > 0 {
		ev = log.Warn()
	}
	ev.Str("path", dataPath).Int("players", res.Table.Len()).Int("coerced", res.Coerced).Msg("loaded players")
	return res.Table, nil
}

// findPlayer looks a player up by exact name.
func findPlayer(t model.Table, name string) (model.Player, error) {
	p, ok := t.FindByName(name)
	if !ok {
		return model.Player{}, fmt.Errorf("player %q not found", name)
	}
	return p, nil
}
