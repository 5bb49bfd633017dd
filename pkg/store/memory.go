// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/pkg/swiss"
)

// Memory is a tournament store which keeps everything in memory. Its state
// can be saved and restored as a YAML document with Dump and LoadMemory.
type Memory struct {
	mu    sync.RWMutex
	state snapshot
}

type snapshot struct {
	NextID  int            `yaml:"next-id"`
	Players []memoryPlayer `yaml:"players"`
	Matches []Match        `yaml:"matches"`
}

type memoryPlayer struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	HadBye bool   `yaml:"had-bye"`
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{state: snapshot{NextID: 1}}
}

// LoadMemory reads a store previously saved with Dump.
func LoadMemory(r io.Reader) (*Memory, error) {
	var state snapshot
	if err := yaml.NewDecoder(r).Decode(&state); err != nil {
		return nil, fmt.Errorf("load memory store: %w", err)
	}

	for _, player := range state.Players {
		state.NextID = max(state.NextID, player.ID+1)
	}

	return &Memory{state: state}, nil
}

// Dump writes the store's contents to w as a YAML document.
func (store *Memory) Dump(w io.Writer) error {
	store.mu.RLock()
	defer store.mu.RUnlock()

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(store.state); err != nil {
		return err
	}

	return encoder.Close()
}

// RegisterPlayer adds a new player to the tournament and returns their id.
func (store *Memory) RegisterPlayer(name string) (int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := store.state.NextID
	store.state.NextID++
	store.state.Players = append(store.state.Players, memoryPlayer{ID: id, Name: name})
	return id, nil
}

// CountPlayers returns the number of registered players.
func (store *Memory) CountPlayers() (int, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.state.Players), nil
}

// DeleteMatches removes every match result and clears every player's bye.
func (store *Memory) DeleteMatches() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.state.Matches = nil
	for i := range store.state.Players {
		store.state.Players[i].HadBye = false
	}

	return nil
}

// DeletePlayers removes every player and their match results. Ids are not
// reused, like an AUTOINCREMENT column.
func (store *Memory) DeletePlayers() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.state.Matches = nil
	store.state.Players = nil
	return nil
}

// Players returns every registered player, ordered by id.
func (store *Memory) Players() ([]swiss.Player, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	players := make([]swiss.Player, len(store.state.Players))
	for i, player := range store.state.Players {
		players[i] = swiss.Player{
			Standing: store.record(player),
			HadBye:   player.HadBye,
		}
	}

	return players, nil
}

// Standings returns the players and their records, most wins first.
func (store *Memory) Standings() ([]swiss.Standing, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	standings := make([]swiss.Standing, len(store.state.Players))
	for i, player := range store.state.Players {
		standings[i] = store.record(player)
	}

	slices.SortStableFunc(standings, func(a, b swiss.Standing) int {
		return cmp.Or(cmp.Compare(b.Wins, a.Wins), cmp.Compare(a.ID, b.ID))
	})

	return standings, nil
}

// Matches returns every recorded match, in the order they were recorded.
func (store *Memory) Matches() ([]Match, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return slices.Clone(store.state.Matches), nil
}

// RecordMatch records that the winner beat the loser.
func (store *Memory) RecordMatch(winner, loser int) error {
	if winner == loser {
		return fmt.Errorf("%w: #%d", ErrSelfMatch, winner)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	for _, player := range []int{winner, loser} {
		if _, err := store.find(player); err != nil {
			return err
		}
	}

	store.state.Matches = append(store.state.Matches, Match{Winner: winner, Loser: &loser})
	return nil
}

// RecordBye records the given player's bye as a win without a loser.
func (store *Memory) RecordBye(player int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	index, err := store.find(player)
	if err != nil {
		return err
	}

	if slices.ContainsFunc(store.state.Matches, func(match Match) bool {
		return match.IsBye() && match.Winner == player
	}) {
		return fmt.Errorf("%w: #%d", ErrByeAlreadyGiven, player)
	}

	store.state.Players[index].HadBye = true
	store.state.Matches = append(store.state.Matches, Match{Winner: player})
	return nil
}

// HasPlayedBefore checks if the two players have met in a match.
func (store *Memory) HasPlayedBefore(player1, player2 int) (bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return slices.ContainsFunc(store.state.Matches, func(match Match) bool {
		return match.Between(player1, player2)
	}), nil
}

// NameOf returns the name of the given player.
func (store *Memory) NameOf(player int) (string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	index, err := store.find(player)
	if err != nil {
		return "", err
	}

	return store.state.Players[index].Name, nil
}

// HasHadBye checks if the given player has been given a bye.
func (store *Memory) HasHadBye(player int) (bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	index, err := store.find(player)
	if err != nil {
		return false, err
	}

	return store.state.Players[index].HadBye, nil
}

// MarkByeGiven marks the given player as having had their bye.
func (store *Memory) MarkByeGiven(player int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	index, err := store.find(player)
	if err != nil {
		return err
	}

	store.state.Players[index].HadBye = true
	return nil
}

// find returns the index of the given player. The lock must be held.
func (store *Memory) find(player int) (int, error) {
	index := slices.IndexFunc(store.state.Players, func(p memoryPlayer) bool {
		return p.ID == player
	})

	if index == -1 {
		return 0, fmt.Errorf("%w: #%d", ErrUnknownPlayer, player)
	}

	return index, nil
}

// record computes a player's standing from the match list. The lock must
// be held.
func (store *Memory) record(player memoryPlayer) swiss.Standing {
	standing := swiss.Standing{ID: player.ID, Name: player.Name}
	for _, match := range store.state.Matches {
		switch {
		case match.Winner == player.ID:
			standing.Wins++
			standing.Played++
		case match.Loser != nil && *match.Loser == player.ID:
			standing.Played++
		}
	}

	return standing
}
