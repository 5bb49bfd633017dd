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
// Package store keeps the players and match results of a tournament, and
// answers the queries the pairing engine makes about them.
package store

import "errors"

var (
	ErrUnknownPlayer = errors.New("store: unknown player")
	ErrSelfMatch     = errors.New("store: a player cannot play themself")

	// ErrByeAlreadyGiven is returned when a second bye is recorded for
	// a player. Every player gets at most one bye per tournament.
	ErrByeAlreadyGiven = errors.New("store: player has already had a bye")
)

// Match is the recorded result of a single match. A bye is recorded as a
// match without a loser.
type Match struct {
	Winner int  `yaml:"winner"`
	Loser  *int `yaml:"loser,omitempty"`
}

// IsBye checks if the match was a bye.
func (match Match) IsBye() bool {
	return match.Loser == nil
}

// Between checks if the match was played between the two players.
func (match Match) Between(player1, player2 int) bool {
	if match.Loser == nil {
		return false
	}

	return match.Winner == player1 && *match.Loser == player2 ||
		match.Winner == player2 && *match.Loser == player1
}
