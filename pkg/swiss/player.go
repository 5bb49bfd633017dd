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

// Package swiss pairs the players of a Swiss-system tournament for their
// next round. Players are grouped by their number of wins, and each group is
// matched internally without any rematches, pulling players down from the
// next higher group whenever a group cannot be matched on its own.
package swiss

import "fmt"

// ByeMarker is the opponent name of a bye Pairing.
const ByeMarker = "BYE"

// Standing is a snapshot of a single player's record in the tournament.
// Standings are handed to the Engine ordered by wins, most wins first.
type Standing struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Wins   int    `yaml:"wins"`
	Played int    `yaml:"played"`
}

// Player is a registered player along with their bye status.
type Player struct {
	Standing `yaml:",inline"`

	// HadBye is set once the player has been given the tournament's
	// single unearned win.
	HadBye bool `yaml:"had-bye"`
}

// Pairing is a single encounter of a round. A bye is represented by a
// player paired with themself, against the ByeMarker.
type Pairing struct {
	ID1   int
	Name1 string

	ID2   int
	Name2 string
}

func byePairing(id int, name string) Pairing {
	return Pairing{
		ID1: id, Name1: name,
		ID2: id, Name2: ByeMarker,
	}
}

// IsBye checks if the pairing gives its player a bye.
func (pairing Pairing) IsBye() bool {
	return pairing.ID1 == pairing.ID2 && pairing.Name2 == ByeMarker
}

// String returns a human-readable representation of the pairing.
func (pairing Pairing) String() string {
	if pairing.IsBye() {
		return fmt.Sprintf("%s (#%d) gets a bye", pairing.Name1, pairing.ID1)
	}

	return fmt.Sprintf(
		"%s (#%d) vs %s (#%d)",
		pairing.Name1, pairing.ID1,
		pairing.Name2, pairing.ID2,
	)
}

// History answers whether two players have already met in the tournament.
type History interface {
	HasPlayedBefore(player1, player2 int) (bool, error)
}

// Directory resolves player details and keeps track of given byes.
type Directory interface {
	NameOf(player int) (string, error)

	HasHadBye(player int) (bool, error)
	MarkByeGiven(player int) error
}
