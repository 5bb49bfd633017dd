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

package tournament_test

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/swiss/pkg/store"
	"laptudirm.com/x/swiss/pkg/swiss"
	"laptudirm.com/x/swiss/pkg/tournament"
)

func newTournament(t *testing.T, players int, seed int64) (*tournament.Tournament, *store.Memory) {
	t.Helper()

	db := store.NewMemory()
	for i := 1; i <= players; i++ {
		_, err := db.RegisterPlayer(fmt.Sprintf("Player %d", i))
		require.NoError(t, err)
	}

	return tournament.New(db, swiss.Config{Rand: rand.New(rand.NewSource(seed))}), db
}

func TestTournament_NextRoundAndReport(t *testing.T) {
	tour, db := newTournament(t, 4, 1)

	pairings, err := tour.NextRound()
	require.NoError(t, err)
	require.Len(t, pairings, 2)
	assert.Equal(t, 1, tour.Round)

	results := []tournament.Result{
		{Pairing: pairings[0], Winner: pairings[0].ID1},
		{Pairing: pairings[1], Winner: pairings[1].ID2},
	}
	require.NoError(t, tour.Report(results))

	standings, err := db.Standings()
	require.NoError(t, err)
	assert.Equal(t, 1, standings[0].Wins)
	assert.Equal(t, 1, standings[1].Wins)
	assert.Equal(t, 0, standings[2].Wins)
	assert.Equal(t, 0, standings[3].Wins)

	pairings, err = tour.NextRound()
	require.NoError(t, err)
	require.Len(t, pairings, 2)

	for _, pairing := range pairings {
		played, err := db.HasPlayedBefore(pairing.ID1, pairing.ID2)
		require.NoError(t, err)
		assert.False(t, played, "rematch %s", pairing)
	}
}

func TestTournament_ReportInvalidWinner(t *testing.T) {
	tour, _ := newTournament(t, 3, 1)

	pairings, err := tour.NextRound()
	require.NoError(t, err)
	require.Len(t, pairings, 2)

	var bye, match swiss.Pairing
	for _, pairing := range pairings {
		if pairing.IsBye() {
			bye = pairing
		} else {
			match = pairing
		}
	}

	tests := []struct {
		name   string
		result tournament.Result
	}{
		{"stranger_wins_match", tournament.Result{Pairing: match, Winner: 999}},
		{"stranger_wins_bye", tournament.Result{Pairing: bye, Winner: match.ID1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := tour.Report([]tournament.Result{test.result})
			assert.ErrorIs(t, err, tournament.ErrInvalidWinner)
		})
	}
}

func TestTournament_ReportByeTwice(t *testing.T) {
	tour, _ := newTournament(t, 3, 1)

	pairings, err := tour.NextRound()
	require.NoError(t, err)

	bye := pairings[0]
	require.True(t, bye.IsBye())

	result := tournament.Result{Pairing: bye, Winner: bye.ID1}
	require.NoError(t, tour.Report([]tournament.Result{result}))
	assert.ErrorIs(t, tour.Report([]tournament.Result{result}), store.ErrByeAlreadyGiven)
}

func TestTournament_Table(t *testing.T) {
	tour, db := newTournament(t, 2, 1)
	require.NoError(t, db.RecordMatch(2, 1))

	var buffer bytes.Buffer
	require.NoError(t, tour.Table(&buffer))

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "║  1. Player 2               +0     0     1    0      1 ║", lines[3])
	assert.Equal(t, "║  2. Player 1               +0     0     0    1      1 ║", lines[4])

	for _, line := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)), line)
	}
}

func TestResult_Loser(t *testing.T) {
	match := swiss.Pairing{ID1: 1, Name1: "A", ID2: 2, Name2: "B"}
	bye := swiss.Pairing{ID1: 3, Name1: "C", ID2: 3, Name2: swiss.ByeMarker}

	tests := []struct {
		name     string
		result   tournament.Result
		loser    int
		expected string
		err      error
	}{
		{"first_wins", tournament.Result{Pairing: match, Winner: 1}, 2, "A beats B", nil},
		{"second_wins", tournament.Result{Pairing: match, Winner: 2}, 1, "B beats A", nil},
		{"stranger", tournament.Result{Pairing: match, Winner: 5}, 0, "illegal result", tournament.ErrInvalidWinner},
		{"bye", tournament.Result{Pairing: bye, Winner: 3}, 0, "C gets a bye", tournament.ErrInvalidWinner},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			loser, err := test.result.Loser()
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.loser, loser)
			}

			assert.Equal(t, test.expected, test.result.String())
		})
	}
}

// TestTournament_Simulate plays whole tournaments with random results and
// checks the pairing guarantees hold in every round.
func TestTournament_Simulate(t *testing.T) {
	for _, players := range []int{2, 5, 8, 9, 16} {
		for seed := int64(1); seed <= 20; seed++ {
			t.Run(fmt.Sprintf("players=%d/seed=%d", players, seed), func(t *testing.T) {
				tour, db := newTournament(t, players, seed)

				summary, err := tour.Simulate(20, rand.New(rand.NewSource(seed)))
				if err != nil {
					require.True(t,
						errors.Is(err, swiss.ErrUnresolvablePairing) || errors.Is(err, swiss.ErrNoByeCandidate),
						"unexpected error: %v", err)
				}

				require.NotEmpty(t, summary.Rounds)

				met := make(map[[2]int]bool)
				byes := make(map[int]int)
				for round, pairings := range summary.Rounds {
					seen := make(map[int]bool)
					for _, pairing := range pairings {
						assert.False(t, seen[pairing.ID1], "round %d: #%d paired twice", round+1, pairing.ID1)
						seen[pairing.ID1] = true

						if pairing.IsBye() {
							byes[pairing.ID1]++
							continue
						}

						assert.False(t, seen[pairing.ID2], "round %d: #%d paired twice", round+1, pairing.ID2)
						seen[pairing.ID2] = true

						key := [2]int{min(pairing.ID1, pairing.ID2), max(pairing.ID1, pairing.ID2)}
						assert.False(t, met[key], "round %d: rematch %s", round+1, pairing)
						met[key] = true
					}

					assert.Len(t, seen, players, "round %d does not cover every player", round+1)
				}

				for player, count := range byes {
					assert.Equal(t, 1, count, "player #%d had %d byes", player, count)
				}

				if summary.Winner != 0 {
					standings, err := db.Standings()
					require.NoError(t, err)
					assert.Equal(t, summary.Winner, standings[0].ID)
					assert.Greater(t, standings[0].Wins, standings[1].Wins)
				}
			})
		}
	}
}

func TestTournament_SimulateRoundLimit(t *testing.T) {
	tour, _ := newTournament(t, 16, 3)

	summary, err := tour.Simulate(1, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Len(t, summary.Rounds, 1)
	assert.Zero(t, summary.Winner)
	assert.Equal(t, 1, tour.Round)
}
