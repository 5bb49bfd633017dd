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

package store_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/swiss/pkg/store"
	"laptudirm.com/x/swiss/pkg/swiss"
)

// backend is the set of operations both stores provide.
type backend interface {
	swiss.History
	swiss.Directory

	RegisterPlayer(name string) (int, error)
	CountPlayers() (int, error)
	DeletePlayers() error
	DeleteMatches() error
	Players() ([]swiss.Player, error)
	Standings() ([]swiss.Standing, error)
	Matches() ([]store.Match, error)
	RecordMatch(winner, loser int) error
	RecordBye(player int) error
}

var backends = map[string]func(t *testing.T) backend{
	"memory": func(t *testing.T) backend {
		return store.NewMemory()
	},
	"sqlite": func(t *testing.T) backend {
		db, err := store.OpenSQLite(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		return db
	},
}

func eachBackend(t *testing.T, test func(t *testing.T, db backend)) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			test(t, open(t))
		})
	}
}

func register(t *testing.T, db backend, names ...string) []int {
	t.Helper()

	ids := make([]int, len(names))
	for i, name := range names {
		id, err := db.RegisterPlayer(name)
		require.NoError(t, err)
		ids[i] = id
	}

	return ids
}

func TestStore_RegisterAndCount(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		count, err := db.CountPlayers()
		require.NoError(t, err)
		assert.Zero(t, count)

		ids := register(t, db, "Markov", "Hilbert", "Noether")
		assert.Len(t, ids, 3)
		assert.NotEqual(t, ids[0], ids[1])
		assert.NotEqual(t, ids[1], ids[2])

		count, err = db.CountPlayers()
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		name, err := db.NameOf(ids[1])
		require.NoError(t, err)
		assert.Equal(t, "Hilbert", name)
	})
}

func TestStore_NewPlayersHaveNoRecord(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "Markov", "Hilbert")

		standings, err := db.Standings()
		require.NoError(t, err)
		assert.Equal(t, []swiss.Standing{
			{ID: ids[0], Name: "Markov"},
			{ID: ids[1], Name: "Hilbert"},
		}, standings)
	})
}

func TestStore_Standings(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B", "C", "D")
		require.NoError(t, db.RecordMatch(ids[2], ids[0]))
		require.NoError(t, db.RecordMatch(ids[3], ids[1]))
		require.NoError(t, db.RecordMatch(ids[3], ids[2]))
		require.NoError(t, db.RecordMatch(ids[1], ids[0]))

		standings, err := db.Standings()
		require.NoError(t, err)
		assert.Equal(t, []swiss.Standing{
			{ID: ids[3], Name: "D", Wins: 2, Played: 2},
			{ID: ids[1], Name: "B", Wins: 1, Played: 2},
			{ID: ids[2], Name: "C", Wins: 1, Played: 2},
			{ID: ids[0], Name: "A", Wins: 0, Played: 2},
		}, standings)
	})
}

func TestStore_HasPlayedBefore(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B", "C")
		require.NoError(t, db.RecordMatch(ids[0], ids[1]))

		tests := []struct {
			name     string
			a, b     int
			expected bool
		}{
			{"winner_first", ids[0], ids[1], true},
			{"loser_first", ids[1], ids[0], true},
			{"never_met", ids[0], ids[2], false},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				played, err := db.HasPlayedBefore(test.a, test.b)
				require.NoError(t, err)
				assert.Equal(t, test.expected, played)
			})
		}
	})
}

func TestStore_RecordMatchErrors(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B")

		assert.ErrorIs(t, db.RecordMatch(ids[0], ids[0]), store.ErrSelfMatch)
		assert.ErrorIs(t, db.RecordMatch(ids[0], 999), store.ErrUnknownPlayer)
		assert.ErrorIs(t, db.RecordMatch(999, ids[1]), store.ErrUnknownPlayer)

		matches, err := db.Matches()
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestStore_RecordBye(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B", "C")

		require.NoError(t, db.RecordBye(ids[2]))

		hadBye, err := db.HasHadBye(ids[2])
		require.NoError(t, err)
		assert.True(t, hadBye)

		standings, err := db.Standings()
		require.NoError(t, err)
		assert.Equal(t, swiss.Standing{ID: ids[2], Name: "C", Wins: 1, Played: 1}, standings[0])

		matches, err := db.Matches()
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.True(t, matches[0].IsBye())
		assert.Equal(t, ids[2], matches[0].Winner)

		assert.ErrorIs(t, db.RecordBye(ids[2]), store.ErrByeAlreadyGiven)
		assert.ErrorIs(t, db.RecordBye(999), store.ErrUnknownPlayer)
	})
}

func TestStore_RecordByeAfterMark(t *testing.T) {
	// the engine marks a bye while pairing, before its result is reported
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B", "C")

		require.NoError(t, db.MarkByeGiven(ids[0]))
		require.NoError(t, db.RecordBye(ids[0]))

		hadBye, err := db.HasHadBye(ids[0])
		require.NoError(t, err)
		assert.True(t, hadBye)
	})
}

func TestStore_ByeIsNotAMeeting(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B")
		require.NoError(t, db.RecordBye(ids[0]))

		played, err := db.HasPlayedBefore(ids[0], ids[1])
		require.NoError(t, err)
		assert.False(t, played)
	})
}

func TestStore_UnknownPlayer(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		_, err := db.NameOf(42)
		assert.ErrorIs(t, err, store.ErrUnknownPlayer)

		_, err = db.HasHadBye(42)
		assert.ErrorIs(t, err, store.ErrUnknownPlayer)

		assert.ErrorIs(t, db.MarkByeGiven(42), store.ErrUnknownPlayer)
	})
}

func TestStore_DeleteMatches(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B", "C")
		require.NoError(t, db.RecordMatch(ids[0], ids[1]))
		require.NoError(t, db.RecordBye(ids[2]))

		require.NoError(t, db.DeleteMatches())

		matches, err := db.Matches()
		require.NoError(t, err)
		assert.Empty(t, matches)

		players, err := db.Players()
		require.NoError(t, err)
		require.Len(t, players, 3)
		for _, player := range players {
			assert.Zero(t, player.Wins)
			assert.Zero(t, player.Played)
			assert.False(t, player.HadBye)
		}
	})
}

func TestStore_DeletePlayers(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B")
		require.NoError(t, db.RecordMatch(ids[0], ids[1]))

		require.NoError(t, db.DeletePlayers())

		count, err := db.CountPlayers()
		require.NoError(t, err)
		assert.Zero(t, count)

		matches, err := db.Matches()
		require.NoError(t, err)
		assert.Empty(t, matches)

		fresh := register(t, db, "C")
		assert.NotContains(t, ids, fresh[0])
	})
}

func TestStore_Players(t *testing.T) {
	eachBackend(t, func(t *testing.T, db backend) {
		ids := register(t, db, "A", "B", "C")
		require.NoError(t, db.RecordMatch(ids[1], ids[0]))
		require.NoError(t, db.RecordBye(ids[2]))

		players, err := db.Players()
		require.NoError(t, err)
		assert.Equal(t, []swiss.Player{
			{Standing: swiss.Standing{ID: ids[0], Name: "A", Wins: 0, Played: 1}},
			{Standing: swiss.Standing{ID: ids[1], Name: "B", Wins: 1, Played: 1}},
			{Standing: swiss.Standing{ID: ids[2], Name: "C", Wins: 1, Played: 1}, HadBye: true},
		}, players)
	})
}

func TestMemory_DumpAndLoad(t *testing.T) {
	db := store.NewMemory()
	ids := register(t, db, "A", "B", "C")
	require.NoError(t, db.RecordMatch(ids[0], ids[1]))
	require.NoError(t, db.RecordBye(ids[2]))

	var buffer bytes.Buffer
	require.NoError(t, db.Dump(&buffer))

	loaded, err := store.LoadMemory(&buffer)
	require.NoError(t, err)

	want, err := db.Players()
	require.NoError(t, err)
	got, err := loaded.Players()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	wantMatches, err := db.Matches()
	require.NoError(t, err)
	gotMatches, err := loaded.Matches()
	require.NoError(t, err)
	assert.Equal(t, wantMatches, gotMatches)

	id, err := loaded.RegisterPlayer("D")
	require.NoError(t, err)
	assert.NotContains(t, ids, id)
}

func TestLoadMemory_Invalid(t *testing.T) {
	_, err := store.LoadMemory(bytes.NewBufferString("players: [[["))
	assert.Error(t, err)
}
