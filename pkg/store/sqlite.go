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
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/swiss/pkg/swiss"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	had_bye BOOLEAN NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS matches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	winner_pid INTEGER NOT NULL,
	loser_pid INTEGER,
	CHECK (winner_pid <> loser_pid),
	FOREIGN KEY (winner_pid) REFERENCES players(id),
	FOREIGN KEY (loser_pid) REFERENCES players(id)
);

CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner_pid);
CREATE INDEX IF NOT EXISTS idx_matches_loser ON matches(loser_pid);

CREATE VIEW IF NOT EXISTS num_wins AS
	SELECT players.id, COUNT(matches.winner_pid) AS wins
	FROM players LEFT JOIN matches ON players.id = matches.winner_pid
	GROUP BY players.id;

CREATE VIEW IF NOT EXISTS num_matches_wins AS
	SELECT num_wins.id, num_wins.wins, (
		SELECT COUNT(*) FROM matches
		WHERE matches.winner_pid = num_wins.id OR matches.loser_pid = num_wins.id
	) AS matches
	FROM num_wins;
`

// SQLite is a tournament store backed by an SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the SQLite database at the given path, creating the
// tournament schema in it if necessary. The path ":memory:" opens a
// private in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// every connection to :memory: would see its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	logrus.WithField("path", path).Debug("Opened tournament database")
	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (store *SQLite) Close() error {
	return store.db.Close()
}

// RegisterPlayer adds a new player to the tournament and returns their id.
func (store *SQLite) RegisterPlayer(name string) (int, error) {
	result, err := store.db.Exec("INSERT INTO players (name) VALUES (?)", name)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	return int(id), err
}

// CountPlayers returns the number of registered players.
func (store *SQLite) CountPlayers() (int, error) {
	var count int
	err := store.db.QueryRow("SELECT COUNT(*) FROM players").Scan(&count)
	return count, err
}

// DeleteMatches removes every match result and clears every player's bye.
func (store *SQLite) DeleteMatches() error {
	tx, err := store.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		return err
	}

	if _, err := tx.Exec("UPDATE players SET had_bye = 0"); err != nil {
		return err
	}

	return tx.Commit()
}

// DeletePlayers removes every player and their match results.
func (store *SQLite) DeletePlayers() error {
	tx, err := store.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		return err
	}

	return tx.Commit()
}

// Players returns every registered player, ordered by id.
func (store *SQLite) Players() ([]swiss.Player, error) {
	rows, err := store.db.Query(`
		SELECT players.id, players.name, num_matches_wins.wins,
		       num_matches_wins.matches, players.had_bye
		FROM players JOIN num_matches_wins ON players.id = num_matches_wins.id
		ORDER BY players.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []swiss.Player
	for rows.Next() {
		var player swiss.Player
		if err := rows.Scan(
			&player.ID, &player.Name, &player.Wins,
			&player.Played, &player.HadBye,
		); err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	return players, rows.Err()
}

// Standings returns the players and their records, most wins first.
func (store *SQLite) Standings() ([]swiss.Standing, error) {
	rows, err := store.db.Query(`
		SELECT players.id, players.name, num_matches_wins.wins, num_matches_wins.matches
		FROM players JOIN num_matches_wins ON players.id = num_matches_wins.id
		ORDER BY num_matches_wins.wins DESC, players.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []swiss.Standing
	for rows.Next() {
		var standing swiss.Standing
		if err := rows.Scan(&standing.ID, &standing.Name, &standing.Wins, &standing.Played); err != nil {
			return nil, err
		}

		standings = append(standings, standing)
	}

	return standings, rows.Err()
}

// Matches returns every recorded match, in the order they were recorded.
func (store *SQLite) Matches() ([]Match, error) {
	rows, err := store.db.Query("SELECT winner_pid, loser_pid FROM matches ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var (
			match Match
			loser sql.NullInt64
		)

		if err := rows.Scan(&match.Winner, &loser); err != nil {
			return nil, err
		}

		if loser.Valid {
			id := int(loser.Int64)
			match.Loser = &id
		}

		matches = append(matches, match)
	}

	return matches, rows.Err()
}

// RecordMatch records that the winner beat the loser.
func (store *SQLite) RecordMatch(winner, loser int) error {
	if winner == loser {
		return fmt.Errorf("%w: #%d", ErrSelfMatch, winner)
	}

	for _, player := range []int{winner, loser} {
		if err := store.exists(player); err != nil {
			return err
		}
	}

	_, err := store.db.Exec("INSERT INTO matches (winner_pid, loser_pid) VALUES (?, ?)", winner, loser)
	return err
}

// RecordBye records the given player's bye as a win without a loser.
func (store *SQLite) RecordBye(player int) error {
	if err := store.exists(player); err != nil {
		return err
	}

	tx, err := store.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var byes int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM matches WHERE winner_pid = ? AND loser_pid IS NULL", player,
	).Scan(&byes); err != nil {
		return err
	}

	if byes > 0 {
		return fmt.Errorf("%w: #%d", ErrByeAlreadyGiven, player)
	}

	if _, err := tx.Exec("UPDATE players SET had_bye = 1 WHERE id = ?", player); err != nil {
		return err
	}

	if _, err := tx.Exec("INSERT INTO matches (winner_pid, loser_pid) VALUES (?, NULL)", player); err != nil {
		return err
	}

	return tx.Commit()
}

// HasPlayedBefore checks if the two players have met in a match.
func (store *SQLite) HasPlayedBefore(player1, player2 int) (bool, error) {
	var played bool
	err := store.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM matches
			WHERE winner_pid = ? AND loser_pid = ?
			   OR winner_pid = ? AND loser_pid = ?
		)`, player1, player2, player2, player1).Scan(&played)
	return played, err
}

// NameOf returns the name of the given player.
func (store *SQLite) NameOf(player int) (string, error) {
	var name string
	err := store.db.QueryRow("SELECT name FROM players WHERE id = ?", player).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: #%d", ErrUnknownPlayer, player)
	}

	return name, err
}

// HasHadBye checks if the given player has been given a bye.
func (store *SQLite) HasHadBye(player int) (bool, error) {
	var hadBye bool
	err := store.db.QueryRow("SELECT had_bye FROM players WHERE id = ?", player).Scan(&hadBye)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("%w: #%d", ErrUnknownPlayer, player)
	}

	return hadBye, err
}

// MarkByeGiven marks the given player as having had their bye.
func (store *SQLite) MarkByeGiven(player int) error {
	result, err := store.db.Exec("UPDATE players SET had_bye = 1 WHERE id = ?", player)
	if err != nil {
		return err
	}

	if affected, err := result.RowsAffected(); err != nil {
		return err
	} else if affected == 0 {
		return fmt.Errorf("%w: #%d", ErrUnknownPlayer, player)
	}

	return nil
}

func (store *SQLite) exists(player int) error {
	var found bool
	if err := store.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", player,
	).Scan(&found); err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("%w: #%d", ErrUnknownPlayer, player)
	}

	return nil
}
