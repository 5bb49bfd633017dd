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
package swiss

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"
)

// DefaultMaxRepairs is the number of win group repairs an Engine attempts
// by default before giving up on a round.
const DefaultMaxRepairs = 64

// Config configures an Engine.
type Config struct {
	// Maximum number of times the win groups are repaired in a round.
	MaxRepairs int

	// Source of randomness for the first round. A time seeded source
	// is used if it is nil.
	Rand *rand.Rand
}

// Engine computes the pairings of a tournament's rounds.
type Engine struct {
	history   History
	directory Directory

	config Config
}

// New creates a new pairing Engine which looks up the match history and the
// player details from the given sources.
func New(history History, directory Directory, config Config) *Engine {
	if config.MaxRepairs <= 0 {
		config.MaxRepairs = DefaultMaxRepairs
	}

	if config.Rand == nil {
		config.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		history:   history,
		directory: directory,
		config:    config,
	}
}

// round is the state of a single pairing computation.
type round struct {
	groups *Groups

	history   History
	directory Directory
}

// Pair computes the pairings of the next round from the given standings,
// which must be ordered by wins, most wins first. Either the complete list
// of pairings is returned, with the bye first if there is one, or an error.
func (engine *Engine) Pair(standings []Standing) ([]Pairing, error) {
	played := pie.Map(standings, func(standing Standing) int {
		return standing.Played
	})

	if pie.Sum(played) == 0 {
		logrus.WithField("players", len(standings)).Debug("Pairing the first round randomly")
		return engine.finish(FirstRound(standings, engine.config.Rand))
	}

	if least, most := pie.Min(played), pie.Max(played); least != most {
		return nil, fmt.Errorf("%w: players have played between %d and %d matches", ErrIncompleteRound, least, most)
	}

	current := round{
		groups:    BuildGroups(standings),
		history:   newPlayedCache(engine.history),
		directory: engine.directory,
	}

	if winner, decided := current.groups.Decided(); decided {
		return nil, fmt.Errorf("%w: player #%d has the most wins", ErrTournamentDecided, winner)
	}

	var pairings []Pairing
	if len(standings)%2 != 0 {
		bye, err := engine.bye(standings, current.groups)
		if err != nil {
			return nil, err
		}

		pairings = append(pairings, bye)
	}

	if err := current.groups.Balance(); err != nil {
		return nil, err
	}

	for repairs := 0; ; repairs++ {
		result, err := current.resolve()
		if err != nil {
			return nil, err
		}

		if result.ok() {
			pairings = append(pairings, result.pairings...)
			break
		}

		if repairs == engine.config.MaxRepairs {
			return nil, fmt.Errorf("%w: gave up after %d repairs", ErrUnresolvablePairing, repairs)
		}

		logrus.WithFields(logrus.Fields{
			"group":  result.failed,
			"repair": repairs + 1,
		}).Debug("Repairing win group")

		if err := current.groups.Repair(result.failed); err != nil {
			return nil, err
		}
	}

	return engine.finish(pairings)
}

// bye selects the player who gets a bye and takes them out of their group.
func (engine *Engine) bye(standings []Standing, groups *Groups) (Pairing, error) {
	player, err := SelectBye(standings, engine.directory)
	if err != nil {
		return Pairing{}, err
	}

	name, err := engine.directory.NameOf(player)
	if err != nil {
		return Pairing{}, err
	}

	groups.Remove(player)

	logrus.WithFields(logrus.Fields{
		"player": player,
		"name":   name,
	}).Debug("Selected player for bye")

	return byePairing(player, name), nil
}

// finish records the byes of a completely paired round with the Directory.
func (engine *Engine) finish(pairings []Pairing) ([]Pairing, error) {
	for _, pairing := range pairings {
		if !pairing.IsBye() {
			continue
		}

		if err := engine.directory.MarkByeGiven(pairing.ID1); err != nil {
			return nil, fmt.Errorf("mark bye of player #%d: %w", pairing.ID1, err)
		}
	}

	return pairings, nil
}
