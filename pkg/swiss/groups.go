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
	"slices"

	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"
)

// Groups is the ordered sequence of win groups of a single round. Group 0
// holds the players with the fewest wins and the last group holds those
// with the most. A Groups value belongs to one pairing computation and is
// mutated in place by it.
type Groups struct {
	buckets [][]int
}

// BuildGroups sorts the given players into groups by their exact number of
// wins. There is a group for every win count from zero up to the maximum,
// so some of them may be empty. Players keep their standings order within
// their group.
func BuildGroups(standings []Standing) *Groups {
	if len(standings) == 0 {
		return &Groups{}
	}

	top := pie.Max(pie.Map(standings, func(standing Standing) int {
		return standing.Wins
	}))

	buckets := make([][]int, top+1)
	for _, standing := range standings {
		buckets[standing.Wins] = append(buckets[standing.Wins], standing.ID)
	}

	return &Groups{buckets: buckets}
}

// NewGroups creates a Groups from the given buckets, lowest wins first.
func NewGroups(buckets ...[]int) *Groups {
	groups := &Groups{buckets: make([][]int, len(buckets))}
	for i, bucket := range buckets {
		groups.buckets[i] = slices.Clone(bucket)
	}

	return groups
}

// Len returns the number of groups.
func (groups *Groups) Len() int {
	return len(groups.buckets)
}

// Buckets returns a copy of the groups' player ids.
func (groups *Groups) Buckets() [][]int {
	buckets := make([][]int, len(groups.buckets))
	for i, bucket := range groups.buckets {
		buckets[i] = slices.Clone(bucket)
	}

	return buckets
}

// Decided checks if a single player is alone in the top group, in which case
// they have won the tournament outright.
func (groups *Groups) Decided() (int, bool) {
	if len(groups.buckets) == 0 {
		return 0, false
	}

	top := groups.buckets[len(groups.buckets)-1]
	if len(top) != 1 {
		return 0, false
	}

	return top[0], true
}

// Remove takes the given player out of their group, dropping the group if
// it ends up empty. It reports whether the player was found.
func (groups *Groups) Remove(player int) bool {
	for i, bucket := range groups.buckets {
		if j := slices.Index(bucket, player); j != -1 {
			groups.buckets[i] = slices.Delete(bucket, j, j+1)
			groups.compact()
			return true
		}
	}

	return false
}

// compact drops all the empty groups.
func (groups *Groups) compact() {
	groups.buckets = slices.DeleteFunc(groups.buckets, func(bucket []int) bool {
		return len(bucket) == 0
	})
}

// Balance makes every group even sized by moving, from the lowest group
// upwards, one player from the next higher group into each odd group.
func (groups *Groups) Balance() error {
	groups.compact()

	for i := 0; i < len(groups.buckets); i++ {
		if len(groups.buckets[i])%2 == 0 {
			continue
		}

		if err := groups.borrow(i); err != nil {
			return err
		}
	}

	return nil
}

// Repair grows a group that could not be matched without rematches by
// moving two players into it from the next higher group.
func (groups *Groups) Repair(group int) error {
	if group+2 > len(groups.buckets) {
		return fmt.Errorf("%w: group %d is the top group", ErrUnresolvablePairing, group)
	}

	for n := 0; n < 2; n++ {
		if err := groups.borrow(group); err != nil {
			return fmt.Errorf("%w: %w", ErrUnresolvablePairing, err)
		}
	}

	return nil
}

// borrow moves the first player of group i+1 to the end of group i. Group
// i+1 is removed if it is emptied by the move.
func (groups *Groups) borrow(i int) error {
	if i+1 >= len(groups.buckets) {
		return fmt.Errorf("%w: group %d has odd size %d", ErrNoBucketToBorrow, i, len(groups.buckets[i]))
	}

	donor := groups.buckets[i+1]
	player := donor[0]

	groups.buckets[i] = append(groups.buckets[i], player)
	groups.buckets[i+1] = donor[1:]

	logrus.WithFields(logrus.Fields{
		"player": player,
		"from":   i + 1,
		"to":     i,
	}).Trace("Moved player down a win group")

	if len(groups.buckets[i+1]) == 0 {
		groups.buckets = slices.Delete(groups.buckets, i+1, i+2)
	}

	return nil
}
