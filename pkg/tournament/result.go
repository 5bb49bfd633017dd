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

package tournament

import (
	"fmt"

	"laptudirm.com/x/swiss/pkg/swiss"
)

// Result is the outcome of a single pairing. The winner of a bye is the
// player who received it.
type Result struct {
	Pairing swiss.Pairing
	Winner  int
}

// Loser returns the id of the player who lost the pairing.
func (result Result) Loser() (int, error) {
	switch {
	case result.Pairing.IsBye():
		return 0, fmt.Errorf("%w: %s has no loser", ErrInvalidWinner, result.Pairing)
	case result.Winner == result.Pairing.ID1:
		return result.Pairing.ID2, nil
	case result.Winner == result.Pairing.ID2:
		return result.Pairing.ID1, nil
	}

	return 0, fmt.Errorf("%w: #%d", ErrInvalidWinner, result.Winner)
}

func (result Result) String() string {
	pairing := result.Pairing
	switch {
	case pairing.IsBye():
		return fmt.Sprintf("%s gets a bye", pairing.Name1)
	case result.Winner == pairing.ID1:
		return fmt.Sprintf("%s beats %s", pairing.Name1, pairing.Name2)
	case result.Winner == pairing.ID2:
		return fmt.Sprintf("%s beats %s", pairing.Name2, pairing.Name1)
	}

	return "illegal result"
}
