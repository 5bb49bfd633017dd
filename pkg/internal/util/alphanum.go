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
// Package util contains small helpers shared by the swiss commands.
package util

import (
	"cmp"
	"regexp"
	"strconv"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// NaturalCompare compares two strings in natural order, so that numbers
// embedded in them are compared by value: "Player 2" < "Player 10". The
// result is usable with slices.SortFunc.
func NaturalCompare(a, b string) int {
	chunksA, chunksB := chunkify(a), chunkify(b)

	for i := range min(len(chunksA), len(chunksB)) {
		chunkA, chunkB := chunksA[i], chunksB[i]

		numA, errA := strconv.Atoi(chunkA)
		numB, errB := strconv.Atoi(chunkB)

		// numeric chunks compare by value, then by length so "02" > "2"
		if errA == nil && errB == nil {
			if c := cmp.Or(cmp.Compare(numA, numB), cmp.Compare(len(chunkA), len(chunkB))); c != 0 {
				return c
			}

			continue
		}

		if c := cmp.Compare(chunkA, chunkB); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(chunksA), len(chunksB))
}
