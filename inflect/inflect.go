// Copyright 2026 The Rested Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package inflect

import (
	"errors"
	"fmt"

	"github.com/jinzhu/inflection"
)

// ErrBadWord indicates that a word cannot be inflected because it is empty
// or is not a plain identifier.
var ErrBadWord = errors.New("inflect: not an inflectable word")

// Singularize returns the singular form of a plural resource name.
//
// Uncountable words ("fish", "equipment") come back unchanged; that is not
// an error. An error is returned only for input that is not a word at all,
// which callers treat as a fatal configuration mistake.
//
// Example:
//
//	singular, err := inflect.Singularize("users") // "user", nil
func Singularize(word string) (string, error) {
	if err := checkWord(word); err != nil {
		return "", err
	}
	return inflection.Singular(word), nil
}

// Pluralize returns the plural form of a singular resource name.
//
// Example:
//
//	plural, err := inflect.Pluralize("person") // "people", nil
func Pluralize(word string) (string, error) {
	if err := checkWord(word); err != nil {
		return "", err
	}
	return inflection.Plural(word), nil
}

// checkWord rejects input that cannot name a resource: empty strings and
// anything outside [a-z0-9_-] (path segments are lowercase identifiers).
func checkWord(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty string", ErrBadWord)
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-' {
			continue
		}
		return fmt.Errorf("%w: %q", ErrBadWord, word)
	}
	return nil
}
