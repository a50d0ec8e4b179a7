// SPDX-License-Identifier: MIT

package mcm

import (
	"strconv"
	"strings"
)

// dimSeparator splits dimension text into tokens.
const dimSeparator = ","

// ParseDimensions reads a comma-separated list such as "30, 35, 15, 5".
//
// Rules:
//   - surrounding whitespace of the whole text and of every token is ignored;
//   - blank text ⇒ ErrEmptyInput;
//   - every token must be a base-10 integer (an optional sign is accepted by
//     the grammar, the sign is then judged by Validate) ⇒ ErrNotInteger;
//   - the parsed list must satisfy Dimensions.Validate.
//
// All failures are *InvalidInputError. No partial result is returned.
// Complexity: O(len(text)).
func ParseDimensions(text string) (Dimensions, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, inputError(ErrEmptyInput)
	}

	tokens := strings.Split(text, dimSeparator)
	dims := make(Dimensions, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, itemError(i, tok, ErrNotInteger)
		}
		dims = append(dims, v)
	}

	if err := dims.Validate(); err != nil {
		return nil, err
	}

	return dims, nil
}
