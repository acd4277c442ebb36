package cli

import (
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parameter keys accepted by commands.
const (
	keyID        = "Id"
	keyFirstName = "FirstName"
	keyLastName  = "LastName"
	keySalary    = "Salary"
)

var knownKeys = []string{keyID, keyFirstName, keyLastName, keySalary}

// params maps parameter keys to their raw values.
type params map[string]string

// parseParams parses "Key:Value" tokens. Keys must be known, each token needs
// exactly one colon with text on both sides, and keys may not repeat.
func parseParams(tokens []string) (params, error) {
	p := make(params, len(tokens))
	for _, token := range tokens {
		key, value, _ := strings.Cut(token, ":")
		if !slices.Contains(knownKeys, key) {
			return nil, unknownParameter(token)
		}
		if value == "" || strings.Contains(value, ":") {
			return nil, parameterFormat(token)
		}
		if _, ok := p[key]; ok {
			return nil, duplicateParameter(key)
		}
		p[key] = value
	}
	return p, nil
}

// require checks that every key is present.
func (p params) require(keys ...string) error {
	for _, key := range keys {
		if _, ok := p[key]; !ok {
			return missingParameter(key)
		}
	}
	return nil
}

func (p params) id() (int, error) {
	v, ok := p[keyID]
	if !ok {
		return 0, missingParameter(keyID)
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, parameterFormat(keyID)
	}
	return id, nil
}

// salary parses the salary as a decimal with '.' as separator.
func (p params) salary() (decimal.Decimal, bool, error) {
	v, ok := p[keySalary]
	if !ok {
		return decimal.Decimal{}, false, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, true, parameterFormat(keySalary)
	}
	return d, true, nil
}
