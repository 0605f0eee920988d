package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies one of the adversarial minigames.
type Kind int

const (
	Go Kind = iota
	Gomoku
	Morris
)

var kindNames = map[Kind]string{
	Go:     "go",
	Gomoku: "gomoku",
	Morris: "morris",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a game name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, errors.Errorf("unknown game %q", s)
}
