package cmd

import (
	"fmt"
	"strconv"
)

// parsedArgs is the outcome of argument parsing: either a concrete
// (user, repo, count) triple or the help sentinel.
type parsedArgs struct {
	Help  bool
	User  string
	Repo  string
	Count int
}

// parseArgs interprets positional arguments. An explicit help flag wins
// over positionals; anything other than two or three positionals also
// falls back to help. A third positional must parse as an integer.
func parseArgs(args []string, defaultCount int) (parsedArgs, error) {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return parsedArgs{Help: true}, nil
		}
	}

	switch len(args) {
	case 2:
		return parsedArgs{User: args[0], Repo: args[1], Count: defaultCount}, nil
	case 3:
		count, err := strconv.Atoi(args[2])
		if err != nil {
			return parsedArgs{}, fmt.Errorf("invalid count %q: %w", args[2], err)
		}
		return parsedArgs{User: args[0], Repo: args[1], Count: count}, nil
	default:
		return parsedArgs{Help: true}, nil
	}
}
