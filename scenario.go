package election

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceSeparator = regexp.MustCompile(`\s+`)

// ReadScenario deserializes a polling-day scenario from a Reader. Each line holds one directive:
//
//	candidate <id> <name> <party>
//	voter     <id> <name> <age>
//	vote      <voterID> <candidateID>
//
// Blank lines and lines starting with # are skipped. Names cannot contain whitespace; use underscores instead.
// Directives are queued on the returned builder in file order. Votes are cast only after every voter in the file
// has been registered.
func ReadScenario(reader io.Reader) (*RegistryBuilder, error) {
	builder := NewRegistryBuilder()
	scanner := bufio.NewScanner(reader)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := whitespaceSeparator.Split(line, -1)
		directive, args := tokens[0], tokens[1:]

		switch directive {
		case "candidate":
			if len(args) != 3 {
				return nil, fmt.Errorf("line %d: candidate needs <id> <name> <party>", lineNumber)
			}
			builder.Candidate(args[0], args[1], args[2])
		case "voter":
			if len(args) != 3 {
				return nil, fmt.Errorf("line %d: voter needs <id> <name> <age>", lineNumber)
			}
			age, err := strconv.Atoi(args[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad age %q: %w", lineNumber, args[2], err)
			}
			builder.Voter(args[0], args[1], age)
		case "vote":
			if len(args) != 2 {
				return nil, fmt.Errorf("line %d: vote needs <voterID> <candidateID>", lineNumber)
			}
			builder.Vote(args[0], args[1])
		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", lineNumber, directive)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return builder, nil
}
