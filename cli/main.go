package main

import (
  "errors"
  "flag"
  "fmt"
  "log"
  "os"
  "time"

  election "github.com/jicksta/village-election"
  "github.com/jicksta/village-election/report"
)

func main() {
  sortOrder := flag.String("sort", "votes", `result order: "votes", "name" or "party", prefix with "-" to reverse`)
  flag.Usage = func() {
    fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-sort order] <scenario file>\n", os.Args[0])
    flag.PrintDefaults()
  }
  flag.Parse()

  if flag.NArg() != 1 {
    flag.Usage()
    os.Exit(2)
  }

  cmp, err := election.ComparatorByName(*sortOrder)
  if err != nil {
    log.Fatal(err)
  }

  startTime := time.Now()
  builder := scenarioFromFile(flag.Arg(0))
  registry, rejected := builder.Registry()
  results := registry.Results(cmp)
  executionDuration := time.Since(startTime)

  fmt.Print("Results:\n\n")
  report.NewResultsReport(results).PrintResultsTable(os.Stdout)
  fmt.Println()
  report.PrintWinner(os.Stdout, registry.Winner())

  fmt.Printf(`
Number of candidates:  %d
Registered voters:     %d
Ballots cast:          %d
Time to calculate:     %s
`,
    len(registry.Candidates()),
    registry.VoterCount(),
    registry.BallotCount(),
    executionDuration)

  if rejected != nil {
    fmt.Print("\nRejected:\n\n")
    printRejections(rejected)
  }
}

// printRejections lists each step the builder refused, one per line.
func printRejections(err error) {
  var joined interface{ Unwrap() []error }
  if errors.As(err, &joined) {
    for _, each := range joined.Unwrap() {
      fmt.Printf(" - %s\n", each)
    }
    return
  }
  fmt.Printf(" - %s\n", err)
}
