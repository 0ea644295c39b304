package main

import (
  "log"
  "os"

  election "github.com/jicksta/village-election"
)

func scenarioFromFile(filename string) *election.RegistryBuilder {
  f, err := os.Open(filename)
  if err != nil {
    log.Fatal("Error: Could not open file at " + filename)
  }
  defer f.Close()

  builder, err := election.ReadScenario(f)
  if err != nil {
    log.Fatalf("Error: Unable to process %s: %v", filename, err)
  }
  return builder
}
