package main

import (
  "errors"
  "log"
  "net/http"
  "os"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  election "github.com/jicksta/village-election"
  "github.com/joho/godotenv"
)

func main() {
  if err := godotenv.Load(); err != nil {
    log.Println("No .env file found")
  }

  store := election.NewMemoryStore()
  if filename := os.Getenv("SCENARIO_FILE"); filename != "" {
    seedFromFile(store, envOr("ELECTION_ID", "village"), filename)
  }

  newRouter(store).Run() // listens on $PORT, or 0.0.0.0:8080
}

type createElectionRequest struct {
  ID         string               `json:"id"`
  Candidates []election.Candidate `json:"candidates"`
}

type ballotRequest struct {
  VoterID     string `json:"voterId"`
  CandidateID string `json:"candidateId"`
}

func newRouter(store election.ElectionStore) *gin.Engine {
  r := gin.Default()

  r.GET("/elections", func(c *gin.Context) {
    c.JSON(http.StatusOK, store.GetElections())
  })

  r.POST("/elections", func(c *gin.Context) {
    var req createElectionRequest
    if err := c.ShouldBindJSON(&req); err != nil {
      c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
      return
    }
    if req.ID == "" {
      req.ID = uuid.NewString()
    }

    registry, err := store.CreateElection(req.ID, req.Candidates)
    if err != nil {
      respondError(c, err)
      return
    }
    c.JSON(http.StatusCreated, gin.H{"id": req.ID, "candidates": registry.Candidates()})
  })

  r.DELETE("/elections/:electionID", func(c *gin.Context) {
    store.RemoveElection(c.Param("electionID"))
    c.Status(http.StatusNoContent)
  })

  r.POST("/elections/:electionID/voters", func(c *gin.Context) {
    var voter election.Voter
    if err := c.ShouldBindJSON(&voter); err != nil {
      c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
      return
    }

    registered, err := store.RegisterVoter(c.Param("electionID"), &voter)
    if err != nil {
      respondError(c, err)
      return
    }
    if !registered {
      c.JSON(http.StatusUnprocessableEntity, gin.H{"registered": false})
      return
    }
    c.JSON(http.StatusCreated, gin.H{"registered": true})
  })

  r.POST("/elections/:electionID/ballots", func(c *gin.Context) {
    var req ballotRequest
    if err := c.ShouldBindJSON(&req); err != nil {
      c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
      return
    }

    receipt, err := store.CastVote(c.Param("electionID"), req.VoterID, req.CandidateID)
    if err != nil {
      respondError(c, err)
      return
    }
    c.JSON(http.StatusCreated, receipt)
  })

  r.GET("/elections/:electionID/results", func(c *gin.Context) {
    cmp, err := election.ComparatorByName(c.Query("sort"))
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
      return
    }

    results, err := store.Results(c.Param("electionID"), cmp)
    if err != nil {
      respondError(c, err)
      return
    }
    c.JSON(http.StatusOK, results)
  })

  r.GET("/elections/:electionID/winner", func(c *gin.Context) {
    winner, err := store.Winner(c.Param("electionID"))
    if err != nil {
      respondError(c, err)
      return
    }
    if winner == nil {
      c.Status(http.StatusNoContent)
      return
    }
    c.JSON(http.StatusOK, winner)
  })

  return r
}

// respondError maps store and registry errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
  status := http.StatusInternalServerError
  switch {
  case errors.Is(err, election.ErrElectionNotFound):
    status = http.StatusNotFound
  case errors.Is(err, election.ErrElectionExists), errors.Is(err, election.ErrAlreadyVoted):
    status = http.StatusConflict
  case errors.Is(err, election.ErrWrongCandidate):
    status = http.StatusUnprocessableEntity
  case errors.Is(err, election.ErrUnauthorizedVoter):
    status = http.StatusForbidden
  }
  c.JSON(status, gin.H{"error": err.Error()})
}

// seedFromFile goes through the store rather than RegistryBuilder.Registry so every step takes the store's lock.
func seedFromFile(store election.ElectionStore, electionID, filename string) {
  f, err := os.Open(filename)
  if err != nil {
    log.Fatalf("Error: Could not open file at %s: %v", filename, err)
  }
  defer f.Close()

  builder, err := election.ReadScenario(f)
  if err != nil {
    log.Fatalf("Error: Unable to process %s: %v", filename, err)
  }

  if _, err := store.CreateElection(electionID, builder.Candidates); err != nil {
    log.Fatal(err)
  }
  for _, voter := range builder.Voters {
    if registered, _ := store.RegisterVoter(electionID, voter); !registered {
      log.Printf("seed: voter %q was not registered", voter.ID)
    }
  }
  for _, ballot := range builder.Ballots {
    if _, err := store.CastVote(electionID, ballot.VoterID, ballot.CandidateID); err != nil {
      log.Printf("seed: vote by %q for %q refused: %v", ballot.VoterID, ballot.CandidateID, err)
    }
  }
  log.Printf("seeded election %q from %s", electionID, filename)
}

func envOr(key, fallback string) string {
  if value := os.Getenv(key); value != "" {
    return value
  }
  return fallback
}
