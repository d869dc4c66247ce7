package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/models"
)

// claimOnce is a goroutine-safe claim call: unlike the PullAgent helpers it
// reports failures as errors instead of failing the test from a non-test
// goroutine. An empty pool returns ("", nil).
func claimOnce(baseURL, agentID string) (string, error) {
	payload, err := json.Marshal(models.ClaimRequest{AgentID: agentID})
	if err != nil {
		return "", err
	}
	resp, err := http.Post(baseURL+"/api/v1/agent/claim", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claim returned %d", resp.StatusCode)
	}
	var out models.ClaimResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Ticket == nil {
		return "", nil
	}
	return out.Ticket.ID, nil
}

// TestE2E_ConcurrentClaimsAreExclusive hammers the claim endpoint from
// competing agents and checks the row locking holds: every ticket is handed
// out exactly once, none twice, none lost.
func TestE2E_ConcurrentClaimsAreExclusive(t *testing.T) {
	app := NewTestApp(t)

	app.CreateProject(t, "proj-payments")
	created := make(map[string]bool)
	for i := 1; i <= 8; i++ {
		id := app.CreateTicket(t, models.CreateTicketRequest{
			TicketID:  fmt.Sprintf("PAY-60%d", i),
			ProjectID: "proj-payments",
			BuildID:   "build-herd",
			Title:     fmt.Sprintf("Herd ticket %d", i),
		})
		created[id] = true
	}
	counts := app.ActivateBuild(t, "build-herd")
	require.Equal(t, 8, counts.Ready)

	var (
		mu      sync.Mutex
		claimed = make(map[string]int)
		errs    []error
		wg      sync.WaitGroup
	)
	for a := 1; a <= 4; a++ {
		wg.Add(1)
		go func(agentID string) {
			defer wg.Done()
			for {
				id, err := claimOnce(app.BaseURL, agentID)
				mu.Lock()
				if err != nil {
					errs = append(errs, err)
				} else if id != "" {
					claimed[id]++
				}
				mu.Unlock()
				if err != nil || id == "" {
					return
				}
			}
		}(fmt.Sprintf("agent-%d", a))
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, claimed, 8, "every ticket must be claimed")
	for id, n := range claimed {
		assert.Equal(t, 1, n, "ticket %s claimed %d times", id, n)
		assert.True(t, created[id], "claimed unknown ticket %s", id)
		assert.Equal(t, "in_progress", string(app.TicketRow(t, id).State))
	}
}

// TestE2E_TwoEnginesShareOneDatabase runs two full engine replicas against
// the same database and a shared pool of direct-mode tickets. The claim CAS
// guarantees each ticket executes exactly once no matter which replica wins
// the poll.
func TestE2E_TwoEnginesShareOneDatabase(t *testing.T) {
	var executions atomic.Int64
	agentSrv := StartInSlotAgent(t, func(ticketID string) (branch, errText string) {
		executions.Add(1)
		return "forge/" + ticketID, ""
	})

	primary := NewTestApp(t)
	primary.Pool.Endpoint = agentSrv.URL

	replica := NewTestApp(t,
		WithDBClient(primary.DBClient),
		WithEngineID("engine-b"))
	replica.Pool.Endpoint = agentSrv.URL

	primary.CreateProject(t, "proj-payments")
	var ids []string
	for i := 1; i <= 6; i++ {
		ids = append(ids, primary.CreateTicket(t, models.CreateTicketRequest{
			TicketID:      fmt.Sprintf("PAY-70%d", i),
			ProjectID:     "proj-payments",
			BuildID:       "build-fleet",
			Title:         fmt.Sprintf("Fleet ticket %d", i),
			ExecutionMode: "direct",
		}))
	}
	primary.ActivateBuild(t, "build-fleet")

	// Both pipelines may race on the verifying rows; the transition guard
	// lets exactly one outcome land per ticket. Execution itself is claimed
	// work and can never double up.
	for _, id := range ids {
		primary.WaitForTicketState(t, id, "in_review")
		require.NotNil(t, primary.TicketRow(t, id).PrURL)
	}
	assert.Equal(t, int64(6), executions.Load(), "each ticket executes exactly once across replicas")
}

// TestE2E_StatusReportsEngineHealth smoke-checks the operator surfaces.
func TestE2E_StatusReportsEngineHealth(t *testing.T) {
	app := NewTestApp(t)

	status := app.getJSON(t, "/status", http.StatusOK)
	engine, ok := status["engine"].(map[string]interface{})
	require.True(t, ok, "status payload missing engine block: %v", status)
	assert.Equal(t, app.EngineID, engine["engine_id"])
	assert.Equal(t, true, engine["running"])
	assert.Equal(t, true, engine["db_reachable"])

	health := app.getJSON(t, "/health", http.StatusOK)
	assert.Equal(t, "healthy", health["status"])
	db, ok := health["database"].(map[string]interface{})
	require.True(t, ok, "health payload missing database block: %v", health)
	assert.NotEmpty(t, db)
}
