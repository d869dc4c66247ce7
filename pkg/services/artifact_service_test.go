package services

import (
	"context"
	"testing"

	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/ent/ticketartifact"
	testdb "github.com/forgeworks/forge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactService_Append(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArtifactService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)
	row := seedTicket(t, client.Client, project.ID, ticket.StateVerifying, nil)

	t.Run("appends feedback with attempt", func(t *testing.T) {
		artifact, err := service.Append(ctx, row.ID, ticketartifact.KindVerificationFeedback, 1,
			"acceptance criterion 2 unmet: no test covers the empty cart", nil)
		require.NoError(t, err)
		assert.Equal(t, ticketartifact.KindVerificationFeedback, artifact.Kind)
		assert.Equal(t, 1, artifact.Attempt)
		assert.NotEmpty(t, artifact.ID)
	})

	t.Run("carries metadata", func(t *testing.T) {
		artifact, err := service.Append(ctx, row.ID, ticketartifact.KindVerificationEvidence, 1,
			`{"phases":["build","test"]}`, map[string]any{"verifier": "forge-verifier/2"})
		require.NoError(t, err)
		assert.Equal(t, "forge-verifier/2", artifact.Metadata["verifier"])
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := service.Append(ctx, "no-such-ticket", ticketartifact.KindPipelineError, 0, "boom", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects negative attempt", func(t *testing.T) {
		_, err := service.Append(ctx, row.ID, ticketartifact.KindAgentOutput, -1, "x", nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestArtifactService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewArtifactService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)
	row := seedTicket(t, client.Client, project.ID, ticket.StateVerifying, nil)

	_, err := service.Append(ctx, row.ID, ticketartifact.KindVerificationFeedback, 1, "first attempt feedback", nil)
	require.NoError(t, err)
	_, err = service.Append(ctx, row.ID, ticketartifact.KindVerificationFeedback, 2, "second attempt feedback", nil)
	require.NoError(t, err)
	_, err = service.Append(ctx, row.ID, ticketartifact.KindAgentOutput, 0, "summary of changes", nil)
	require.NoError(t, err)

	t.Run("lists all oldest first", func(t *testing.T) {
		artifacts, err := service.ListForTicket(ctx, row.ID)
		require.NoError(t, err)
		require.Len(t, artifacts, 3)
		assert.Equal(t, "first attempt feedback", artifacts[0].Content)
	})

	t.Run("narrows by kind", func(t *testing.T) {
		artifacts, err := service.ListForTicket(ctx, row.ID, ticketartifact.KindVerificationFeedback)
		require.NoError(t, err)
		assert.Len(t, artifacts, 2)
	})

	t.Run("latest by kind", func(t *testing.T) {
		latest, err := service.LatestByKind(ctx, row.ID, ticketartifact.KindVerificationFeedback)
		require.NoError(t, err)
		assert.Equal(t, "second attempt feedback", latest.Content)

		_, err = service.LatestByKind(ctx, row.ID, ticketartifact.KindPipelineError)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("counts drive attempt numbering", func(t *testing.T) {
		count, err := service.CountByKind(ctx, row.ID, ticketartifact.KindVerificationFeedback)
		require.NoError(t, err)
		assert.Equal(t, 2, count, "the next verification attempt is count+1")
	})
}
