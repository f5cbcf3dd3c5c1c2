package requisition

import (
	"context"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"substock/internal/core/apperror"
	"substock/internal/domain/inventory"
	"substock/internal/domain/settings"
	"substock/pkg/docnum"
)

type fakeInventory struct {
	items []inventory.Item
}

func (f *fakeInventory) Items() []inventory.Item {
	return f.items
}

type fakeSettings struct {
	snap settings.Snapshot
}

func (f *fakeSettings) Snapshot(ctx context.Context) (settings.Snapshot, error) {
	return f.snap, nil
}

func newTestService() *Service {
	inv := &fakeInventory{items: []inventory.Item{
		invItem("ABC123", "L1", 10, 50, -200, "5.00"),
		invItem("XYZ789", "L1", 70, 50, -280, "10.00"),
	}}
	snap := settings.EmptySnapshot()
	snap.Requesters = []settings.Requester{{ID: "req-1", Name: "Ward 3 East"}}

	return NewService(inv, &fakeSettings{snap: snap},
		docnum.NewWithSource(docnum.DefaultConfig("REQ"), rand.NewSource(1)))
}

func TestService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	sess := svc.Create(ctx)
	assert.NotEmpty(t, sess.ID)
	assert.Regexp(t, regexp.MustCompile(`^REQ-\d{8}-\d{3}$`), sess.DocID)
	assert.Len(t, sess.Lines, 2)

	// Low line starts selected with no quantity; the total is still zero.
	assert.True(t, sess.Lines[0].IsSelected)
	assert.True(t, sess.SelectedTotal.IsZero())

	sess, err := svc.SetManualOrder(ctx, sess.ID, "ABC123", "L1", 50)
	assert.NoError(t, err)
	assert.Equal(t, int64(50), sess.Lines[0].ManualOrder)
	assert.Equal(t, "250", sess.SelectedTotal.String())

	doc, err := svc.Finalize(ctx, sess.ID, "req-1")
	assert.NoError(t, err)
	assert.Equal(t, sess.DocID, doc.DocID)
	assert.Equal(t, "Ward 3 East", doc.Requester)
	assert.Len(t, doc.Lines, 1)

	// Finalization consumes the session.
	_, err = svc.Get(ctx, sess.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_FinalizeGuardsKeepSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sess := svc.Create(ctx)

	// Unknown requester refuses without consuming the session.
	_, err := svc.Finalize(ctx, sess.ID, "nobody")
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNoRequester, appErr.Code)

	// Empty selection refuses too.
	_, err = svc.SelectAll(ctx, sess.ID, false)
	assert.NoError(t, err)
	_, err = svc.Finalize(ctx, sess.ID, "req-1")
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNothingSelected, appErr.Code)

	// Both refusals leave the session editable.
	sess, err = svc.SetManualOrder(ctx, sess.ID, "ABC123", "L1", 5)
	assert.NoError(t, err)
	_, err = svc.Finalize(ctx, sess.ID, "req-1")
	assert.NoError(t, err)
}

func TestService_ApplySuggestionAcrossSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sess := svc.Create(ctx)

	sess, err := svc.ApplySuggestion(ctx, sess.ID, Multiplier12)
	assert.NoError(t, err)
	assert.Equal(t, int64(50), sess.Lines[0].ManualOrder)
	assert.Equal(t, "250", sess.SelectedTotal.String())
}

func TestService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Get(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))

	err = svc.Abandon(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_AbandonDiscardsSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	sess := svc.Create(ctx)

	assert.NoError(t, svc.Abandon(ctx, sess.ID))
	_, err := svc.Get(ctx, sess.ID)
	assert.True(t, apperror.IsNotFound(err))
}
