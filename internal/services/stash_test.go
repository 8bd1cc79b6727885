package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hyprstash/internal/adapters/storage"
	"hyprstash/internal/domain"
	portsmocks "hyprstash/internal/ports/mocks"
)

type stashFixture struct {
	fake    *fakeCompositor
	repo    *storage.FileStashRepository
	service *StashService
}

func newStashFixture(t *testing.T, f *fakeCompositor, policy domain.ConflictPolicy) stashFixture {
	t.Helper()
	repo := storage.NewFileStashRepository(t.TempDir())
	return stashFixture{
		fake: f,
		repo: repo,
		service: NewStashService(f, repo, nil, StashServiceOptions{
			ConflictPolicy:       policy,
			RecordFocusedMonitor: true,
		}),
	}
}

func (fx stashFixture) stashed(t *testing.T) []string {
	t.Helper()
	names, err := fx.repo.List(context.Background())
	require.NoError(t, err)
	return names
}

func TestStashService_StashAndPopWorkspace(t *testing.T) {
	fx := newStashFixture(t, singleMonitorFake(), domain.ConflictReject)
	ctx := context.Background()

	result, err := fx.service.StashWorkspace(ctx, StashParams{Name: "work", Holding: 8}, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.KindWorkspace, result.Instance.Kind())
	assert.Equal(t, domain.WorkspaceID(1), result.Instance.Workspace.OriginalWorkspace, "focused workspace is stashed")
	assert.Equal(t, []string{"work"}, fx.stashed(t))

	popped, err := fx.service.PopWorkspace(ctx, "work", nil)

	require.NoError(t, err)
	assert.Len(t, popped.Batch.Succeeded, 3)
	assert.Equal(t, domain.WorkspaceID(1), fx.fake.workspaceOf("0xa"))
	assert.Empty(t, fx.stashed(t), "successful pop deletes the stash")
}

func TestStashService_StashExplicitWorkspace(t *testing.T) {
	fx := newStashFixture(t, singleMonitorFake(), domain.ConflictReject)
	source := domain.WorkspaceID(2)

	result, err := fx.service.StashWorkspace(context.Background(), StashParams{Name: "two", Holding: 9}, &source)

	require.NoError(t, err)
	assert.Equal(t, []domain.Address{"0xd"}, result.Instance.Workspace.WindowAddresses)
	assert.Equal(t, domain.WorkspaceID(9), fx.fake.workspaceOf("0xd"))
}

func TestStashService_InvalidNameTouchesNothing(t *testing.T) {
	fx := newStashFixture(t, singleMonitorFake(), domain.ConflictReject)

	_, err := fx.service.StashWorkspace(context.Background(), StashParams{Name: "my stash", Holding: 8}, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidName)
	assert.Empty(t, fx.fake.moves)
	assert.Empty(t, fx.stashed(t))
}

func TestStashService_Conflict(t *testing.T) {
	tests := []struct {
		name    string
		policy  domain.ConflictPolicy
		force   bool
		wantErr error
	}{
		{name: "reject", policy: domain.ConflictReject, wantErr: domain.ErrStashExists},
		{name: "reject with force", policy: domain.ConflictReject, force: true},
		{name: "overwrite", policy: domain.ConflictOverwrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newStashFixture(t, singleMonitorFake(), tt.policy)
			ctx := context.Background()
			first := domain.WorkspaceID(2)
			_, err := fx.service.StashWorkspace(ctx, StashParams{Name: "dup", Holding: 8}, &first)
			require.NoError(t, err)
			fx.fake.resetMoves()

			_, err = fx.service.StashWorkspace(ctx, StashParams{Name: "dup", Holding: 8, Force: tt.force}, nil)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, fx.fake.moves, "rejected stash moves nothing")
				return
			}
			require.NoError(t, err)
			instance, err := fx.repo.Read(ctx, "dup")
			require.NoError(t, err)
			assert.Equal(t, domain.WorkspaceID(1), instance.Workspace.OriginalWorkspace)
		})
	}
}

func TestStashService_StashToleratesDispatchFailures(t *testing.T) {
	f := singleMonitorFake()
	f.failOn["0xb"] = errors.New("dispatch rejected")
	fx := newStashFixture(t, f, domain.ConflictReject)

	result, err := fx.service.StashWorkspace(context.Background(), StashParams{Name: "partial", Holding: 8}, nil)

	require.NoError(t, err)
	assert.Len(t, result.Batch.Failed, 1)
	assert.Equal(t, []string{"partial"}, fx.stashed(t))
}

func TestStashService_NoFocusedMonitorMovesNothing(t *testing.T) {
	f := singleMonitorFake()
	f.focus(5)
	fx := newStashFixture(t, f, domain.ConflictReject)

	_, err := fx.service.StashEverything(context.Background(), StashParams{Name: "all", Holding: 8})

	assert.ErrorIs(t, err, domain.ErrNoFocusedTarget)
	assert.Empty(t, f.moves)
	assert.Empty(t, fx.stashed(t))
}

func TestStashService_PopFailureKeepsStash(t *testing.T) {
	fx := newStashFixture(t, singleMonitorFake(), domain.ConflictReject)
	ctx := context.Background()
	_, err := fx.service.StashWorkspace(ctx, StashParams{Name: "keep", Holding: 8}, nil)
	require.NoError(t, err)

	fx.fake.failOn["0xc"] = errors.New("dispatch rejected")
	_, err = fx.service.PopWorkspace(ctx, "keep", nil)

	assert.ErrorIs(t, err, domain.ErrDispatch)
	assert.Equal(t, []string{"keep"}, fx.stashed(t))

	delete(fx.fake.failOn, "0xc")
	fx.fake.resetMoves()
	_, err = fx.service.PopWorkspace(ctx, "keep", nil)

	require.NoError(t, err)
	assert.Equal(t, []domain.Address{"0xc"}, fx.fake.movedAddresses(), "retry only moves windows still parked")
	assert.Empty(t, fx.stashed(t))
}

func TestStashService_PopMismatchedKind(t *testing.T) {
	fx := newStashFixture(t, dualMonitorFake(), domain.ConflictReject)
	ctx := context.Background()
	_, err := fx.service.StashMonitor(ctx, StashParams{Name: "mon", Holding: 8}, nil)
	require.NoError(t, err)
	fx.fake.resetMoves()

	_, err = fx.service.PopWorkspace(ctx, "mon", nil)
	assert.ErrorIs(t, err, domain.ErrMismatchedStashType)

	_, err = fx.service.PopSession(ctx, "mon", PopSessionOptions{})
	assert.ErrorIs(t, err, domain.ErrMismatchedStashType)

	assert.Empty(t, fx.fake.moves)
	assert.Equal(t, []string{"mon"}, fx.stashed(t))
}

func TestStashService_PopMissingStash(t *testing.T) {
	fx := newStashFixture(t, singleMonitorFake(), domain.ConflictReject)

	_, err := fx.service.Pop(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrStashNotFound)
}

func TestStashService_PopMonitorRelative(t *testing.T) {
	fx := newStashFixture(t, dualMonitorFake(), domain.ConflictReject)
	ctx := context.Background()
	_, err := fx.service.StashMonitor(ctx, StashParams{Name: "mon", Holding: 8}, nil)
	require.NoError(t, err)

	target := domain.MonitorID(1)
	_, err = fx.service.PopMonitor(ctx, "mon", &target, true)

	require.NoError(t, err)
	assert.Equal(t, domain.WorkspaceID(3), fx.fake.workspaceOf("0xc"), "relative ignores the target")
}

func TestStashService_GenericPop(t *testing.T) {
	fx := newStashFixture(t, sessionFake(), domain.ConflictReject)
	ctx := context.Background()
	_, err := fx.service.StashEverything(ctx, StashParams{Name: "all", Holding: 8})
	require.NoError(t, err)

	result, err := fx.service.Pop(ctx, "all")

	require.NoError(t, err)
	assert.Equal(t, domain.KindEverything, result.Kind)
	assert.Len(t, result.Batch.Succeeded, 4)
	assert.Equal(t, domain.WorkspaceID(4), fx.fake.workspaceOf("0xd"))
	assert.Empty(t, fx.stashed(t))
}

func TestStashService_ListAndShow(t *testing.T) {
	fx := newStashFixture(t, sessionFake(), domain.ConflictReject)
	ctx := context.Background()
	_, err := fx.service.StashWorkspace(ctx, StashParams{Name: "one", Holding: 8}, nil)
	require.NoError(t, err)
	_, err = fx.service.StashEverything(ctx, StashParams{Name: "all", Holding: 9})
	require.NoError(t, err)

	summaries, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	byName := map[string]StashSummary{}
	for _, s := range summaries {
		byName[s.Name] = s
	}
	assert.Equal(t, domain.KindWorkspace, byName["one"].Kind)
	assert.Equal(t, 1, byName["one"].Windows)
	assert.Equal(t, domain.KindEverything, byName["all"].Kind)
	assert.Equal(t, 4, byName["all"].Windows, "the earlier stash's window is swept up from the holding workspace")

	instance, err := fx.service.Show(ctx, "one")
	require.NoError(t, err)
	assert.Equal(t, []domain.Address{"0xa"}, instance.Workspace.WindowAddresses)
}

func TestStashService_Clear(t *testing.T) {
	fx := newStashFixture(t, singleMonitorFake(), domain.ConflictReject)
	ctx := context.Background()
	one, two := domain.WorkspaceID(1), domain.WorkspaceID(2)
	_, err := fx.service.StashWorkspace(ctx, StashParams{Name: "one", Holding: 8}, &one)
	require.NoError(t, err)
	_, err = fx.service.StashWorkspace(ctx, StashParams{Name: "two", Holding: 8}, &two)
	require.NoError(t, err)

	require.NoError(t, fx.service.Clear(ctx, "one"))
	assert.Equal(t, []string{"two"}, fx.stashed(t))
	assert.Equal(t, domain.WorkspaceID(8), fx.fake.workspaceOf("0xa"), "clearing leaves windows where they are")

	assert.ErrorIs(t, fx.service.Clear(ctx, "one"), domain.ErrStashNotFound)

	require.NoError(t, fx.service.Clear(ctx, ""))
	assert.Empty(t, fx.stashed(t))
}

func TestStashService_RecordsHistory(t *testing.T) {
	f := singleMonitorFake()
	history := portsmocks.NewMockHistoryRecorder(t)
	repo := storage.NewFileStashRepository(t.TempDir())
	service := NewStashService(f, repo, history, StashServiceOptions{})
	ctx := context.Background()

	history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e domain.HistoryEntry) bool {
		return e.Operation == domain.OperationStash && e.Name == "work" && e.Windows == 3 && e.Error == ""
	})).Return(nil).Once()
	history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e domain.HistoryEntry) bool {
		return e.Operation == domain.OperationPop && e.Error != "" && e.Failures == 1
	})).Return(nil).Once()
	history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e domain.HistoryEntry) bool {
		return e.Operation == domain.OperationClear && e.Name == "work"
	})).Return(errors.New("database is locked")).Once()

	_, err := service.StashWorkspace(ctx, StashParams{Name: "work", Holding: 8}, nil)
	require.NoError(t, err)

	f.failOn["0xa"] = errors.New("dispatch rejected")
	_, err = service.PopWorkspace(ctx, "work", nil)
	require.Error(t, err)

	assert.NoError(t, service.Clear(ctx, "work"), "history failures never fail the operation")
}

func TestStashService_HistoryDisabled(t *testing.T) {
	fx := newStashFixture(t, singleMonitorFake(), domain.ConflictReject)

	_, err := fx.service.History(context.Background(), 10)

	assert.Error(t, err)
}

func TestStashService_Monitors(t *testing.T) {
	fx := newStashFixture(t, dualMonitorFake(), domain.ConflictReject)

	monitors, err := fx.service.Monitors(context.Background())

	require.NoError(t, err)
	assert.Len(t, monitors, 2)
}
