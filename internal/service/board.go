package service

import (
	"context"
	"errors"
	"time"

	"shiftboard/internal/core"
	"shiftboard/internal/dto"
	cErr "shiftboard/internal/pkg/error"
	"shiftboard/internal/roster"
	"shiftboard/internal/telemetry"

	"go.uber.org/zap"
)

// BoardService 排班看板：持有引擎的 Store 與 Coordinator，對外提供
// 週視圖、換週、選班、拖放、移除與週複製。
type BoardService struct {
	trace     *telemetry.Trace
	metric    *telemetry.Metric
	logger    *zap.Logger
	directory *DirectoryService

	store       *roster.Store
	coordinator *roster.Coordinator
	persistence *MongoPersistence
}

func NewBoardService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	directory *DirectoryService,
	persistence *MongoPersistence,
) *BoardService {
	store := roster.NewStore()
	return &BoardService{
		trace:       trace,
		metric:      metric,
		logger:      logger,
		directory:   directory,
		store:       store,
		coordinator: roster.NewCoordinator(store, persistence, logger),
		persistence: persistence,
	}
}

// LoadWeek 載入 reference（yyyy-mm-dd，空值用今天）所在週的名錄與指派。
// 已選班別在新名錄仍存在時保留。
func (s *BoardService) LoadWeek(ctx context.Context, reference string) (_ *dto.BoardResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	referenceTime := time.Now().UTC()
	if reference != "" {
		dateKey, parseErr := roster.ParseDateKey(reference)
		if parseErr != nil {
			returnedError = cErr.BadRequestBody("reference must be a yyyy-mm-dd date")
			return nil, returnedError
		}
		referenceTime = dateKey.Time()
	}
	week := roster.WeekDates(referenceTime)

	snapshot, dirErr := s.directory.Directory(ctx)
	if dirErr != nil {
		returnedError = dirErr
		return nil, returnedError
	}

	assignments, listErr := s.persistence.ListAssignments(ctx, week[0], week[6])
	if listErr != nil {
		returnedError = cErr.PersistenceFailure("failed to load assignments for week")
		return nil, returnedError
	}

	if loadErr := s.store.Load(week, snapshot.Workers, snapshot.Resources, snapshot.Shifts, assignments); loadErr != nil {
		var consistency *roster.ConsistencyError
		if errors.As(loadErr, &consistency) {
			s.logger.Error("duplicate slot in persisted assignments",
				zap.String("workerId", consistency.WorkerID),
				zap.String("date", string(consistency.Date)),
				zap.String("shiftId", consistency.ShiftID),
			)
			returnedError = cErr.ConsistencyViolation(loadErr.Error())
			return nil, returnedError
		}
		returnedError = cErr.InternalServer(loadErr.Error())
		return nil, returnedError
	}

	return s.view(), nil
}

// View 目前看板快照，不觸發任何讀寫
func (s *BoardService) View(ctx context.Context) *dto.BoardResponseDto {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)
	return s.view()
}

// SelectShift 設定作用中班別，之後的拖放都以它為目標槽位
func (s *BoardService) SelectShift(ctx context.Context, shiftID string) (returnedError error) {
	_, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := s.store.SelectShift(shiftID); err != nil {
		returnedError = cErr.NotFound("unknown shift " + shiftID)
		return returnedError
	}
	return nil
}

// Drop 處理一次拖放事件
func (s *BoardService) Drop(ctx context.Context, input *dto.DropRequestDto) (_ *dto.AssignmentDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanBoardDrop))
	defer func() { end(returnedError) }()

	applied, dropErr := s.coordinator.ApplyDrop(ctx, input.DraggableID, input.DroppableID)
	if dropErr != nil {
		s.countRejectedDrop(dropErr)
		returnedError = mapRosterError(dropErr)
		return nil, returnedError
	}

	s.trace.ApplyTraceAttributes(span, core.TraceDropMeta{
		WorkerID:     applied.WorkerID,
		ResourceID:   applied.ResourceID,
		ShiftID:      applied.ShiftID,
		Date:         string(applied.Date),
		AssignmentID: applied.ID,
		Outcome:      "applied",
	})
	if s.metric.DropsAppliedTotal != nil {
		s.metric.DropsAppliedTotal.WithLabelValues(applied.ShiftID).Inc()
	}

	result := assignmentToDto(applied)
	return &result, nil
}

// Remove 顯式移除一筆指派
func (s *BoardService) Remove(ctx context.Context, assignmentID string) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx, string(core.SpanBoardRemoval))
	defer func() { end(returnedError) }()

	if err := s.coordinator.ApplyRemoval(ctx, assignmentID); err != nil {
		if isRollback(err) && s.metric.RollbacksTotal != nil {
			s.metric.RollbacksTotal.WithLabelValues("delete").Inc()
		}
		returnedError = mapRosterError(err)
		return returnedError
	}
	return nil
}

// CopyWeek 把目前可視週複製到下一週
func (s *BoardService) CopyWeek(ctx context.Context) (_ *dto.CopyWeekResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanBoardCopyWeek))
	defer func() { end(returnedError) }()

	result, copyErr := s.coordinator.CopyWeek(ctx)
	if copyErr != nil {
		returnedError = mapRosterError(copyErr)
		return nil, returnedError
	}

	week := s.store.Week()
	s.trace.ApplyTraceAttributes(span, core.TraceCopyWeekMeta{
		SourceWeek: string(week[0]),
		Created:    len(result.Created),
		Skipped:    len(result.Skipped),
		Failed:     len(result.Failed),
	})
	if s.metric.CopyWeekEntries != nil {
		s.metric.CopyWeekEntries.WithLabelValues("created").Add(float64(len(result.Created)))
		s.metric.CopyWeekEntries.WithLabelValues("skipped").Add(float64(len(result.Skipped)))
		s.metric.CopyWeekEntries.WithLabelValues("failed").Add(float64(len(result.Failed)))
	}

	response := &dto.CopyWeekResponseDto{
		Created: make([]dto.AssignmentDto, 0, len(result.Created)),
		Skipped: make([]dto.AssignmentDto, 0, len(result.Skipped)),
		Failed:  make([]dto.CopyWeekFailureDto, 0, len(result.Failed)),
	}
	for _, a := range result.Created {
		response.Created = append(response.Created, assignmentToDto(a))
	}
	for _, a := range result.Skipped {
		response.Skipped = append(response.Skipped, assignmentToDto(a))
	}
	for _, f := range result.Failed {
		response.Failed = append(response.Failed, dto.CopyWeekFailureDto{
			Assignment: assignmentToDto(f.Assignment),
			Error:      f.Err.Error(),
		})
	}
	return response, nil
}

func (s *BoardService) view() *dto.BoardResponseDto {
	week := s.store.Week()
	weekDates := make([]string, 0, len(week))
	for _, d := range week {
		weekDates = append(weekDates, string(d))
	}

	workers := s.store.Workers()
	resources := s.store.Resources()
	shifts := s.store.Shifts()
	assignments := s.store.Assignments()

	response := &dto.BoardResponseDto{
		Week:          weekDates,
		SelectedShift: s.store.SelectedShift(),
		Workers:       make([]dto.WorkerDto, 0, len(workers)),
		Resources:     make([]dto.ResourceDto, 0, len(resources)),
		Shifts:        make([]dto.ShiftDto, 0, len(shifts)),
		Assignments:   make([]dto.AssignmentDto, 0, len(assignments)),
	}
	for _, w := range workers {
		response.Workers = append(response.Workers, dto.WorkerDto{
			ID:          w.ID,
			Code:        w.Code,
			DisplayName: w.DisplayName,
			OrgUnit:     w.OrgUnit,
			JobTitle:    w.Role,
		})
	}
	for _, r := range resources {
		status := core.ResourceNonOperational
		if r.Operational {
			status = core.ResourceOperational
		}
		response.Resources = append(response.Resources, dto.ResourceDto{
			ID:          r.ID,
			Code:        r.Code,
			DisplayName: r.DisplayName,
			OrgUnit:     r.OrgUnit,
			Status:      string(status),
		})
	}
	for _, sh := range shifts {
		response.Shifts = append(response.Shifts, dto.ShiftDto{
			ID:          sh.ID,
			DisplayName: sh.DisplayName,
			StartTime:   sh.StartTime,
			EndTime:     sh.EndTime,
			Color:       sh.Color,
		})
	}
	for _, a := range assignments {
		response.Assignments = append(response.Assignments, assignmentToDto(a))
	}
	return response
}

func (s *BoardService) countRejectedDrop(err error) {
	if s.metric.DropsRejectedTotal == nil {
		return
	}
	s.metric.DropsRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
	if isRollback(err) && s.metric.RollbacksTotal != nil {
		s.metric.RollbacksTotal.WithLabelValues("create").Inc()
	}
}

func isRollback(err error) bool {
	var persistenceErr *roster.PersistenceError
	return errors.As(err, &persistenceErr)
}

func rejectionReason(err error) string {
	var malformed *roster.MalformedIdentifierError
	var outOfScope *roster.OutOfScopeDropError
	switch {
	case errors.As(err, &malformed):
		return "malformed-identifier"
	case errors.As(err, &outOfScope):
		return "out-of-scope"
	case errors.Is(err, roster.ErrNoShiftSelected):
		return "no-shift-selected"
	case errors.Is(err, roster.ErrWorkerBusy):
		return "worker-busy"
	case isRollback(err):
		return "persistence-failure"
	default:
		return "other"
	}
}

// mapRosterError 引擎錯誤 → API 錯誤。邊界丟棄類給 400、
// 衝突類給 409、持久層失敗給 502。
func mapRosterError(err error) *cErr.Error {
	var malformed *roster.MalformedIdentifierError
	var outOfScope *roster.OutOfScopeDropError
	var consistency *roster.ConsistencyError
	switch {
	case errors.As(err, &malformed):
		return cErr.MalformedIdentifier(err.Error())
	case errors.As(err, &outOfScope):
		return cErr.OutOfScopeDrop(err.Error())
	case errors.Is(err, roster.ErrNoShiftSelected):
		return cErr.NoShiftSelected("select a shift before dropping")
	case errors.Is(err, roster.ErrWorkerBusy):
		return cErr.WorkerBusy("another operation for this worker is in flight")
	case errors.Is(err, roster.ErrSlotConflict):
		return cErr.SlotConflict(err.Error())
	case errors.Is(err, roster.ErrAssignmentNotFound):
		return cErr.NotFound("assignment not found")
	case errors.As(err, &consistency):
		return cErr.ConsistencyViolation(err.Error())
	case isRollback(err):
		return cErr.PersistenceFailure(err.Error())
	default:
		return cErr.InternalServer(err.Error())
	}
}

func assignmentToDto(a roster.Assignment) dto.AssignmentDto {
	return dto.AssignmentDto{
		ID:         a.ID,
		WorkerID:   a.WorkerID,
		ResourceID: a.ResourceID,
		ShiftID:    a.ShiftID,
		Date:       string(a.Date),
		State:      string(a.State),
	}
}
