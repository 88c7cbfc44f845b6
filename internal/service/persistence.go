package service

import (
	"context"
	"errors"

	"shiftboard/internal/database/mongodb/model"
	"shiftboard/internal/database/mongodb/repository"
	"shiftboard/internal/roster"
	"shiftboard/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPersistence 把排班引擎的持久化介面接到 MongoDB。
// 引擎端 id 一律是字串，這裡負責與 ObjectID 互轉；
// 唯一索引衝突在這裡翻譯成 roster.ErrSlotConflict。
type MongoPersistence struct {
	trace          *telemetry.Trace
	assignmentRepo *repository.AssignmentRepository
}

func NewMongoPersistence(trace *telemetry.Trace, assignmentRepo *repository.AssignmentRepository) *MongoPersistence {
	return &MongoPersistence{trace: trace, assignmentRepo: assignmentRepo}
}

// 編譯期檢查
var _ roster.Persistence = (*MongoPersistence)(nil)

func (p *MongoPersistence) CreateAssignment(ctx context.Context, a roster.Assignment) (string, error) {
	ctx, _, end := p.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	doc, convErr := assignmentToModel(a)
	if convErr != nil {
		err = convErr
		return "", err
	}

	stored, upsertErr := p.assignmentRepo.Upsert(ctx, doc)
	if upsertErr != nil {
		if mongo.IsDuplicateKeyError(upsertErr) {
			err = roster.ErrSlotConflict
			return "", err
		}
		err = upsertErr
		return "", err
	}
	return stored.ID.Hex(), nil
}

func (p *MongoPersistence) DeleteAssignment(ctx context.Context, id string) error {
	ctx, _, end := p.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	objectID, parseErr := primitive.ObjectIDFromHex(id)
	if parseErr != nil {
		err = roster.ErrAssignmentNotFound
		return err
	}
	if deleteErr := p.assignmentRepo.DeleteByID(ctx, objectID); deleteErr != nil {
		if errors.Is(deleteErr, mongo.ErrNoDocuments) {
			err = roster.ErrAssignmentNotFound
			return err
		}
		err = deleteErr
		return err
	}
	return nil
}

func (p *MongoPersistence) CreateAssignments(ctx context.Context, batch []roster.Assignment) ([]roster.BatchOutcome, error) {
	ctx, _, end := p.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	docs := make([]*model.Assignment, 0, len(batch))
	outcomes := make([]roster.BatchOutcome, len(batch))
	docIndex := make([]int, 0, len(batch)) // docs 下標 → batch 下標
	for i, a := range batch {
		outcomes[i] = roster.BatchOutcome{Assignment: a}
		doc, convErr := assignmentToModel(a)
		if convErr != nil {
			outcomes[i].Err = convErr
			continue
		}
		docs = append(docs, doc)
		docIndex = append(docIndex, i)
	}

	perEntry, insertErr := p.assignmentRepo.InsertMany(ctx, docs)
	if insertErr != nil {
		err = insertErr
		return nil, err
	}
	for j, entryErr := range perEntry {
		i := docIndex[j]
		switch {
		case entryErr == nil:
			outcomes[i].Assignment.ID = docs[j].ID.Hex()
		case mongo.IsDuplicateKeyError(entryErr):
			outcomes[i].Err = roster.ErrSlotConflict
		default:
			outcomes[i].Err = entryErr
		}
	}
	return outcomes, nil
}

func (p *MongoPersistence) ListAssignments(ctx context.Context, from, to roster.DateKey) ([]roster.Assignment, error) {
	ctx, _, end := p.trace.WithSpan(ctx)
	var err error
	defer func() { end(err) }()

	docs, listErr := p.assignmentRepo.ListByDateRange(ctx, string(from), string(to))
	if listErr != nil {
		err = listErr
		return nil, err
	}
	result := make([]roster.Assignment, 0, len(docs))
	for _, doc := range docs {
		result = append(result, modelToAssignment(doc))
	}
	return result, nil
}

func assignmentToModel(a roster.Assignment) (*model.Assignment, error) {
	workerID, err := primitive.ObjectIDFromHex(a.WorkerID)
	if err != nil {
		return nil, &roster.MalformedIdentifierError{ID: a.WorkerID, Reason: "worker id is not a valid object id"}
	}
	resourceID, err := primitive.ObjectIDFromHex(a.ResourceID)
	if err != nil {
		return nil, &roster.MalformedIdentifierError{ID: a.ResourceID, Reason: "resource id is not a valid object id"}
	}
	shiftID, err := primitive.ObjectIDFromHex(a.ShiftID)
	if err != nil {
		return nil, &roster.MalformedIdentifierError{ID: a.ShiftID, Reason: "shift id is not a valid object id"}
	}
	return &model.Assignment{
		WorkerID:   workerID,
		ResourceID: resourceID,
		ShiftID:    shiftID,
		Date:       string(a.Date),
	}, nil
}

func modelToAssignment(doc *model.Assignment) roster.Assignment {
	return roster.Assignment{
		ID:         doc.ID.Hex(),
		WorkerID:   doc.WorkerID.Hex(),
		ResourceID: doc.ResourceID.Hex(),
		ShiftID:    doc.ShiftID.Hex(),
		Date:       roster.DateKey(doc.Date),
		State:      roster.StateCommitted,
	}
}
