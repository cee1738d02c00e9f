package ledger

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/gpa-calculator/internal/grading"
	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces"
	"github.com/sheikh-saqib/gpa-calculator/internal/models"
	"github.com/sheikh-saqib/gpa-calculator/internal/models/events"
)

// Credit weight bounds accepted by Add, inclusive.
const (
	MinCredit = 1
	MaxCredit = 8
)

// Ledger is the ordered collection of subjects for one evaluation session.
// Persistence and event publishing are best effort: their failures are
// logged and never undo or fail a mutation.
type Ledger struct {
	mu        sync.Mutex
	subjects  []models.SubjectRecord
	store     interfaces.SubjectStore   // optional, nil keeps the ledger in memory only
	publisher interfaces.EventPublisher // optional
	ids       IDGenerator
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures a Ledger in NewLedger.
type Option func(*Ledger)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithPublisher sends subject events to p.
func WithPublisher(p interfaces.EventPublisher) Option {
	return func(l *Ledger) { l.publisher = p }
}

// WithIDGenerator replaces the default UUID ids.
func WithIDGenerator(g IDGenerator) Option {
	return func(l *Ledger) {
		if g != nil {
			l.ids = g
		}
	}
}

// NewLedger creates an empty ledger backed by store.
// Call Restore to pull previously saved subjects in.
func NewLedger(store interfaces.SubjectStore, opts ...Option) *Ledger {
	l := &Ledger{
		subjects: make([]models.SubjectRecord, 0),
		store:    store,
		ids:      UUIDGenerator{},
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add validates the input, appends a new subject and returns it.
func (l *Ledger) Add(ctx context.Context, name string, credit int, gradeValue float64) (models.SubjectRecord, error) {
	l.mu.Lock()
	record, err := newRecord(name, credit, gradeValue)
	if err != nil {
		l.mu.Unlock()
		return models.SubjectRecord{}, err
	}
	record.ID = l.ids.NextID()
	l.subjects = append(l.subjects, record)
	l.persist(ctx)
	l.mu.Unlock()

	l.logger.Debug("subject added",
		zap.String("id", record.ID),
		zap.String("name", record.Name),
		zap.Int("credit", record.Credit),
		zap.String("grade_value", record.GradeValue.StringFixed(2)))

	l.publish(ctx, events.TopicSubjectAdded, events.SubjectAdded{
		SubjectID:   record.ID,
		Name:        record.Name,
		Credit:      record.Credit,
		GradeValue:  record.GradeValue,
		LetterGrade: record.LetterGrade,
		OccurredAt:  l.now(),
	})
	return record, nil
}

// Remove deletes the subject with the given id, keeping the others in order.
func (l *Ledger) Remove(ctx context.Context, id string) (models.SubjectRecord, error) {
	l.mu.Lock()
	index := -1
	for i, s := range l.subjects {
		if s.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		l.mu.Unlock()
		return models.SubjectRecord{}, &NotFoundError{ID: id}
	}

	removed := l.subjects[index]
	l.subjects = append(l.subjects[:index], l.subjects[index+1:]...)
	l.persist(ctx)
	l.mu.Unlock()

	l.logger.Debug("subject removed", zap.String("id", removed.ID), zap.String("name", removed.Name))

	l.publish(ctx, events.TopicSubjectRemoved, events.SubjectRemoved{
		SubjectID:  removed.ID,
		Name:       removed.Name,
		OccurredAt: l.now(),
	})
	return removed, nil
}

// List returns a copy of the subjects in insertion order.
func (l *Ledger) List() []models.SubjectRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	copied := make([]models.SubjectRecord, len(l.subjects))
	copy(copied, l.subjects)
	return copied
}

func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subjects)
}

func (l *Ledger) IsEmpty() bool {
	return l.Count() == 0
}

// Restore replaces the ledger contents with what the store holds and
// returns the number of subjects restored. Rows that would not pass Add
// are dropped. If the store cannot be read the ledger is left as it was.
func (l *Ledger) Restore(ctx context.Context) int {
	if l.store == nil {
		return 0
	}

	stored, err := l.store.Load(ctx)
	if err != nil {
		l.logger.Warn("could not load saved subjects", zap.Error(err))
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	restored := make([]models.SubjectRecord, 0, len(stored))
	for i, s := range stored {
		record, err := newRecord(s.Name, s.Credit, s.GradeValue)
		if err != nil {
			l.logger.Warn("dropping saved subject", zap.Int("position", i), zap.Error(err))
			continue
		}
		record.ID = l.ids.NextID()
		restored = append(restored, record)
	}

	l.subjects = restored
	l.logger.Info("restored saved subjects", zap.Int("count", len(restored)), zap.Int("dropped", len(stored)-len(restored)))
	return len(restored)
}

// newRecord applies the Add rules in order (name, credit, grade) and derives
// the letter grade. The caller assigns the id.
func newRecord(name string, credit int, value float64) (models.SubjectRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SubjectRecord{}, &ValidationError{Reason: ReasonEmptyName}
	}
	if credit < MinCredit || credit > MaxCredit {
		return models.SubjectRecord{}, &ValidationError{Reason: ReasonCreditOutOfRange, Value: credit}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return models.SubjectRecord{}, &ValidationError{Reason: ReasonGradeOutOfRange, Value: value}
	}
	gradeValue := decimal.NewFromFloat(value)
	if !grading.InRange(gradeValue) {
		return models.SubjectRecord{}, &ValidationError{Reason: ReasonGradeOutOfRange, Value: gradeValue.String()}
	}

	record := models.SubjectRecord{
		Name:       name,
		Credit:     credit,
		GradeValue: gradeValue,
	}
	// off-scale values keep an empty letter grade
	if step, ok := grading.LookupGrade(gradeValue); ok {
		record.LetterGrade = step.Letter
		record.GradeBand = step.Band
	}
	return record, nil
}

// persist must be called with l.mu held.
func (l *Ledger) persist(ctx context.Context) {
	if l.store == nil {
		return
	}
	if err := l.store.Save(ctx, models.StoredSubjects(l.subjects)); err != nil {
		l.logger.Warn("could not save subjects", zap.Error(err), zap.Int("count", len(l.subjects)))
	}
}

func (l *Ledger) publish(ctx context.Context, topic string, event any) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, topic, event); err != nil {
		l.logger.Warn("could not publish event", zap.String("topic", topic), zap.Error(err))
	}
}
