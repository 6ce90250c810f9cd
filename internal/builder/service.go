package builder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"resumate-backend/internal/render"
	"resumate-backend/internal/resumes"
	"resumate-backend/internal/shared/metrics"
	"resumate-backend/internal/shared/telemetry"
)

var (
	// ErrSaveInFlight means a persist for this session is already running.
	ErrSaveInFlight = errors.New("save already in progress")
	// ErrNotLastStep means Finish was called before the final step.
	ErrNotLastStep = errors.New("session is not on the final step")
	// ErrSaveFailed wraps a store failure during a step save. The session
	// keeps its step and draft so the save can be retried.
	ErrSaveFailed = errors.New("failed to save draft")
)

// Service owns all builder session state transitions. Field edits mutate the
// session only; the store record is written exclusively on GoNext and Finish.
type Service struct {
	Resumes *resumes.Service
	Store   Store

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	saving map[string]bool
}

// NewService constructs a Service.
func NewService(resumeSvc *resumes.Service, store Store) *Service {
	return &Service{
		Resumes: resumeSvc,
		Store:   store,
		locks:   make(map[string]*sync.Mutex),
		saving:  make(map[string]bool),
	}
}

// Open returns the session for the resume, creating one seeded from the
// stored record when none exists. Reopening never re-reads the record, so
// unsaved edits survive a page reload.
func (s *Service) Open(ctx context.Context, ownerID, resumeID string) (*Session, error) {
	lock := s.lockFor(resumeID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.load(ctx, ownerID, resumeID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, ErrNoSession) {
		return nil, err
	}

	record, err := s.Resumes.Get(ctx, ownerID, resumeID)
	if err != nil {
		return nil, err
	}
	session = NewSession(record)
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// View returns the current session without side effects.
func (s *Service) View(ctx context.Context, ownerID, resumeID string) (*Session, error) {
	lock := s.lockFor(resumeID)
	lock.Lock()
	defer lock.Unlock()
	return s.load(ctx, ownerID, resumeID)
}

// Edit applies an in-memory mutation to the session and stores the result.
// No resume record is written.
func (s *Service) Edit(ctx context.Context, ownerID, resumeID string, fn func(*Session) error) (*Session, error) {
	lock := s.lockFor(resumeID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.load(ctx, ownerID, resumeID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// GoNext persists the draft and advances the step. On a persist failure the
// step and draft are unchanged and the error is retryable. At most one save
// runs per session; overlapping saves are rejected with ErrSaveInFlight.
func (s *Service) GoNext(ctx context.Context, ownerID, resumeID string) (*Session, error) {
	return s.saveAndThen(ctx, ownerID, resumeID, nil, func(session *Session) {
		session.Advance()
	})
}

// GoPrev steps backward. Purely session-local: the store record is not
// touched and nothing entered is discarded.
func (s *Service) GoPrev(ctx context.Context, ownerID, resumeID string) (*Session, error) {
	return s.Edit(ctx, ownerID, resumeID, func(session *Session) error {
		session.Retreat()
		return nil
	})
}

// Finish persists the draft from the final step and marks the session
// complete. The saved record is the session draft.
func (s *Service) Finish(ctx context.Context, ownerID, resumeID string) (*Session, error) {
	return s.saveAndThen(ctx, ownerID, resumeID, finishableNow, func(session *Session) {
		session.Completed = true
	})
}

// finishableNow guards Finish: only the last step may complete the flow.
func finishableNow(session *Session) error {
	if session.Step != LastStep {
		return fmt.Errorf("%w: on step %s", ErrNotLastStep, session.Step)
	}
	return nil
}

// Discard removes the session, leaving the stored record as of its last save.
func (s *Service) Discard(ctx context.Context, ownerID, resumeID string) error {
	lock := s.lockFor(resumeID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.load(ctx, ownerID, resumeID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, resumeID)
}

// Arrangement reports the session's layout and board for rendering. ok is
// false when no session exists for the owner and resume.
func (s *Service) Arrangement(ctx context.Context, ownerID, resumeID string) (resumes.Resume, render.Board, bool) {
	lock := s.lockFor(resumeID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.load(ctx, ownerID, resumeID)
	if err != nil {
		return resumes.Resume{}, render.Board{}, false
	}
	return session.Draft.Clone(), session.Board.Clone(), true
}

func (s *Service) saveAndThen(ctx context.Context, ownerID, resumeID string, before func(*Session) error, after func(*Session)) (*Session, error) {
	if !s.beginSave(resumeID) {
		return nil, ErrSaveInFlight
	}
	defer s.endSave(resumeID)

	lock := s.lockFor(resumeID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.load(ctx, ownerID, resumeID)
	if err != nil {
		return nil, err
	}
	if before != nil {
		if err := before(session); err != nil {
			return nil, err
		}
	}

	saved, err := s.Resumes.Patch(ctx, ownerID, resumeID, session.BuildPatch())
	if err != nil {
		metrics.IncDraftSaveFailed()
		telemetry.Error("builder.save_failed", map[string]any{
			"resume_id": resumeID,
			"step":      session.Step.String(),
			"error":     err.Error(),
		})
		if errors.Is(err, resumes.ErrInvalidInput) || errors.Is(err, resumes.ErrNotFound) || errors.Is(err, resumes.ErrForbidden) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	metrics.IncDraftSave()

	session.Draft = saved.Clone()
	after(session)
	if err := s.Store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

func (s *Service) load(ctx context.Context, ownerID, resumeID string) (*Session, error) {
	session, err := s.Store.Get(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, resumes.ErrForbidden
	}
	return session, nil
}

func (s *Service) lockFor(resumeID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[resumeID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[resumeID] = lock
	}
	return lock
}

func (s *Service) beginSave(resumeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving[resumeID] {
		return false
	}
	s.saving[resumeID] = true
	return true
}

func (s *Service) endSave(resumeID string) {
	s.mu.Lock()
	delete(s.saving, resumeID)
	s.mu.Unlock()
}
