package ws

import (
	"context"
	"encoding/json"
	"errors"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/domain/filter"
	"job-portal/internal/domain/job"
	apperr "job-portal/internal/pkg/errors"
	"job-portal/internal/pkg/logger"

	"go.uber.org/zap"
)

const (
	MessageTypeSelect      = "select"
	MessageTypeJobs        = "jobs"
	MessageTypeError       = "error"
	MessageTypeJobsUpdated = "jobs_updated"
)

type JobLister interface {
	List(ctx context.Context, keyword string) ([]job.Job, error)
}

type clientMessage struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type JobsMessage struct {
	Type    string            `json:"type"`
	Keyword string            `json:"keyword"`
	Jobs    []dto.JobResponse `json:"jobs"`
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Session is the per-connection filter state. Every query the card publishes
// into the state is answered with a jobs listing sent through out.
type Session struct {
	ctx    context.Context
	card   *filter.Card
	state  *filter.State
	jobs   JobLister
	out    func([]byte)
	logger *zap.Logger
}

func NewSession(ctx context.Context, jobs JobLister, out func([]byte), l *zap.Logger) *Session {
	s := &Session{
		ctx:    ctx,
		state:  filter.NewState(),
		jobs:   jobs,
		out:    out,
		logger: logger.OrNop(l),
	}
	s.card = filter.NewCard(s.state)
	s.state.Subscribe(s.pushJobs)
	return s
}

// Start mounts the card, which publishes the empty query once.
func (s *Session) Start() {
	s.card.Mount()
}

func (s *Session) SearchedQuery() string {
	return s.state.SearchedQuery()
}

// Handle processes one client frame.
func (s *Session) Handle(raw []byte) {
	var msg clientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.sendError("Invalid message.")
		return
	}

	switch msg.Type {
	case MessageTypeSelect:
		if err := s.card.Select(msg.Value); err != nil {
			if errors.Is(err, filter.ErrUnknownOption) {
				s.sendError("Unknown filter option.")
				return
			}
			s.sendError("Filter not ready.")
		}
	default:
		s.sendError("Unknown message type.")
	}
}

func (s *Session) pushJobs(query string) {
	res := JobsMessage{Type: MessageTypeJobs, Keyword: query, Jobs: []dto.JobResponse{}}

	items, err := s.jobs.List(s.ctx, query)
	if err != nil {
		var de *apperr.DomainError
		if errors.As(err, &de) {
			res.Message = de.Message
		} else {
			res.Message = "Failed to fetch jobs."
		}
		if !apperr.Is(err, apperr.ErrTypeNotFound) {
			s.logger.Error("ws job listing failed", zap.String("keyword", query), zap.Error(err))
		}
	} else {
		res.Success = true
		res.Jobs = dto.NewJobResponses(items)
	}

	s.send(res)
}

func (s *Session) sendError(message string) {
	s.send(ErrorMessage{Type: MessageTypeError, Message: message})
}

func (s *Session) send(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("ws marshal failed", zap.Error(err))
		return
	}
	if s.out != nil {
		s.out(b)
	}
}
