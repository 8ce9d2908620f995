package mocks

import (
	"context"
	"sync"

	"github.com/8thgencore/blip/pkg/lime"
)

type MockProcessor struct {
	Commands     []*lime.Command
	Response     *lime.Command
	ProcessError error
	mu           sync.Mutex
}

func NewMockProcessor() *MockProcessor {
	return &MockProcessor{
		Commands: make([]*lime.Command, 0),
	}
}

func (m *MockProcessor) ProcessCommand(_ context.Context, cmd *lime.Command) (*lime.Command, error) {
	m.mu.Lock()
	m.Commands = append(m.Commands, cmd)
	m.mu.Unlock()

	if m.ProcessError != nil {
		return nil, m.ProcessError
	}
	if m.Response != nil {
		return m.Response, nil
	}

	return &lime.Command{ID: cmd.ID, From: cmd.To, Method: cmd.Method, Status: lime.StatusSuccess}, nil
}

func (m *MockProcessor) Last() *lime.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return nil
	}
	return m.Commands[len(m.Commands)-1]
}
